package services

import (
	"log"

	"geramenu/models"
)

// MenuSession is the per-viewer state behind one public menu page: the
// derived category tabs, a per-category item cache and the currently visible
// list. Each category is fetched from the store at most once per session;
// revisiting a tab is served from the cache. The cache is never invalidated
// within a session; a MenuUpdated broadcast from the hub tells the client
// to open a fresh session instead.
//
// A session belongs to a single connection and is driven by that
// connection's read loop, so it is not safe for concurrent use.
type MenuSession struct {
	store   MenuStore
	ownerID uint

	categories     []string
	cache          map[string][]models.MenuItem
	activeCategory string
	visible        []models.MenuItem
	isFetching     bool
}

func NewMenuSession(store MenuStore) *MenuSession {
	return &MenuSession{
		store: store,
		cache: make(map[string][]models.MenuItem),
	}
}

// Initialize derives the category tabs from one unfiltered fetch of the
// owner's items and loads the first category. A zero owner id or a failed
// fetch leaves the session empty; the page renders its "no items" state.
//
// Categories come from in-stock items only, in first-seen order. A category
// whose items all go out of stock after this point still shows as a tab with
// zero items; that is tolerated.
func (s *MenuSession) Initialize(ownerID uint) {
	if ownerID == 0 {
		log.Printf("menu session: owner id unavailable")
		return
	}
	s.ownerID = ownerID

	items, err := s.store.ListByOwner(ownerID)
	if err != nil {
		log.Printf("menu session: category derivation failed for owner %d: %v", ownerID, err)
		return
	}

	s.categories = DeriveCategories(items)

	if len(s.categories) > 0 {
		s.activeCategory = s.categories[0]
		s.LoadCategory(s.activeCategory)
	}
}

// LoadCategory fills the visible list for a category, from the cache when
// the category was fetched before, otherwise with a single filtered store
// read. On a failed read the visible list keeps its prior value, it is
// never left partially populated.
func (s *MenuSession) LoadCategory(category string) {
	if cached, ok := s.cache[category]; ok {
		s.visible = cached
		return
	}

	s.isFetching = true
	items, err := s.store.ListByOwnerAndCategory(s.ownerID, category)
	if err != nil {
		log.Printf("menu session: fetch failed for owner %d category %q: %v", s.ownerID, category, err)
		s.isFetching = false
		return
	}
	s.cache[category] = items
	s.visible = items
	s.isFetching = false
}

// SwitchCategory changes the active tab. Switching to the tab that is
// already active is a no-op, so a double tap never refetches.
func (s *MenuSession) SwitchCategory(category string) {
	if category == s.activeCategory {
		return
	}
	s.activeCategory = category
	s.visible = nil
	s.LoadCategory(category)
}

func (s *MenuSession) Categories() []string { return s.categories }

func (s *MenuSession) ActiveCategory() string { return s.activeCategory }

func (s *MenuSession) VisibleItems() []models.MenuItem { return s.visible }

func (s *MenuSession) IsFetching() bool { return s.isFetching }

// Cached reports whether a category has been fetched in this session.
func (s *MenuSession) Cached(category string) bool {
	_, ok := s.cache[category]
	return ok
}

// DeriveCategories projects the distinct category labels out of a full item
// fetch, skipping out-of-stock items and preserving first-seen order.
// Categories are never stored; this projection is recomputed on every fetch.
func DeriveCategories(items []models.MenuItem) []string {
	var categories []string
	seen := make(map[string]bool)
	for _, item := range items {
		if item.OutOfStock {
			continue
		}
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}
