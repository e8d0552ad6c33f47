package services

import (
	"errors"
	"reflect"
	"testing"

	"geramenu/models"
)

type fakeMenuStore struct {
	items          []models.MenuItem
	ownerCalls     int
	categoryCalls  map[string]int
	failCategories map[string]bool
	failOwner      bool
}

func newFakeMenuStore(items []models.MenuItem) *fakeMenuStore {
	return &fakeMenuStore{
		items:          items,
		categoryCalls:  make(map[string]int),
		failCategories: make(map[string]bool),
	}
}

func (f *fakeMenuStore) ListByOwner(ownerID uint) ([]models.MenuItem, error) {
	f.ownerCalls++
	if f.failOwner {
		return nil, ErrStoreUnavailable
	}
	return f.items, nil
}

func (f *fakeMenuStore) ListByOwnerAndCategory(ownerID uint, category string) ([]models.MenuItem, error) {
	f.categoryCalls[category]++
	if f.failCategories[category] {
		return nil, ErrStoreUnavailable
	}
	var out []models.MenuItem
	for _, item := range f.items {
		if item.Category == category && !item.OutOfStock {
			out = append(out, item)
		}
	}
	return out, nil
}

func menuFixture() []models.MenuItem {
	return []models.MenuItem{
		{UserID: 1, Category: "Mains", Name: "Moussaka", Price: "12.50"},
		{UserID: 1, Category: "Mains", Name: "Pastitsio", Price: "11.00", OutOfStock: true},
		{UserID: 1, Category: "Drinks", Name: "Lemonade", Price: "3.00"},
	}
}

func TestInitializeDerivesCategoriesAndLoadsFirst(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	s := NewMenuSession(store)
	s.Initialize(1)

	want := []string{"Mains", "Drinks"}
	if !reflect.DeepEqual(s.Categories(), want) {
		t.Fatalf("Categories() = %v, want %v", s.Categories(), want)
	}
	if s.ActiveCategory() != "Mains" {
		t.Errorf("ActiveCategory() = %q, want %q", s.ActiveCategory(), "Mains")
	}
	if len(s.VisibleItems()) != 1 || s.VisibleItems()[0].Name != "Moussaka" {
		t.Errorf("visible items = %v, want only the in-stock Mains item", s.VisibleItems())
	}
	if store.ownerCalls != 1 {
		t.Errorf("owner fetches = %d, want 1", store.ownerCalls)
	}
	if store.categoryCalls["Mains"] != 1 {
		t.Errorf("Mains fetches = %d, want 1", store.categoryCalls["Mains"])
	}
}

func TestInitializeZeroOwnerLeavesStateEmpty(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	s := NewMenuSession(store)
	s.Initialize(0)

	if len(s.Categories()) != 0 || s.ActiveCategory() != "" {
		t.Errorf("session should stay empty without an owner id")
	}
	if store.ownerCalls != 0 {
		t.Errorf("owner fetches = %d, want 0", store.ownerCalls)
	}
}

func TestInitializeOwnerWithNoItems(t *testing.T) {
	store := newFakeMenuStore(nil)
	s := NewMenuSession(store)
	s.Initialize(42)

	if len(s.Categories()) != 0 {
		t.Errorf("Categories() = %v, want empty", s.Categories())
	}
	if len(s.VisibleItems()) != 0 {
		t.Errorf("VisibleItems() = %v, want empty", s.VisibleItems())
	}
	if len(store.categoryCalls) != 0 {
		t.Errorf("no category fetch expected, got %v", store.categoryCalls)
	}
}

func TestInitializeDerivationFailure(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	store.failOwner = true
	s := NewMenuSession(store)
	s.Initialize(1)

	if len(s.Categories()) != 0 || s.ActiveCategory() != "" {
		t.Errorf("failed derivation should leave the session empty")
	}
}

func TestCategoryFetchedAtMostOncePerSession(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	s := NewMenuSession(store)
	s.Initialize(1)

	s.SwitchCategory("Drinks")
	s.SwitchCategory("Mains")
	s.SwitchCategory("Drinks")
	s.SwitchCategory("Mains")

	if got := store.categoryCalls["Mains"]; got != 1 {
		t.Errorf("Mains fetches = %d, want exactly 1", got)
	}
	if got := store.categoryCalls["Drinks"]; got != 1 {
		t.Errorf("Drinks fetches = %d, want exactly 1", got)
	}
	if s.VisibleItems()[0].Name != "Moussaka" {
		t.Errorf("cache hit should restore the Mains list, got %v", s.VisibleItems())
	}
}

func TestSwitchToActiveCategoryIsNoop(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	s := NewMenuSession(store)
	s.Initialize(1)

	before := store.categoryCalls["Mains"]
	s.SwitchCategory("Mains")
	s.SwitchCategory("Mains")

	if got := store.categoryCalls["Mains"]; got != before {
		t.Errorf("redundant switch issued %d extra fetches", got-before)
	}
	if len(s.VisibleItems()) == 0 {
		t.Errorf("redundant switch must not clear the visible list")
	}
}

func TestFetchFailureLeavesVisibleListAndAllowsRetry(t *testing.T) {
	store := newFakeMenuStore(menuFixture())
	store.failCategories["Drinks"] = true
	s := NewMenuSession(store)
	s.Initialize(1)

	s.SwitchCategory("Drinks")
	if s.IsFetching() {
		t.Errorf("isFetching must clear even on failure")
	}
	if len(s.VisibleItems()) != 0 {
		t.Errorf("switch clears the list; a failed fetch must not partially fill it, got %v", s.VisibleItems())
	}
	if s.Cached("Drinks") {
		t.Errorf("failed fetch must not populate the cache")
	}

	// next visit may retry
	store.failCategories["Drinks"] = false
	s.SwitchCategory("Mains")
	s.SwitchCategory("Drinks")
	if got := store.categoryCalls["Drinks"]; got != 2 {
		t.Errorf("Drinks fetches = %d, want a retry after the failure", got)
	}
	if len(s.VisibleItems()) != 1 || s.VisibleItems()[0].Name != "Lemonade" {
		t.Errorf("retry should fill the list, got %v", s.VisibleItems())
	}
}

func TestDeriveCategoriesFirstSeenOrder(t *testing.T) {
	tests := []struct {
		name  string
		items []models.MenuItem
		want  []string
	}{
		{"empty", nil, nil},
		{
			"out of stock filtered",
			[]models.MenuItem{
				{Category: "Mains"},
				{Category: "Mains", OutOfStock: true},
				{Category: "Drinks"},
			},
			[]string{"Mains", "Drinks"},
		},
		{
			"all out of stock",
			[]models.MenuItem{{Category: "Mains", OutOfStock: true}},
			nil,
		},
		{
			"order preserved across interleaving",
			[]models.MenuItem{
				{Category: "Desserts"},
				{Category: "Mains"},
				{Category: "Desserts"},
				{Category: "Drinks"},
				{Category: "Mains"},
			},
			[]string{"Desserts", "Mains", "Drinks"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveCategories(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveCategories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateVariantsAllOrNothing(t *testing.T) {
	tests := []struct {
		name     string
		variants []VariantInput
		wantErr  bool
	}{
		{"no variants", nil, false},
		{"fully filled", []VariantInput{{Name: "Large", Price: "15.00", Quantity: "500"}}, false},
		{"one filled one empty", []VariantInput{
			{Name: "Large", Price: "15.00", Quantity: "500"},
			{},
		}, true},
		{"missing price", []VariantInput{{Name: "Small", Quantity: "250"}}, true},
		{"missing quantity", []VariantInput{{Name: "Small", Price: "8.00"}}, true},
		{"whitespace only name", []VariantInput{{Name: "  ", Price: "8.00", Quantity: "250"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariants(tt.variants)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariants() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStoreErrorIsGeneric(t *testing.T) {
	if !errors.Is(ErrStoreUnavailable, ErrStoreUnavailable) {
		t.Fatal("sanity")
	}
	if ErrStoreUnavailable.Error() != "backend unavailable" {
		t.Errorf("user-facing store error should stay generic, got %q", ErrStoreUnavailable.Error())
	}
}
