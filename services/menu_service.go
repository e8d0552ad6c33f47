package services

import (
	"errors"
	"log"
	"strings"

	"geramenu/models"

	"gorm.io/gorm"
)

// ErrStoreUnavailable is what callers see when the database round trip
// fails. The underlying cause is logged; the user-facing message stays
// generic.
var ErrStoreUnavailable = errors.New("backend unavailable")

// MenuStore is the read side consumed by the public menu session.
type MenuStore interface {
	ListByOwner(ownerID uint) ([]models.MenuItem, error)
	ListByOwnerAndCategory(ownerID uint, category string) ([]models.MenuItem, error)
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

type VariantInput struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type MenuItemInput struct {
	Category    string         `json:"category" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Price       string         `json:"price" binding:"required"`
	Description string         `json:"description"`
	ImageBase64 string         `json:"image_base64"`
	OutOfStock  *bool          `json:"out_of_stock"`
	Quantity    string         `json:"quantity"`
	Unit        string         `json:"unit" binding:"omitempty,oneof=pcs g ml portion"`
	Variants    []VariantInput `json:"variants"`
}

// ValidateVariants enforces the all-or-nothing rule: every submitted variant
// must carry a name, price and quantity or the parent item may not be saved.
func ValidateVariants(variants []VariantInput) error {
	for _, v := range variants {
		if strings.TrimSpace(v.Name) == "" ||
			strings.TrimSpace(v.Price) == "" ||
			strings.TrimSpace(v.Quantity) == "" {
			return errors.New("every variant needs a name, price and quantity")
		}
	}
	return nil
}

func buildVariants(inputs []VariantInput) []models.Variant {
	variants := make([]models.Variant, 0, len(inputs))
	for i, v := range inputs {
		unit := v.Unit
		if unit == "" {
			unit = models.UnitPiece
		}
		variants = append(variants, models.Variant{
			Position: i,
			Name:     v.Name,
			Price:    v.Price,
			Quantity: v.Quantity,
			Unit:     unit,
		})
	}
	return variants
}

// ListByOwner returns every item of the owner, variants included, in
// insertion order. This is the management view and the category-derivation
// fetch for the public page.
func (s *MenuService) ListByOwner(ownerID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&items).Error
	if err != nil {
		log.Printf("menu list failed for owner %d: %v", ownerID, err)
		return nil, ErrStoreUnavailable
	}
	return items, nil
}

// ListByOwnerAndCategory returns the in-stock items of one category, the
// query the public page issues per category tab.
func (s *MenuService) ListByOwnerAndCategory(ownerID uint, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ? AND category = ? AND out_of_stock = ?", ownerID, category, false).
		Order("id").
		Find(&items).Error
	if err != nil {
		log.Printf("menu category list failed for owner %d category %q: %v", ownerID, category, err)
		return nil, ErrStoreUnavailable
	}
	return items, nil
}

func (s *MenuService) Create(ownerID uint, in MenuItemInput, imageURL string) (*models.MenuItem, error) {
	unit := in.Unit
	if unit == "" {
		unit = models.UnitPiece
	}
	item := models.MenuItem{
		UserID:      ownerID,
		Category:    in.Category,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    imageURL,
		OutOfStock:  in.OutOfStock != nil && *in.OutOfStock,
		Quantity:    in.Quantity,
		Unit:        unit,
		Variants:    buildVariants(in.Variants),
	}
	if err := s.db.Create(&item).Error; err != nil {
		log.Printf("menu create failed for owner %d: %v", ownerID, err)
		return nil, ErrStoreUnavailable
	}
	return &item, nil
}

// Update merges the submitted fields into the stored item. Fields left out
// of the request stay untouched; a nil variant list leaves the stored
// variants alone while an explicit empty list clears them.
func (s *MenuService) Update(id, ownerID uint, in MenuItemInput, imageURL string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		log.Printf("menu lookup failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}

	updates := map[string]interface{}{
		"category": in.Category,
		"name":     in.Name,
		"price":    in.Price,
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Quantity != "" {
		updates["quantity"] = in.Quantity
	}
	if in.Unit != "" {
		updates["unit"] = in.Unit
	}
	if in.OutOfStock != nil {
		updates["out_of_stock"] = *in.OutOfStock
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}

	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		log.Printf("menu update failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}

	if in.Variants != nil {
		if err := s.db.Unscoped().Where("menu_item_id = ?", item.ID).Delete(&models.Variant{}).Error; err != nil {
			log.Printf("variant replace failed for item %d: %v", id, err)
			return nil, ErrStoreUnavailable
		}
		variants := buildVariants(in.Variants)
		for i := range variants {
			variants[i].MenuItemID = item.ID
		}
		if len(variants) > 0 {
			if err := s.db.Create(&variants).Error; err != nil {
				log.Printf("variant replace failed for item %d: %v", id, err)
				return nil, ErrStoreUnavailable
			}
		}
	}

	if err := s.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&item, item.ID).Error; err != nil {
		log.Printf("menu reload failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}
	return &item, nil
}

// Delete removes the item and its variants and returns the removed row so
// the caller knows which category changed. Hard delete: a removed item is
// gone, there is no soft-delete or audit trail.
func (s *MenuService) Delete(id, ownerID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err != nil {
		log.Printf("menu lookup failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}

	if err := s.db.Unscoped().Where("menu_item_id = ?", item.ID).Delete(&models.Variant{}).Error; err != nil {
		log.Printf("menu delete failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}
	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		log.Printf("menu delete failed for item %d: %v", id, err)
		return nil, ErrStoreUnavailable
	}
	return &item, nil
}
