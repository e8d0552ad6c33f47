package models

import "gorm.io/gorm"

// Units a quantity can be expressed in.
const (
	UnitPiece      = "pcs"
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitPortion    = "portion"
)

// MenuItem is one sellable entry on an owner's menu. Price and Quantity are
// entered as text by the owner and stored verbatim.
type MenuItem struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Category    string `gorm:"not null" json:"category"`
	Name        string `gorm:"not null" json:"name"`
	Price       string `gorm:"not null" json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OutOfStock  bool   `gorm:"index" json:"out_of_stock"`
	Quantity    string `json:"quantity"`
	Unit        string `gorm:"default:pcs" json:"unit"`

	Variants []Variant `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"variants"`
}

// Variant is an independently priced sub-option of its parent item, e.g. a
// size. Variants have no lifecycle of their own; the whole list is replaced
// whenever the parent is saved with one.
type Variant struct {
	gorm.Model
	MenuItemID uint   `gorm:"not null;index" json:"-"`
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   string `json:"quantity"`
	Unit       string `gorm:"default:pcs" json:"unit"`
}
