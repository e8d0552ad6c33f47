package models

import "gorm.io/gorm"

// Restaurant holds the owner-configured metadata shown on the public menu
// page. Exactly one row per owner; a missing row means the owner has not
// filled in settings yet. ClosedDays is stored comma-joined.
type Restaurant struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	WifiName     string `json:"wifi_name"`
	WifiPassword string `json:"wifi_password"`
	LunchOpen    string `json:"lunch_open"`
	LunchClose   string `json:"lunch_close"`
	DinnerOpen   string `json:"dinner_open"`
	DinnerClose  string `json:"dinner_close"`
	ClosedDays   string `json:"-"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}
