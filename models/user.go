package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a restaurant owner account. The user id doubles as the owner id
// that scopes menu items, the restaurant profile and the public menu URL.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	ResetToken    string
	ResetTokenExp time.Time

	StripeCustomerID     string
	StripeSubscriptionID string
	PlanID               string
}
