package services

import (
	"errors"
	"log"
	"strings"

	"geramenu/models"

	"gorm.io/gorm"
)

type RestaurantInput struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	WifiName     string   `json:"wifi_name"`
	WifiPassword string   `json:"wifi_password"`
	LunchOpen    string   `json:"lunch_open"`
	LunchClose   string   `json:"lunch_close"`
	DinnerOpen   string   `json:"dinner_open"`
	DinnerClose  string   `json:"dinner_close"`
	ClosedDays   []string `json:"closed_days"`
	Description  string   `json:"description"`
	ImageBase64  string   `json:"image_base64"`
}

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// Get returns the owner's profile, or nil when none was configured yet. The
// public page tolerates a nil profile.
func (s *RestaurantService) Get(ownerID uint) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.Where("user_id = ?", ownerID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("restaurant lookup failed for owner %d: %v", ownerID, err)
		return nil, ErrStoreUnavailable
	}
	return &r, nil
}

// Upsert replaces the owner's profile wholesale on every save, the way the
// settings form submits it. imageURL overrides the stored image when
// non-empty.
func (s *RestaurantService) Upsert(ownerID uint, in RestaurantInput, imageURL string) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.Where("user_id = ?", ownerID).First(&r).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("restaurant lookup failed for owner %d: %v", ownerID, err)
		return nil, ErrStoreUnavailable
	}

	r.UserID = ownerID
	r.Name = in.Name
	r.Address = in.Address
	r.Phone = in.Phone
	r.Email = in.Email
	r.Website = in.Website
	r.WifiName = in.WifiName
	r.WifiPassword = in.WifiPassword
	r.LunchOpen = in.LunchOpen
	r.LunchClose = in.LunchClose
	r.DinnerOpen = in.DinnerOpen
	r.DinnerClose = in.DinnerClose
	r.ClosedDays = JoinClosedDays(in.ClosedDays)
	r.Description = in.Description
	if imageURL != "" {
		r.ImageURL = imageURL
	}

	if err := s.db.Save(&r).Error; err != nil {
		log.Printf("restaurant save failed for owner %d: %v", ownerID, err)
		return nil, ErrStoreUnavailable
	}
	return &r, nil
}

func JoinClosedDays(days []string) string {
	return strings.Join(days, ",")
}

func SplitClosedDays(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
