package controllers

import (
	"fmt"
	"net/http"

	"geramenu/config"
	"geramenu/models"
	"geramenu/services"
	"geramenu/utils"

	"github.com/gin-gonic/gin"
)

func restaurantResponse(r *models.Restaurant) gin.H {
	if r == nil {
		return nil
	}
	return gin.H{
		"user_id":       r.UserID,
		"name":          r.Name,
		"address":       r.Address,
		"phone":         r.Phone,
		"email":         r.Email,
		"website":       r.Website,
		"wifi_name":     r.WifiName,
		"wifi_password": r.WifiPassword,
		"lunch_open":    r.LunchOpen,
		"lunch_close":   r.LunchClose,
		"dinner_open":   r.DinnerOpen,
		"dinner_close":  r.DinnerClose,
		"closed_days":   services.SplitClosedDays(r.ClosedDays),
		"description":   r.Description,
		"image_url":     r.ImageURL,
	}
}

// GET /restaurant
func GetRestaurant(c *gin.Context) {
	ownerID := c.GetUint("userID")

	r, err := services.NewRestaurantService(config.DB).Get(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurantResponse(r)})
}

// PUT /restaurant. The settings form submits the whole profile every time.
func UpdateRestaurant(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var imageURL string
	if input.ImageBase64 != "" {
		var err error
		imageURL, err = utils.UploadBase64Image(input.ImageBase64, fmt.Sprintf("restaurants/%d", ownerID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
			return
		}
	}

	r, err := services.NewRestaurantService(config.DB).Upsert(ownerID, input, imageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurantResponse(r)})
}
