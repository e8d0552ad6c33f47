package controllers

import (
	"net/http"

	"geramenu/config"
	"geramenu/models"

	"github.com/gin-gonic/gin"
)

// Session returns the owner id behind a live token. Clients mirror it into
// durable local storage so the public/preview pages can resolve whose menu
// to show without a login.
func Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetUint("userID"),
		"email":   c.GetString("email"),
	})
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                     user.ID,
		"email":                  user.Email,
		"stripe_customer_id":     user.StripeCustomerID,
		"stripe_subscription_id": user.StripeSubscriptionID,
		"plan_id":                user.PlanID,
	})
}
