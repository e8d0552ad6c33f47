package controllers

import (
	"net/http"

	"geramenu/config"
	"geramenu/services"

	"github.com/gin-gonic/gin"
)

type CreateCustomerInput struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// POST /billing/customer
func CreateCustomer(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := services.NewBillingService(config.DB).CreateCustomer(userID, input.PaymentMethodID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": customerID})
}

type SubscriptionInput struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// POST /billing/subscription
func CreateSubscription(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscriptionID, err := services.NewBillingService(config.DB).CreateSubscription(userID, input.PlanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription_id": subscriptionID})
}

// PUT /billing/subscription
func UpdateSubscription(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscriptionID, err := services.NewBillingService(config.DB).UpdateSubscription(userID, input.PlanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription_id": subscriptionID})
}

// DELETE /billing/subscription
func CancelSubscription(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.NewBillingService(config.DB).CancelSubscription(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}
