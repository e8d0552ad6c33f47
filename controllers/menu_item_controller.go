package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"geramenu/config"
	"geramenu/services"
	"geramenu/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuItemController owns the management CRUD of an owner's menu. Mutations
// notify the hub so open public pages learn their view is stale.
type MenuItemController struct {
	Hub *services.MenuHub
}

func NewMenuItemController(hub *services.MenuHub) *MenuItemController {
	return &MenuItemController{Hub: hub}
}

// GET /items
func (mc *MenuItemController) ListItems(c *gin.Context) {
	ownerID := c.GetUint("userID")

	items, err := services.NewMenuService(config.DB).ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /items
func (mc *MenuItemController) CreateItem(c *gin.Context) {
	ownerID := c.GetUint("userID")

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an image is required"})
		return
	}
	if err := services.ValidateVariants(input.Variants); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := utils.UploadBase64Image(input.ImageBase64, fmt.Sprintf("menu-items/%d", ownerID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	item, err := services.NewMenuService(config.DB).Create(ownerID, input, imageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastMenuUpdated(ownerID, item.Category)
	c.JSON(http.StatusCreated, item)
}

// PUT /items/:id
func (mc *MenuItemController) UpdateItem(c *gin.Context) {
	ownerID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var input services.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.ValidateVariants(input.Variants); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var imageURL string
	if input.ImageBase64 != "" {
		imageURL, err = utils.UploadBase64Image(input.ImageBase64, fmt.Sprintf("menu-items/%d", ownerID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
			return
		}
	}

	item, err := services.NewMenuService(config.DB).Update(uint(id), ownerID, input, imageURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastMenuUpdated(ownerID, item.Category)
	c.JSON(http.StatusOK, item)
}

// DELETE /items/:id
func (mc *MenuItemController) DeleteItem(c *gin.Context) {
	ownerID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	deleted, err := services.NewMenuService(config.DB).Delete(uint(id), ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastMenuUpdated(ownerID, deleted.Category)
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}
