package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geramenu/config"
	"geramenu/models"
	"geramenu/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newItemsRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Variant{}, &models.Restaurant{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	mc := NewMenuItemController(services.NewMenuHub())
	r := gin.New()
	r.POST("/items", func(c *gin.Context) {
		c.Set("userID", uint(1))
		mc.CreateItem(c)
	})
	return r, db
}

func postItems(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itemCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestCreateItemRejectsMissingPrice(t *testing.T) {
	r, db := newItemsRouter(t)

	w := postItems(r, `{
		"category": "Mains",
		"name": "Moussaka",
		"image_base64": "data:image/png;base64,AAAA"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := itemCount(t, db); got != 0 {
		t.Errorf("%d items written despite validation failure", got)
	}
}

func TestCreateItemRejectsMissingImage(t *testing.T) {
	r, db := newItemsRouter(t)

	w := postItems(r, `{
		"category": "Mains",
		"name": "Moussaka",
		"price": "12.50"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "image") {
		t.Errorf("body = %s, want an image validation message", w.Body.String())
	}
	if got := itemCount(t, db); got != 0 {
		t.Errorf("%d items written despite validation failure", got)
	}
}

func TestCreateItemRejectsHalfFilledVariant(t *testing.T) {
	r, db := newItemsRouter(t)

	w := postItems(r, `{
		"category": "Mains",
		"name": "Moussaka",
		"price": "12.50",
		"image_base64": "data:image/png;base64,AAAA",
		"variants": [
			{"name": "Large", "price": "15.00", "quantity": "500"},
			{"name": "", "price": "", "quantity": ""}
		]
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := itemCount(t, db); got != 0 {
		t.Errorf("%d items written despite validation failure", got)
	}
}
