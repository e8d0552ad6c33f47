package controllers

import (
	"net/http"
	"strconv"
	"time"

	"geramenu/config"
	"geramenu/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// PublicMenuController serves the unauthenticated read-only menu reachable
// through the QR-encoded URL.
type PublicMenuController struct {
	Hub *services.MenuHub
}

func NewPublicMenuController(hub *services.MenuHub) *PublicMenuController {
	return &PublicMenuController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

func ownerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("ownerId"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu address"})
		return 0, false
	}
	return uint(id), true
}

// GET /menu/:ownerId returns restaurant info (nullable) plus the category tabs.
func (pc *PublicMenuController) GetMenu(c *gin.Context) {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return
	}

	restaurant, err := services.NewRestaurantService(config.DB).Get(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := services.NewMenuService(config.DB).ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurantResponse(restaurant),
		"categories": services.DeriveCategories(items),
	})
}

// GET /menu/:ownerId/items?category=X returns the in-stock items of one category.
func (pc *PublicMenuController) GetMenuItems(c *gin.Context) {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return
	}
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	items, err := services.NewMenuService(config.DB).ListByOwnerAndCategory(ownerID, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type switchMessage struct {
	Category string `json:"category"`
}

// GET /menu/:ownerId/live: one websocket connection is one menu session:
// the category pipeline runs server-side and each category is fetched at
// most once for the lifetime of the connection. The client sends
// {"category": "..."} to switch tabs and receives the full view state back.
func (pc *PublicMenuController) LiveMenu(c *gin.Context) {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	viewer := &services.MenuViewer{OwnerID: ownerID, Conn: conn}
	pc.Hub.Register(viewer)

	session := services.NewMenuSession(services.NewMenuService(config.DB))
	session.Initialize(ownerID)
	pc.sendState(viewer, session, false)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}()

	for {
		var msg switchMessage
		if err := conn.ReadJSON(&msg); err != nil {
			pc.Hub.Unregister(viewer)
			return
		}
		if msg.Category == "" {
			continue
		}
		fromCache := session.Cached(msg.Category)
		session.SwitchCategory(msg.Category)
		pc.sendState(viewer, session, fromCache)
	}
}

func (pc *PublicMenuController) sendState(v *services.MenuViewer, s *services.MenuSession, fromCache bool) {
	_ = v.WriteJSON(gin.H{
		"type":            "menu_state",
		"categories":      s.Categories(),
		"active_category": s.ActiveCategory(),
		"items":           s.VisibleItems(),
		"from_cache":      fromCache,
	})
}
