package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// MenuViewer is one open public menu page for an owner's menu.
type MenuViewer struct {
	OwnerID uint
	Conn    *websocket.Conn

	mu sync.Mutex // serializes writes from the session loop and the hub
}

func (v *MenuViewer) Write(msg []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Conn.WriteMessage(websocket.TextMessage, msg)
}

func (v *MenuViewer) WriteJSON(payload any) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return v.Write(msg)
}

// MenuHub tracks the open viewers per owner so menu mutations can tell them
// their cached page is stale.
type MenuHub struct {
	mu      sync.RWMutex
	viewers map[uint]map[*MenuViewer]struct{}
}

func NewMenuHub() *MenuHub {
	return &MenuHub{viewers: make(map[uint]map[*MenuViewer]struct{})}
}

func (h *MenuHub) Register(v *MenuViewer) {
	h.mu.Lock()
	if h.viewers[v.OwnerID] == nil {
		h.viewers[v.OwnerID] = make(map[*MenuViewer]struct{})
	}
	h.viewers[v.OwnerID][v] = struct{}{}
	h.mu.Unlock()
}

func (h *MenuHub) Unregister(v *MenuViewer) {
	h.mu.Lock()
	if set := h.viewers[v.OwnerID]; set != nil {
		delete(set, v)
		if len(set) == 0 {
			delete(h.viewers, v.OwnerID)
		}
	}
	h.mu.Unlock()
	_ = v.Conn.Close()
}

// ViewerCount reports how many pages are open for an owner's menu.
func (h *MenuHub) ViewerCount(ownerID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers[ownerID])
}

// BroadcastMenuUpdated notifies every open page of the owner's menu that an
// item changed in the given category. Session caches are not invalidated
// server-side; the client reacts by reloading.
func (h *MenuHub) BroadcastMenuUpdated(ownerID uint, category string) {
	msg, _ := json.Marshal(map[string]string{
		"type":     "menu_updated",
		"category": category,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for v := range h.viewers[ownerID] {
		_ = v.Write(msg)
	}
}
