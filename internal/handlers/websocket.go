package handlers

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Hub manages the WebSocket connections listening for reminder events.
// Unlike per-board rooms, reminders are global: every connected client
// receives every event.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

// Global hub instance
var WS = &Hub{
	conns: make(map[*websocket.Conn]bool),
}

// register adds a connection to the hub
func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = true
	log.Printf("WS register: client connected (total: %d)", len(h.conns))
}

// unregister removes a connection from the hub
func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
	log.Printf("WS unregister: client disconnected (remaining: %d)", len(h.conns))
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(event interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.conns) == 0 {
		return
	}

	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("WS broadcast marshal error: %v", err)
		return
	}

	for c := range h.conns {
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("WS write error: %v", err)
		}
	}
}

// WebSocketUpgrade checks that the request is a WebSocket upgrade
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// HandleReminderSocket handles a WebSocket connection for reminder events
func HandleReminderSocket(c *websocket.Conn) {
	WS.register(c)
	defer WS.unregister(c)

	// Keep connection alive — read messages (client sends pings/keepalives)
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
