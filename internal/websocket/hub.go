package websocket

import (
	"encoding/json"
	"time"

	"github.com/chocolog/chocolog-backend/pkg/logger"
)

// ActivityEvent is pushed to connected clients when something happens in
// the catalogue. Read-only fanout: dropping an event is harmless.
type ActivityEvent struct {
	Type        string      `json:"type"` // review_created, comment_created
	UserID      uint        `json:"user_id"`
	ChocolateID uint        `json:"chocolate_id,omitempty"`
	ReviewID    uint        `json:"review_id,omitempty"`
	Payload     interface{} `json:"payload,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Hub manages connected activity-feed clients
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes register/unregister/broadcast events. Intended to run in
// its own goroutine for the lifetime of the server.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.Debug("Activity feed client connected", map[string]interface{}{
				"user_id": client.UserID,
				"clients": len(h.clients),
			})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Publish broadcasts an activity event to every connected client
func (h *Hub) Publish(event ActivityEvent) {
	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal activity event", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Activity broadcast buffer full, dropping event", map[string]interface{}{
			"type": event.Type,
		})
	}
}
