package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"

	"github.com/ichaoui56/service-stock2/internal/model"
)

// Event is the payload pushed to connected clients when the ledger changes.
type Event struct {
	Type    string         `json:"type"`
	Action  string         `json:"action"`
	Payload interface{}    `json:"payload,omitempty"`
	Actor   model.Identity `json:"actor"`
	Message string         `json:"message,omitempty"`
}

type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte

	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		clients:    make(map[*websocket.Conn]bool),
	}
}

// Publish marshals an event and queues it for broadcast. Safe to call from
// any goroutine.
func (h *Hub) Publish(e Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Str("action", e.Action).Msg("event marshal failed")
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			log.Debug().Msg("ws client connected")

		case conn := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
