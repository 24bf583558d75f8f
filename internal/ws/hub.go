package ws

import (
	"encoding/json"

	"taskboard/internal/logger"
)

// Event is a mutation notice pushed to every connected client.
type Event struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// Hub fans mutation events out to connected websocket clients. It is
// broadcast-only: clients never send anything the service acts on.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run owns the client set; call it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case ev := <-h.broadcast:
			msg, err := json.Marshal(ev)
			if err != nil {
				logger.Error("marshal event", "error", err)
				continue
			}
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow client, drop it
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish queues an event for broadcast. It never blocks a request:
// when the queue is full the event is dropped.
func (h *Hub) Publish(eventType string, id int64) {
	select {
	case h.broadcast <- Event{Type: eventType, ID: id}:
	default:
		logger.Warn("event queue full, dropping event", "type", eventType, "id", id)
	}
}
