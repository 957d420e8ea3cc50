package realtime

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is the envelope pushed to connected dashboards
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type message struct {
	hotelID uuid.UUID
	payload []byte
}

// Hub fans events out to every client watching a hotel. Each hotel is its
// own room: an operator connected to one hotel never sees another hotel's
// order traffic.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	logger     *zap.Logger
}

// NewHub creates a new hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 64),
		logger:     logger,
	}
}

// Run processes register, unregister and broadcast events until the
// program exits. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("websocket client connected",
				zap.String("hotel_id", client.hotelID.String()))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if client.hotelID != msg.hotelID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer: drop it rather than stall the hub
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast pushes an event to every client watching the hotel
func (h *Hub) Broadcast(hotelID uuid.UUID, event string, payload interface{}) {
	data, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		h.logger.Warn("failed to marshal websocket event",
			zap.String("event", event),
			zap.Error(err))
		return
	}
	h.broadcast <- message{hotelID: hotelID, payload: data}
}
