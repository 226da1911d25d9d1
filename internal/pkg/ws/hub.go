package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Hub tracks the live socket subscribers of each chat room and pushes
// new messages to them. Rooms are keyed by team id. The hub is push
// only: history and sending stay on the REST endpoints.
type Hub struct {
	// Registered clients organized by room
	rooms map[string]map[*Client]bool

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run handles client registrations until the process exits
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.room]; !ok {
		h.rooms[client.room] = make(map[*Client]bool)
	}
	h.rooms[client.room][client] = true

	h.logger.Info().
		Str("room", client.room).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[client.room]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.rooms, client.room)
			}
		}
	}
}

// Broadcast pushes a JSON payload to every subscriber of a room. A slow
// client that cannot keep up is dropped rather than blocking the rest.
func (h *Hub) Broadcast(room string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().Err(err).Str("room", room).Msg("Failed to marshal broadcast payload")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- data:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
