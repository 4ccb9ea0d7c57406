package inspect

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/tagr-dev/tagr/pkg/tagr"
)

// clientBuffer is the number of frames queued per client before new frames
// are dropped for that client.
const clientBuffer = 64

// Hub fans list and item events out to connected websocket clients. It is a
// tagr.Observer; pass it to lists with tagr.WithObserver.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

type client struct {
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.With("component", "inspect.hub"),
	}
}

// ListChanged implements tagr.Observer.
func (h *Hub) ListChanged(ev tagr.ListEvent) {
	h.Broadcast(listMessage(ev))
}

// ItemChanged implements tagr.Observer.
func (h *Hub) ItemChanged(ev tagr.ItemEvent) {
	h.Broadcast(itemMessage(ev))
}

// Broadcast sends msg to every client. Slow clients miss frames rather than
// blocking the caller.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode message", "type", msg.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("client buffer full, dropping frame", "type", msg.Type)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register() *client {
	c := &client{send: make(chan []byte, clientBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()
	for c := range clients {
		c.close()
	}
}

// deliver queues data for one client if it is still connected.
func (h *Hub) deliver(c *client, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
		h.logger.Warn("client buffer full, dropping reply")
	}
}
