package event

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

const (
	clientBufferSize  = 64
	publishBufferSize = 256
)

// Client is one subscriber of the item change feed. Messages are delivered on
// Send until the hub closes it.
type Client struct {
	ID   string
	Send chan []byte
}

func NewClient() *Client {
	return &Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, clientBufferSize),
	}
}

// Hub fans item events out to every registered client. A client that cannot
// keep up is dropped rather than slowing the others down.
type Hub struct {
	clients    map[string]*Client
	mu         sync.RWMutex
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, publishBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.Send <- message:
				default:
					zap.L().Warn("dropping slow event subscriber", zap.String("client_id", id))
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds client to the hub. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues event for delivery. It never blocks: when the queue is full
// or the hub has stopped the event is dropped.
func (h *Hub) Publish(event domain.ItemEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode item event", zap.Error(err))
		return
	}

	select {
	case <-h.done:
	case h.broadcast <- message:
	default:
		zap.L().Warn("event queue full, dropping item event", zap.String("type", string(event.Type)))
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
