package services

import (
	"sync"
	"time"
)

// NotificationEvent is a real-time notification pushed to a connected
// client over SSE.
type NotificationEvent struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	ProjectID *uint     `json:"project_id,omitempty"`
	SOWID     *uint     `json:"sow_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type sseClient struct {
	userID uint
	ch     chan NotificationEvent
}

// SSEHub manages SSE client connections and routes notification events to
// the clients belonging to the target user.
type SSEHub struct {
	clients map[string]sseClient
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub instance
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]sseClient),
	}
}

// Subscribe registers a client for a user and returns its event channel.
func (h *SSEHub) Subscribe(clientID string, userID uint) <-chan NotificationEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Buffered channel to prevent blocking
	ch := make(chan NotificationEvent, 100)
	h.clients[clientID] = sseClient{userID: userID, ch: ch}
	return ch
}

// Unsubscribe removes a client from the hub
func (h *SSEHub) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.ch)
		delete(h.clients, clientID)
	}
}

// Publish delivers an event to every connection held by the target user.
func (h *SSEHub) Publish(event NotificationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.userID != event.UserID {
			continue
		}
		// Non-blocking send - drop event if client buffer is full
		select {
		case c.ch <- event:
		default:
			// Client is slow, skip this event
		}
	}
}

// ClientCount returns the number of connected clients
func (h *SSEHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Global SSE Hub instance
var globalSSEHub *SSEHub
var sseHubOnce sync.Once

// GetSSEHub returns the global SSE hub singleton
func GetSSEHub() *SSEHub {
	sseHubOnce.Do(func() {
		globalSSEHub = NewSSEHub()
	})
	return globalSSEHub
}
