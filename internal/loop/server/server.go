// Package server tracks the live terminal sessions of a multi-connection
// host so they can be told about a shutdown. Each session runs its own game;
// nothing is shared between them.
package server

import (
	"sync"
	"time"
)

// EventType identifies the type of session event.
type EventType int

const (
	EventServerShutdown EventType = iota // The host is going down
)

// Event is sent from the hub to a session.
type Event struct {
	Type EventType
}

// Handle represents a session registered with the hub.
type Handle struct {
	ID       int
	Username string
	Events   chan Event // Closed when the hub forgets the session
}

// Hub keeps the set of connected sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Handle
	nextID   int
	closing  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int]*Handle),
		nextID:   1,
	}
}

// Register adds a session and returns its handle. A session registering
// during shutdown is told immediately.
func (h *Hub) Register(username string) *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &Handle{
		ID:       h.nextID,
		Username: username,
		Events:   make(chan Event, 4),
	}
	h.nextID++
	h.sessions[handle.ID] = handle

	if h.closing {
		handle.Events <- Event{Type: EventServerShutdown}
	}
	return handle
}

// Unregister removes a session. Unknown ids are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if handle, ok := h.sessions[id]; ok {
		delete(h.sessions, id)
		close(handle.Events)
	}
}

// Count returns the number of connected sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session that the host is going down and waits for
// them to disconnect, up to timeout. It returns the number of sessions still
// connected when it gave up.
func (h *Hub) Shutdown(timeout time.Duration) int {
	h.mu.Lock()
	h.closing = true
	for _, handle := range h.sessions {
		select {
		case handle.Events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := h.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			return h.Count()
		case <-ticker.C:
		}
	}
}
