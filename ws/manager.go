package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active event-feed subscriber connections.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[*websocket.Conn]struct{}
}

func NewManager() *Manager {
	return &Manager{subscribers: make(map[*websocket.Conn]struct{})}
}

// Register adds a subscriber connection.
func (m *Manager) Register(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers[conn] = struct{}{}
}

// Unregister removes and closes a subscriber connection.
func (m *Manager) Unregister(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subscribers[conn]; ok {
		_ = conn.Close()
		delete(m.subscribers, conn)
	}
}

// Broadcast sends a text message to every subscriber. Connections that fail
// to accept the write are dropped.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.subscribers, conn)
		}
	}
}

// Count returns the number of connected subscribers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}
