package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Connection wraps a websocket with a write lock so multiple goroutines
// (read-loop echoes, toast pushes) can share it.
type Connection struct {
	conn     *websocket.Conn
	mu       sync.Mutex
	LastSeen time.Time
}

func NewConnection(conn *websocket.Conn) *Connection {
	return &Connection{conn: conn, LastSeen: time.Now()}
}

// Send writes one frame. Errors are returned so callers can drop dead peers.
func (c *Connection) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeen = time.Now()
	return c.conn.WriteJSON(msg)
}

// ReadMessage blocks for the next client frame.
func (c *Connection) ReadMessage(msg *Message) error {
	return c.conn.ReadJSON(msg)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

// Hub tracks the open connections per user so events can be pushed to every
// device a user has on screen.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*Connection]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*Connection]struct{})}
}

func (h *Hub) Add(userID string, c *Connection) {
	h.mu.Lock()
	if _, ok := h.conns[userID]; !ok {
		h.conns[userID] = make(map[*Connection]struct{})
	}
	h.conns[userID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(userID string, c *Connection) {
	h.mu.Lock()
	if set, ok := h.conns[userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	h.mu.Unlock()
	_ = c.Close()
}

// Send pushes a frame to all of a user's connections, pruning peers whose
// writes fail.
func (h *Hub) Send(userID string, msg Message) {
	h.mu.RLock()
	targets := make([]*Connection, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.Send(msg); err != nil {
			log.Printf("[WARN] ws send to %s failed, dropping connection: %v", userID, err)
			h.Remove(userID, c)
		}
	}
}
