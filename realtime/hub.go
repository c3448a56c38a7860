// Package realtime pushes audit trail entries to connected admin dashboards.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"foodshare-api/models"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

type Client struct {
	Subject string
	Conn    *websocket.Conn

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

func (c *Client) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

// Ping keeps the connection alive through proxies
func (c *Client) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		_ = c.Conn.Close()
	}
}

func (h *Hub) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Event is the envelope sent to dashboards
type Event struct {
	Kind     string              `json:"kind"`
	Activity *models.ActivityLog `json:"activity"`
}

// BroadcastActivity sends entry to every client; clients that fail the write are dropped.
func (h *Hub) BroadcastActivity(entry *models.ActivityLog) {
	if h == nil || entry == nil {
		return
	}
	msg, err := json.Marshal(Event{Kind: "activity.created", Activity: entry})
	if err != nil {
		log.Printf("⚠️ realtime: encode activity %d: %v", entry.ID, err)
		return
	}

	h.mu.RLock()
	var failed []*Client
	for c := range h.clients {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			failed = append(failed, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range failed {
		h.Unregister(c)
	}
}
