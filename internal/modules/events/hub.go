package events

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"equiprent/internal/logger"
	"equiprent/internal/repository"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 256
)

// connection is one dashboard client. An empty topics set means the client
// receives everything.
type connection struct {
	conn   *websocket.Conn
	send   chan []byte
	topics map[string]bool
}

func (c *connection) wants(eventType string) bool {
	if len(c.topics) == 0 {
		return true
	}
	topic, _, _ := strings.Cut(eventType, ".")
	return c.topics[topic] || c.topics[eventType]
}

// Hub fans committed store events out to websocket clients. It implements
// repository.Publisher.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]struct{}),
	}
}

var _ repository.Publisher = (*Hub)(nil)

// Publish never blocks: a client whose buffer is full misses the event.
func (h *Hub) Publish(ev repository.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Warn("event marshal failed", "type", ev.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if !c.wants(ev.Type) {
			continue
		}
		select {
		case c.send <- data:
		default:
			logger.Debug("dropping event for slow client", "type", ev.Type)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		delete(h.connections, c)
		close(c.send)
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// serve registers conn and runs its read and write loops until the client
// goes away.
func (h *Hub) serve(conn *websocket.Conn, topics []string) {
	c := &connection{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		topics: make(map[string]bool),
	}
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			c.topics[t] = true
		}
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// readPump only handles subscription changes; dashboards never push data.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		var cmd struct {
			Type  string `json:"type"`
			Topic string `json:"topic"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil || cmd.Topic == "" {
			continue
		}

		h.mu.Lock()
		switch cmd.Type {
		case "subscribe":
			c.topics[cmd.Topic] = true
		case "unsubscribe":
			delete(c.topics, cmd.Topic)
		}
		h.mu.Unlock()
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
