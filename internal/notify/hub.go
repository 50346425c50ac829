package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

// Event is a real-time front-desk event pushed to dashboard clients. The
// ID lets a reconnecting dashboard deduplicate events it already rendered.
type Event struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

// connection is a single dashboard WebSocket client.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans committed ledger events out to every connected dashboard.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
	logger      zerolog.Logger
}

var _ Sender = (*Hub)(nil)

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		connections: make(map[*connection]struct{}),
		logger:      logger,
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

// Notify broadcasts to all connected clients. Delivery is at-most-once:
// a slow client's event is dropped, not queued unboundedly.
func (h *Hub) Notify(_ context.Context, kind string, payload any) bool {
	data, err := json.Marshal(Event{ID: uuid.NewString(), Kind: kind, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		h.logger.Warn().Err(err).Str("kind", kind).Msg("notify: marshal failed")
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		select {
		case c.send <- data:
		default:
			h.logger.Warn().Int64("user_id", c.userID).Str("kind", kind).Msg("notify: slow client, event dropped")
		}
	}
	return true
}

// ServeWS upgrades the request and runs the connection until disconnect.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID int64) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &connection{userID: userID, conn: conn, send: make(chan []byte, 64)}
	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
	return nil
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Dashboards only listen; inbound frames are drained for pong handling.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
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
