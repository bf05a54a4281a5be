// Package ws broadcasts marketplace lifecycle events to connected
// websocket clients.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"freightmarket/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from a separate frontend origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

type envelope struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload"`
	SentAt  string         `json:"sent_at"`
}

// Hub fans lifecycle events out to every connected websocket client.
// Publish never blocks the caller: events are queued on a buffered channel
// and clients that cannot keep up are dropped, not waited on.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

var _ interfaces.INotifier = (*Hub)(nil)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run owns the client set. All membership changes and broadcasts are
// serialized through this loop, so no locking is needed elsewhere.
func (h *Hub) Run() {
	clients := make(map[*client]struct{})
	for {
		select {
		case c := <-h.register:
			clients[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer: drop it rather than stall the hub.
					delete(clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish implements interfaces.INotifier.
func (h *Hub) Publish(event string, payload map[string]any) {
	msg, err := json.Marshal(envelope{
		Event:   event,
		Payload: payload,
		SentAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		log.Printf("[ws][hub] event %s not serializable: %v", event, err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("[ws][hub] broadcast queue full, dropping event %s", event)
	}
}

// Serve upgrades the request and attaches the connection to the hub.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws][hub] upgrade failed: %v", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register <- cl

	go cl.writePump()
	go cl.readPump(h)
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Inbound messages are ignored; the socket is broadcast-only.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
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
