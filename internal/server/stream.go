// internal/server/stream.go

// Package server exposes the simulation's outward events to HUD clients
// over a websocket. The stream is one-way: clients render, they do not
// decide anything, so inbound messages are drained and dropped.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"go-wave-defense/internal/event"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// A client that cannot drain its send buffer is dropped rather than
	// allowed to stall the simulation goroutine.
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the wire envelope for one simulation event.
type Message struct {
	Type    event.EventType `json:"type"`
	Payload interface{}     `json:"payload,omitempty"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans simulation events out to connected HUD clients. It subscribes to
// the dispatcher on the simulation goroutine; broadcasting only writes to
// buffered channels, so a tick never blocks on a slow client.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
}

// NewHub creates a hub subscribed to every exposed event type.
func NewHub(dispatcher *event.Dispatcher) *Hub {
	h := &Hub{clients: make(map[string]*client)}
	for _, t := range []event.EventType{
		event.EnemySpawned,
		event.EnemyKilled,
		event.EnemyReachedEnd,
		event.AllEnemiesDefeated,
		event.DamageTaken,
		event.CurrencyChanged,
		event.LivesChanged,
		event.WaveStarted,
		event.WaveCompleted,
		event.GameOver,
	} {
		dispatcher.Subscribe(t, h)
	}
	return h
}

// OnEvent marshals the event and queues it for every client.
func (h *Hub) OnEvent(e event.Event) {
	data, err := json.Marshal(Message{Type: e.Type, Payload: e.Data})
	if err != nil {
		log.Printf("stream: failed to marshal %s event: %v", e.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("stream: client %s too slow, dropping", id)
			close(c.send)
			delete(h.clients, id)
		}
	}
}

// HandleWS upgrades an HTTP request into a HUD stream connection.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	log.Printf("stream: client %s connected", c.id)

	go h.writePump(c)
	go h.readPump(c)
}

// ClientCount reports the number of connected HUD clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

// readPump exists to process control frames and to notice disconnects.
func (h *Hub) readPump(c *client) {
	defer h.drop(c)
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		close(c.send)
		delete(h.clients, c.id)
	}
	h.mu.Unlock()
	c.conn.Close()
	log.Printf("stream: client %s disconnected", c.id)
}
