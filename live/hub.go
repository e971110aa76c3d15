package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/little-lemon/utils"
)

// Event types
const (
	EventMenuResults  = "menu_results"
	EventSessionReset = "session_reset"
	EventError        = "error"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Client membungkus satu koneksi websocket; gorilla hanya mengizinkan satu
// writer pada satu waktu.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub menampung semua client yang sedang membuka layar menu.
type Hub struct {
	clients map[*Client]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register -> menambahkan connection ke hub
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := &Client{conn: conn}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[client] = struct{}{}
	return client
}

// Unregister -> melepaskan dan menutup connection
func (h *Hub) Unregister(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.conn.Close()
}

func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastSessionReset tells every open screen that the profile was cleared
// and the user is back at onboarding.
func (h *Hub) BroadcastSessionReset() {
	h.broadcast(Message{
		Event: EventSessionReset,
		Data:  map[string]bool{"onboarded": false},
	})
}

func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mutex.Unlock()

	utils.InfoLogger.Debugf("Broadcasting %s to %d clients", msg.Event, len(clients))

	for _, c := range clients {
		if err := c.Send(msg); err != nil {
			utils.ErrorLogger.Warnf("Error sending %s to client: %v", msg.Event, err)
		}
	}
}
