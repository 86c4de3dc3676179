package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return originAllowed(r.Header.Get("Origin"), r.Host)
	},
}

// originAllowed accepts same-origin connections: no Origin header, or an
// Origin whose host matches the Host the panel connected to. Comparing
// against the request's own Host keeps the check valid on whatever address
// the server was configured to listen on.
func originAllowed(origin, host string) bool {
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host != host {
		log.Printf("WebSocket: Rejected origin: %s", origin)
		return false
	}
	return true
}

// WSMessage is the envelope every panel receives.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSManager tracks connected display panels and pushes each published
// location record to all of them, so every open tab shows the same current
// record.
type WSManager struct {
	publisher ports.Publisher
	clients   map[*websocket.Conn]struct{}
	mu        sync.Mutex
}

func NewWSManager(publisher ports.Publisher) *WSManager {
	return &WSManager{
		publisher: publisher,
		clients:   make(map[*websocket.Conn]struct{}),
	}
}

// SetPublisher breaks the construction cycle: the publisher broadcasts
// through the manager, and the manager replays the publisher's current
// record to new connections.
func (m *WSManager) SetPublisher(publisher ports.Publisher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publisher = publisher
}

// Start exists for lifecycle symmetry; broadcasting is push-driven by the
// publisher, so there is no sweep loop to run.
func (m *WSManager) Start(ctx context.Context) {}

// HandleWebSocket upgrades the connection and replays the current record so
// a freshly opened panel is not blank.
func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	m.mu.Lock()
	m.clients[conn] = struct{}{}
	publisher := m.publisher
	m.mu.Unlock()

	if publisher != nil {
		if rec, ok := publisher.Current(); ok {
			m.writeTo(conn, WSMessage{Type: "location", Payload: rec})
		}
	}

	// Clean up on disconnect
	go func() {
		defer conn.Close()
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// BroadcastLocation pushes a published record to every panel.
func (m *WSManager) BroadcastLocation(rec domain.LocationInfo) {
	m.broadcastMessage(WSMessage{Type: "location", Payload: rec})
}

func (m *WSManager) broadcastMessage(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(m.clients, conn)
		}
	}
}

func (m *WSManager) writeTo(conn *websocket.Conn, msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_ = conn.WriteMessage(websocket.TextMessage, data)
}
