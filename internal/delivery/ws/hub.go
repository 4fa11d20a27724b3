package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/gorilla/websocket"
)

// CatalogRoom is where catalog change events are broadcast.
const CatalogRoom = "catalog"

type Hub struct {
	mu     sync.Mutex
	sendMu sync.Mutex
	rooms  map[string]map[*websocket.Conn]bool
	log    *logger.ZapLogger
}

func NewHub(log *logger.ZapLogger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
		log:   log,
	}
}

var _ ports.ChangeNotifier = (*Hub)(nil)

func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "ws register",
		Fields:  map[string]any{"room": roomID, "conns": len(h.rooms[roomID])},
	})
}

func (h *Hub) Unregister(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[roomID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
	}
	if len(conns) == 0 {
		delete(h.rooms, roomID)
	}
}

// Count reports live connections in a room.
func (h *Hub) Count(roomID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}

// wsWriteTimeout bounds a single write; a subscriber that stops reading is dropped.
var wsWriteTimeout = 5 * time.Second

// SendToRoom writes msg to every connection in the room. sendMu keeps one
// writer per websocket.Conn; mu only guards the room map, so registration
// never waits on a slow subscriber.
func (h *Hub) SendToRoom(roomID string, msg []byte) {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[roomID]))
	for conn := range h.rooms[roomID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	var dead []*websocket.Conn
	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "ws send failed, dropping subscriber",
				Fields:  map[string]any{"room": roomID},
				Error:   err,
			})
			dead = append(dead, conn)
		}
	}

	for _, conn := range dead {
		h.Unregister(roomID, conn)
	}
}

// Notify broadcasts {"event": event} to the catalog room.
func (h *Hub) Notify(event string) {
	payload, err := json.Marshal(map[string]string{"event": event})
	if err != nil {
		return
	}
	h.SendToRoom(CatalogRoom, payload)
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
