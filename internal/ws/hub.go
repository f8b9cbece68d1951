package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Hub tracks open notification sockets per user and pushes JSON payloads to
// every connection a user has open. Delivery is best-effort: a failed write
// drops the connection, never the caller.
type Hub struct {
	mu    sync.Mutex
	conns map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[*websocket.Conn]bool)}
}

func (h *Hub) Add(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *Hub) Remove(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	conn.Close()
}

func (h *Hub) Push(userID uint, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[userID] {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("ws push to user %d failed: %v", userID, err)
			delete(h.conns[userID], conn)
			conn.Close()
		}
	}
}
