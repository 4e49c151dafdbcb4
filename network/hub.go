package network

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// SocketEvent is one message of the operator event feed. The feed is a
// monitoring surface for connected UIs; the job submitter's contract stays
// the callback stream.
type SocketEvent struct {
	Name string `json:"name"`
	Data any    `json:"data"`
}

// Hub fans job lifecycle events out to connected websocket clients.
// Publish never blocks the publisher; when the queue is full the event is
// dropped.
type Hub struct {
	mu       sync.Mutex
	conns    []*wsConnection
	events   chan SocketEvent
	upGrader websocket.Upgrader
}

type wsConnection struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsConnection) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

func NewHub() *Hub {
	return &Hub{
		events: make(chan SocketEvent, 1000),
		upGrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool {
			return true
		}},
	}
}

// Publish implements jobs.EventSink.
func (h *Hub) Publish(name string, data any) {
	select {
	case h.events <- SocketEvent{Name: name, Data: data}:
	default:
		log.Warnf("[Hub] Event queue full, dropping %s", name)
	}
}

// Run drains the event queue until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Infoln("[Hub] Stopped")
			return
		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event SocketEvent) {
	h.mu.Lock()
	conns := make([]*wsConnection, len(h.conns))
	copy(conns, h.conns)
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.send(event); err != nil {
			log.Errorf("[Hub] %s", err)
			h.remove(conn)
		}
	}
}

func (h *Hub) add(conn *wsConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns = append(h.conns, conn)
}

func (h *Hub) remove(conn *wsConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, c := range h.conns {
		if c == conn {
			h.conns = append(h.conns[:i], h.conns[i+1:]...)
			break
		}
	}
	_ = conn.ws.Close()
}

// Handle upgrades the request and keeps the connection registered until the
// client goes away. Clients only listen; inbound messages are discarded.
func (h *Hub) Handle(c *gin.Context) {
	ws, err := h.upGrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("[Hub] Upgrade failed: %s", err)
		return
	}

	conn := &wsConnection{ws: ws}
	h.add(conn)
	log.Infoln("[Hub] Client connected")

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				h.remove(conn)
				log.Infoln("[Hub] Client disconnected")
				return
			}
		}
	}()
}
