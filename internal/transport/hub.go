// Package transport is the WebSocket edge: it upgrades HTTP connections,
// decodes/encodes the wire.Envelope frames, and fans notifications out to a
// room's connections with the pacing delay spec.md's external interface
// calls for — never holding the hub's lock across that delay.
package transport

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bridgeserver/internal/log"
	"bridgeserver/internal/room"
	"bridgeserver/internal/wire"
)

var logger = log.For("transport")

// Conn is one client's WebSocket connection. Nickname and RoomID are set
// only by this connection's own read pump goroutine; they are never
// written from another goroutine.
type Conn struct {
	ws       *websocket.Conn
	send     chan []byte
	Nickname string
	RoomID   room.RoomID
}

// Handler receives decoded client frames. It is invoked from the owning
// connection's read pump goroutine, so it may freely read/write Conn's
// Nickname/RoomID fields.
type Handler func(c *Conn, env wire.Envelope)

// CloseHandler is invoked once a connection's read pump exits, from that
// same goroutine.
type CloseHandler func(c *Conn)

// Hub owns the set of live connections, grouped by room, and the upgrade
// endpoint.
type Hub struct {
	mu       sync.RWMutex
	byRoom   map[room.RoomID]map[*Conn]struct{}
	upgrader websocket.Upgrader

	pacing  time.Duration
	onMsg   Handler
	onClose CloseHandler
}

// NewHub builds a Hub. pacing is the delay Broadcast inserts before each
// notification that has PaceBefore set; zero disables it.
func NewHub(pacing time.Duration, onMsg Handler, onClose CloseHandler) *Hub {
	return &Hub{
		byRoom:  make(map[room.RoomID]map[*Conn]struct{}),
		pacing:  pacing,
		onMsg:   onMsg,
		onClose: onClose,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// SetHandlers binds the message/close handlers after construction, for the
// common case where the dispatcher itself needs a reference to the hub
// (breaking what would otherwise be a construction cycle).
func (h *Hub) SetHandlers(onMsg Handler, onClose CloseHandler) {
	h.onMsg = onMsg
	h.onClose = onClose
}

// ServeHTTP upgrades the request to a WebSocket and spawns its pumps.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &Conn{ws: ws, send: make(chan []byte, 32)}
	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *Conn) {
	defer func() {
		h.leaveAllRooms(c)
		close(c.send)
		c.ws.Close()
		if h.onClose != nil {
			h.onClose(c)
		}
	}()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var env wire.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			logger.Warn().Err(err).Msg("dropping malformed frame")
			continue
		}
		if h.onMsg != nil {
			h.onMsg(c, env)
		}
	}
}

func (h *Hub) writePump(c *Conn) {
	for data := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (h *Hub) leaveAllRooms(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.byRoom {
		delete(conns, c)
	}
}

// Join adds c to a room's fan-out set.
func (h *Hub) Join(id room.RoomID, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.byRoom[id]
	if !ok {
		conns = make(map[*Conn]struct{})
		h.byRoom[id] = conns
	}
	conns[c] = struct{}{}
}

// Leave removes c from a room's fan-out set.
func (h *Hub) Leave(id room.RoomID, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.byRoom[id]; ok {
		delete(conns, c)
	}
}

func encodeFrame(event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire.Envelope{Event: event, Payload: raw})
}

// Unicast sends one notification to a single connection without pacing.
func (h *Hub) Unicast(c *Conn, n wire.Notification) {
	data, err := encodeFrame(n.Event, n.Payload)
	if err != nil {
		logger.Error().Err(err).Str("event", n.Event).Msg("failed to encode notification")
		return
	}
	select {
	case c.send <- data:
	default:
		logger.Warn().Str("nickname", c.Nickname).Msg("send buffer full, dropping frame")
	}
}

// Broadcast fans notifications out to every connection in room id, except
// those in skip. Only notifications with PaceBefore set (AuctionFinished,
// TrickFinished, DealFinished — see wire.Notification) are preceded by the
// h.pacing delay; ordinary notifications such as MakeBid/AskBid or
// MakeTrick/AskTrick send back-to-back. It takes a snapshot of the
// recipient set under lock and then releases the lock before
// sleeping/sending, so no other goroutine is blocked on room membership
// changes during the fan-out.
func (h *Hub) Broadcast(id room.RoomID, notifications []wire.Notification, skip *Conn) {
	h.mu.RLock()
	conns := h.byRoom[id]
	recipients := make([]*Conn, 0, len(conns))
	for c := range conns {
		if c != skip {
			recipients = append(recipients, c)
		}
	}
	h.mu.RUnlock()

	for _, n := range notifications {
		if h.pacing > 0 && n.PaceBefore {
			time.Sleep(h.pacing)
		}
		data, err := encodeFrame(n.Event, n.Payload)
		if err != nil {
			logger.Error().Err(err).Str("event", n.Event).Msg("failed to encode notification")
			continue
		}
		for _, c := range recipients {
			select {
			case c.send <- data:
			default:
				logger.Warn().Str("nickname", c.Nickname).Msg("send buffer full, dropping frame")
			}
		}
	}
}
