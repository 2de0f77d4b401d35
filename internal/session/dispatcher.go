// Package session is the per-socket dispatcher: it authenticates, validates
// preconditions, invokes the room/server operations under their own locks,
// and turns the result into wire responses and notifications. It never
// holds a room lock while broadcasting — internal/room already returns
// plain data once its lock is released, and internal/transport does the
// pacing.
package session

import (
	"encoding/json"

	"bridgeserver/internal/cards"
	"bridgeserver/internal/log"
	"bridgeserver/internal/room"
	"bridgeserver/internal/server"
	"bridgeserver/internal/transport"
	"bridgeserver/internal/wire"
)

var logger = log.For("session")

// Dispatcher routes one connection's frames to the right handler.
type Dispatcher struct {
	srv *server.State
	hub *transport.Hub
}

// NewDispatcher wires a dispatcher to the server registry and transport hub.
func NewDispatcher(srv *server.State, hub *transport.Hub) *Dispatcher {
	return &Dispatcher{srv: srv, hub: hub}
}

// OnMessage is the transport.Handler entry point.
func (d *Dispatcher) OnMessage(c *transport.Conn, env wire.Envelope) {
	handler, ok := handlers[env.Event]
	if !ok {
		logger.Warn().Str("event", env.Event).Msg("unknown event")
		return
	}
	handler(d, c, env.Payload)
}

// OnClose is the transport.CloseHandler entry point: it logs the user out
// and, if in a room, leaves it and notifies the room. A seat is vacated
// only while the deal is still WaitingForPlayers (see room.Leave).
func (d *Dispatcher) OnClose(c *transport.Conn) {
	if c.Nickname == "" {
		return
	}
	if c.RoomID != "" {
		d.leaveRoom(c)
	}
	d.srv.Logout(c.Nickname)
}

type handlerFunc func(d *Dispatcher, c *transport.Conn, payload json.RawMessage)

var handlers = map[string]handlerFunc{
	"login":         (*Dispatcher).handleLogin,
	"list_rooms":    (*Dispatcher).handleListRooms,
	"register_room": (*Dispatcher).handleRegisterRoom,
	"join_room":     (*Dispatcher).handleJoinRoom,
	"leave_room":    (*Dispatcher).handleLeaveRoom,
	"list_places":   (*Dispatcher).handleListPlaces,
	"select_place":  (*Dispatcher).handleSelectPlace,
	"get_cards":     (*Dispatcher).handleGetCards,
	"make_bid":      (*Dispatcher).handleMakeBid,
	"make_trick":    (*Dispatcher).handleMakeTrick,
}

func (d *Dispatcher) respond(c *transport.Conn, event string, payload any) {
	d.hub.Unicast(c, wire.Notification{Event: event, Payload: payload})
}

func (d *Dispatcher) requireLogin(c *transport.Conn) bool {
	return c.Nickname != ""
}

func (d *Dispatcher) roomOf(c *transport.Conn) (*room.Room, bool) {
	if c.RoomID == "" {
		return nil, false
	}
	r, err := d.srv.Room(c.RoomID)
	if err != nil {
		return nil, false
	}
	return r, true
}

func playerPtr(p cards.Player) *cards.Player { return &p }
