package session

import (
	"encoding/json"

	"bridgeserver/internal/cards"
	"bridgeserver/internal/config"
	"bridgeserver/internal/deal"
	"bridgeserver/internal/room"
	"bridgeserver/internal/transport"
	"bridgeserver/internal/wire"
)

func (d *Dispatcher) handleLogin(c *transport.Conn, payload json.RawMessage) {
	var msg wire.LoginMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "login_response", wire.LoginInvalidUsername())
		return
	}
	if c.Nickname != "" {
		d.respond(c, "login_response", wire.LoginAlreadyLoggedIn())
		return
	}
	if len(msg.Nickname) > config.Get().MaxNicknameLen {
		d.respond(c, "login_response", wire.LoginInvalidUsername())
		return
	}
	if _, err := cards.NewUser(msg.Nickname); err != nil {
		d.respond(c, "login_response", wire.LoginInvalidUsername())
		return
	}
	if err := d.srv.Login(msg.Nickname); err != nil {
		d.respond(c, "login_response", wire.LoginUsernameTaken())
		return
	}
	c.Nickname = msg.Nickname
	d.respond(c, "login_response", wire.LoginOk())
}

func (d *Dispatcher) handleListRooms(c *transport.Conn, _ json.RawMessage) {
	if !d.requireLogin(c) {
		return
	}
	infos := d.srv.ListRooms()
	out := make([]wire.RoomSummary, 0, len(infos))
	for _, info := range infos {
		r, err := d.srv.Room(info.ID)
		if err != nil {
			continue
		}
		seated := 0
		for _, occ := range r.Seats() {
			if occ != "" {
				seated++
			}
		}
		out = append(out, wire.RoomSummary{
			RoomID:     string(info.ID),
			Name:       info.Name,
			Visibility: info.Visibility.String(),
			PlayerNo:   seated,
		})
	}
	d.respond(c, "list_rooms_response", wire.ListRoomsOk(out))
}

func (d *Dispatcher) handleRegisterRoom(c *transport.Conn, payload json.RawMessage) {
	if !d.requireLogin(c) {
		return
	}
	var msg wire.RegisterRoomMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "register_room_response", wire.RegisterRoomInvalidName())
		return
	}
	vis := room.Public
	if msg.Visibility == "Private" {
		vis = room.Private
	}
	id, err := d.srv.RegisterRoom(msg.Name, vis)
	if err != nil {
		d.respond(c, "register_room_response", wire.RegisterRoomInvalidName())
		return
	}
	d.respond(c, "register_room_response", wire.RegisterRoomOk(string(id)))
}

func (d *Dispatcher) handleJoinRoom(c *transport.Conn, payload json.RawMessage) {
	if !d.requireLogin(c) {
		return
	}
	if c.RoomID != "" {
		d.respond(c, "join_room_response", wire.JoinRoomAlreadyInRoom())
		return
	}
	var msg wire.JoinRoomMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "join_room_response", wire.JoinRoomNotFound())
		return
	}
	id := room.RoomID(msg.RoomID)
	r, err := d.srv.Room(id)
	if err != nil {
		d.respond(c, "join_room_response", wire.JoinRoomNotFound())
		return
	}
	if err := r.Join(c.Nickname); err != nil {
		d.respond(c, "join_room_response", wire.JoinRoomAlreadyInRoom())
		return
	}
	c.RoomID = id
	d.hub.Join(id, c)
	d.respond(c, "join_room_response", wire.JoinRoomOk())
	for _, n := range r.ReplayLog() {
		d.hub.Unicast(c, n)
	}
	d.hub.Broadcast(id, []wire.Notification{wire.JoinRoomNotification(c.Nickname)}, c)
}

func (d *Dispatcher) leaveRoom(c *transport.Conn) {
	r, ok := d.roomOf(c)
	if !ok {
		return
	}
	id := c.RoomID
	vacated, _ := r.Leave(c.Nickname)
	d.hub.Leave(id, c)
	c.RoomID = ""

	notifications := []wire.Notification{wire.LeaveRoomNotification(c.Nickname)}
	if vacated != nil {
		notifications = append(notifications, wire.SelectPlaceNotification(c.Nickname, nil))
	}
	d.hub.Broadcast(id, notifications, nil)
}

func (d *Dispatcher) handleLeaveRoom(c *transport.Conn, _ json.RawMessage) {
	if c.RoomID == "" {
		d.respond(c, "leave_room_response", wire.LeaveRoomNotInRoom())
		return
	}
	d.leaveRoom(c)
	d.respond(c, "leave_room_response", wire.LeaveRoomOk())
}

func (d *Dispatcher) handleListPlaces(c *transport.Conn, _ json.RawMessage) {
	r, ok := d.roomOf(c)
	if !ok {
		d.respond(c, "list_places_response", wire.ListPlacesNotInRoom())
		return
	}
	seats := r.Seats()
	places := make([]wire.PlaceEntry, 4)
	for i, occ := range seats {
		entry := wire.PlaceEntry{Position: wire.PlayerJSON(cards.Player(i))}
		if occ != "" {
			name := occ
			entry.Occupant = &name
		}
		places[i] = entry
	}
	d.respond(c, "list_places_response", wire.ListPlacesOk(places))
}

func (d *Dispatcher) handleSelectPlace(c *transport.Conn, payload json.RawMessage) {
	r, ok := d.roomOf(c)
	if !ok {
		d.respond(c, "select_place_response", wire.SelectPlaceNotInRoom())
		return
	}
	var msg wire.SelectPlaceMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "select_place_response", wire.SelectPlaceInvalid())
		return
	}
	var pos *cards.Player
	if msg.Position != nil {
		pos = playerPtr(cards.Player(*msg.Position))
	}
	notifications, err := r.SelectPlace(c.Nickname, pos)
	switch err {
	case nil:
		d.respond(c, "select_place_response", wire.SelectPlaceOk())
		d.hub.Broadcast(c.RoomID, notifications, nil)
	case room.ErrSeatTaken:
		d.respond(c, "select_place_response", wire.SelectPlaceTaken())
	case room.ErrWrongGameState:
		d.respond(c, "select_place_response", wire.SelectPlaceWrongState())
	case room.ErrInvalidPosition:
		d.respond(c, "select_place_response", wire.SelectPlaceInvalid())
	case room.ErrNotInRoom, room.ErrNotAPlayer:
		d.respond(c, "select_place_response", wire.SelectPlaceNotInRoom())
	default:
		d.respond(c, "select_place_response", wire.SelectPlaceInvalid())
	}
}

func (d *Dispatcher) handleGetCards(c *transport.Conn, _ json.RawMessage) {
	r, ok := d.roomOf(c)
	if !ok {
		d.respond(c, "get_cards_response", wire.GetCardsNotInRoom())
		return
	}
	hand, pos, err := r.GetCards(c.Nickname)
	if err != nil {
		d.respond(c, "get_cards_response", wire.GetCardsNotAPlayer())
		return
	}
	cj := make([]wire.CardJSON, len(hand))
	for i, card := range hand {
		cj[i] = wire.CardJSON(card)
	}
	d.respond(c, "get_cards_response", wire.GetCardsOk(cj, wire.PlayerJSON(pos)))
}

func (d *Dispatcher) handleMakeBid(c *transport.Conn, payload json.RawMessage) {
	r, ok := d.roomOf(c)
	if !ok {
		d.respond(c, "make_bid_response", wire.MakeBidGameStateMismatch())
		return
	}
	var msg wire.MakeBidMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "make_bid_response", wire.MakeBidWrongBid())
		return
	}
	notifications, err := r.MakeBid(c.Nickname, cards.Bid(msg.Bid))
	if err != nil {
		if rej, ok := err.(*room.BidRejected); ok {
			d.respond(c, "make_bid_response", bidErrorResponse(rej.Err))
			return
		}
		d.respond(c, "make_bid_response", wire.MakeBidNotAPlayer())
		return
	}
	d.respond(c, "make_bid_response", wire.MakeBidOk())
	d.hub.Broadcast(c.RoomID, notifications, nil)
}

func bidErrorResponse(e deal.BidError) wire.Enum {
	switch e {
	case deal.GameStateMismatchBid:
		return wire.MakeBidGameStateMismatch()
	case deal.PlayerOutOfTurnBid:
		return wire.MakeBidPlayerOutOfTurn()
	case deal.CantDouble:
		return wire.MakeBidCantDouble()
	case deal.CantRedouble:
		return wire.MakeBidCantRedouble()
	default:
		return wire.MakeBidWrongBid()
	}
}

func (d *Dispatcher) handleMakeTrick(c *transport.Conn, payload json.RawMessage) {
	r, ok := d.roomOf(c)
	if !ok {
		d.respond(c, "make_trick_response", wire.MakeTrickGameStateMismatch())
		return
	}
	var msg wire.MakeTrickMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.respond(c, "make_trick_response", wire.MakeTrickCardNotFound())
		return
	}
	notifications, err := r.MakeTrick(c.Nickname, cards.Card(msg.Card))
	if err != nil {
		if rej, ok := err.(*room.TrickRejected); ok {
			d.respond(c, "make_trick_response", trickErrorResponse(rej.Err))
			return
		}
		d.respond(c, "make_trick_response", wire.MakeTrickNotAPlayer())
		return
	}
	d.respond(c, "make_trick_response", wire.MakeTrickOk())
	d.hub.Broadcast(c.RoomID, notifications, nil)
}

func trickErrorResponse(e deal.TrickError) wire.Enum {
	switch e {
	case deal.GameStateMismatchTrick:
		return wire.MakeTrickGameStateMismatch()
	case deal.PlayerOutOfTurnTrick:
		return wire.MakeTrickPlayerOutOfTurn()
	case deal.CardNotFound:
		return wire.MakeTrickCardNotFound()
	case deal.WrongCardSuit:
		return wire.MakeTrickWrongCardSuit()
	default:
		return wire.MakeTrickCardNotFound()
	}
}
