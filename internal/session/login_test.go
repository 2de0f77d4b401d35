package session

import (
	"encoding/json"
	"testing"
	"time"

	"bridgeserver/internal/room"
	"bridgeserver/internal/server"
	"bridgeserver/internal/transport"
	"bridgeserver/internal/wire"
)

func newTestDispatcher() *Dispatcher {
	srv := server.New()
	hub := transport.NewHub(0, nil, nil)
	return NewDispatcher(srv, hub)
}

func lastFrame(t *testing.T, c *transport.Conn) wire.Envelope {
	t.Helper()
	frames := c.Drain()
	if len(frames) == 0 {
		t.Fatalf("expected at least one frame, got none")
	}
	var env wire.Envelope
	if err := json.Unmarshal(frames[len(frames)-1], &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env
}

func decodePayloadString(t *testing.T, env wire.Envelope) string {
	t.Helper()
	var s string
	if err := json.Unmarshal(env.Payload, &s); err != nil {
		t.Fatalf("expected bare string payload for %s, got %s: %v", env.Event, env.Payload, err)
	}
	return s
}

func login(d *Dispatcher, c *transport.Conn, nickname string) {
	payload, _ := json.Marshal(wire.LoginMessage{Nickname: nickname})
	d.OnMessage(c, wire.Envelope{Event: "login", Payload: payload})
}

func TestLoginRejectsShortNickname(t *testing.T) {
	d := newTestDispatcher()
	c := transport.NewTestConn()
	login(d, c, "ab")

	env := lastFrame(t, c)
	if env.Event != "login_response" || decodePayloadString(t, env) != "InvalidUsername" {
		t.Fatalf("expected InvalidUsername, got %+v", env)
	}
}

func TestLoginRejectsNicknameOverConfiguredLength(t *testing.T) {
	d := newTestDispatcher()
	c := transport.NewTestConn()
	login(d, c, "averyveryverylongnickname")

	env := lastFrame(t, c)
	if decodePayloadString(t, env) != "InvalidUsername" {
		t.Fatalf("expected InvalidUsername, got %+v", env)
	}
}

func TestLoginSucceedsOnce(t *testing.T) {
	d := newTestDispatcher()
	c := transport.NewTestConn()
	login(d, c, "alice")

	env := lastFrame(t, c)
	if env.Event != "login_response" || decodePayloadString(t, env) != "Ok" {
		t.Fatalf("expected Ok, got %+v", env)
	}
	if c.Nickname != "alice" {
		t.Fatalf("expected connection bound to alice, got %q", c.Nickname)
	}
}

func TestLoginRejectsDuplicateNicknameAcrossConnections(t *testing.T) {
	d := newTestDispatcher()
	first := transport.NewTestConn()
	login(d, first, "alice")
	_ = lastFrame(t, first)

	second := transport.NewTestConn()
	login(d, second, "alice")

	env := lastFrame(t, second)
	if decodePayloadString(t, env) != "UsernameAlreadyTaken" {
		t.Fatalf("expected UsernameAlreadyTaken, got %+v", env)
	}
}

func TestLoginRejectsSecondAttemptOnSameConnection(t *testing.T) {
	d := newTestDispatcher()
	c := transport.NewTestConn()
	login(d, c, "alice")
	_ = lastFrame(t, c)

	login(d, c, "bob")
	env := lastFrame(t, c)
	if decodePayloadString(t, env) != "AlreadyLoggedIn" {
		t.Fatalf("expected AlreadyLoggedIn, got %+v", env)
	}
}

func TestFullRoomLifecycleReachesAuction(t *testing.T) {
	d := newTestDispatcher()
	conns := make([]*transport.Conn, 4)
	names := []string{"alice", "bob", "carol", "dave"}
	for i, n := range names {
		conns[i] = transport.NewTestConn()
		login(d, conns[i], n)
		_ = lastFrame(t, conns[i])
	}

	regPayload, _ := json.Marshal(wire.RegisterRoomMessage{Name: "table", Visibility: "Public"})
	d.OnMessage(conns[0], wire.Envelope{Event: "register_room", Payload: regPayload})
	regEnv := lastFrame(t, conns[0])
	var regData struct {
		Ok struct {
			RoomID string `json:"room_id"`
		} `json:"Ok"`
	}
	if err := json.Unmarshal(regEnv.Payload, &regData); err != nil {
		t.Fatalf("expected register_room Ok with room_id, got %s: %v", regEnv.Payload, err)
	}
	roomID := regData.Ok.RoomID
	if roomID == "" {
		t.Fatalf("expected non-empty room id")
	}

	for i, c := range conns {
		joinPayload, _ := json.Marshal(wire.JoinRoomMessage{RoomID: roomID})
		d.OnMessage(c, wire.Envelope{Event: "join_room", Payload: joinPayload})
		env := lastFrame(t, c)
		if decodePayloadString(t, env) != "Ok" {
			t.Fatalf("join_room for %s: expected Ok, got %+v", names[i], env)
		}
	}

	for i, c := range conns {
		pos := wire.PlayerJSON(i)
		selPayload, _ := json.Marshal(wire.SelectPlaceMessage{Position: &pos})
		d.OnMessage(c, wire.Envelope{Event: "select_place", Payload: selPayload})
		// The room broadcast (select_place_notification, and for the fourth
		// seat GameStarted/AskBid) also reaches this connection after its
		// response, so the response frame is picked out by event name.
		var env wire.Envelope
		for _, f := range c.Drain() {
			var e wire.Envelope
			if err := json.Unmarshal(f, &e); err == nil && e.Event == "select_place_response" {
				env = e
			}
		}
		if decodePayloadString(t, env) != "Ok" {
			t.Fatalf("select_place for %s: expected Ok, got %+v", names[i], env)
		}
	}

	// Allow the fourth seat's broadcast (GameStarted/AskBid) to be enqueued.
	time.Sleep(time.Millisecond)
	r, err := d.srv.Room(room.RoomID(roomID))
	if err != nil {
		t.Fatalf("room lookup: %v", err)
	}
	if r.DealState().String() != "Auction" {
		t.Fatalf("expected Auction once all four seats are filled, got %v", r.DealState())
	}
}
