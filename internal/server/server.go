// Package server holds the process-wide registry: who is logged in, under
// which nickname, and which rooms currently exist. One read-write lock
// guards both maps, matching the single coarse-grained lock the teacher's
// own match registry uses rather than one lock per map.
package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"bridgeserver/internal/room"
)

var (
	ErrUsernameTaken  = errors.New("server: username already logged in")
	ErrRoomNotFound   = errors.New("server: room not found")
	ErrRoomNameBlank  = errors.New("server: room name must not be blank")
)

// State is the single process-wide registry of logged-in users and rooms.
type State struct {
	mu    sync.RWMutex
	users map[string]struct{}
	rooms map[room.RoomID]*room.Room
}

// New returns an empty server state.
func New() *State {
	return &State{
		users: make(map[string]struct{}),
		rooms: make(map[room.RoomID]*room.Room),
	}
}

// Login registers nickname as logged in for the lifetime of its connection.
// Reconnecting under the same nickname is rejected while the prior
// connection's User is still registered — see DESIGN.md.
func (s *State) Login(nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[nickname]; taken {
		return ErrUsernameTaken
	}
	s.users[nickname] = struct{}{}
	return nil
}

// Logout releases nickname, e.g. on socket disconnect.
func (s *State) Logout(nickname string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, nickname)
}

// RegisterRoom creates a new room and returns its id.
func (s *State) RegisterRoom(name string, vis room.Visibility) (room.RoomID, error) {
	if name == "" {
		return "", ErrRoomNameBlank
	}
	id := room.RoomID(uuid.NewString())
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = room.New(id, name, vis)
	return id, nil
}

// Room looks up a room by id.
func (s *State) Room(id room.RoomID) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// ListRooms returns every Public room's static info, for list_rooms.
func (s *State) ListRooms() []room.Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]room.Info, 0, len(s.rooms))
	for _, r := range s.rooms {
		info := r.Info()
		if info.Visibility == room.Public {
			out = append(out, info)
		}
	}
	return out
}
