// Package room holds one table's live state: who is present, who sits
// where, the deal and match in progress, and the notification replay log
// handed to sockets that join mid-game. It knows nothing about transport;
// callers get back plain wire.Notification values to broadcast or unicast.
package room

import (
	"errors"
	"sync"

	"bridgeserver/internal/cards"
	"bridgeserver/internal/deal"
	"bridgeserver/internal/match"
	"bridgeserver/internal/wire"
)

// Visibility controls whether a room is listed by list_rooms.
type Visibility int

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	if v == Private {
		return "Private"
	}
	return "Public"
}

// RoomID identifies a room within a server's registry.
type RoomID string

// Info is the static, listable description of a room.
type Info struct {
	ID         RoomID
	Name       string
	Visibility Visibility
}

var (
	ErrAlreadyInRoom   = errors.New("room: already a member")
	ErrNotInRoom       = errors.New("room: not a member")
	ErrSeatTaken       = errors.New("room: seat already taken")
	ErrInvalidPosition = errors.New("room: invalid seat position")
	ErrWrongGameState  = errors.New("room: seats cannot change mid-deal")
	ErrNotAPlayer      = errors.New("room: caller does not occupy a seat")
)

// BidRejected wraps the deal engine's BidError so the session layer can map
// it onto the precise wire response variant.
type BidRejected struct{ Err deal.BidError }

func (e *BidRejected) Error() string { return "room: bid rejected (" + e.Err.String() + ")" }

// TrickRejected wraps the deal engine's TrickError.
type TrickRejected struct{ Err deal.TrickError }

func (e *TrickRejected) Error() string { return "room: card rejected (" + e.Err.String() + ")" }

// Room is one table: membership, seats, the deal/match engines and the
// notification replay log. All mutating operations take the room's lock;
// none of them sleep or block while holding it.
type Room struct {
	mu sync.RWMutex

	info    Info
	members map[string]struct{}
	seats   [4]string // nickname per seat, "" if empty

	dl     *deal.Deal
	mt     *match.Match
	dealer cards.Player // seat that opens the next deal

	log []wire.Notification
}

// New creates an empty room, unseated, with no deal in progress.
func New(id RoomID, name string, vis Visibility) *Room {
	return &Room{
		info:    Info{ID: id, Name: name, Visibility: vis},
		members: make(map[string]struct{}),
		dl:      deal.New(),
		mt:      match.New(),
		dealer:  cards.North,
	}
}

// Info returns the room's static description.
func (r *Room) Info() Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.info
}

// MemberCount returns how many sockets currently belong to the room
// (seated or merely watching).
func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Members lists every nickname currently in the room.
func (r *Room) Members() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.members))
	for m := range r.members {
		out = append(out, m)
	}
	return out
}

// Join adds nickname to the room's membership (not yet seated).
func (r *Room) Join(nickname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[nickname]; ok {
		return ErrAlreadyInRoom
	}
	r.members[nickname] = struct{}{}
	return nil
}

// Leave removes nickname from the room entirely, vacating its seat if it
// held one and the deal has not yet started. It reports the vacated seat,
// if any, so the caller can broadcast a select_place_notification.
func (r *Room) Leave(nickname string) (vacated *cards.Player, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.members[nickname]; !present {
		return nil, false
	}
	delete(r.members, nickname)
	for i, occ := range r.seats {
		if occ == nickname {
			if r.dl.State() == deal.WaitingForPlayers {
				r.seats[i] = ""
				p := cards.Player(i)
				vacated = &p
			}
			break
		}
	}
	return vacated, true
}

// Seats returns the current seat occupants (empty string for an open seat).
func (r *Room) Seats() [4]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seats
}

// FindSeat returns the seat nickname occupies, if any.
func (r *Room) FindSeat(nickname string) (cards.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findSeatLocked(nickname)
}

func (r *Room) findSeatLocked(nickname string) (cards.Player, bool) {
	for i, occ := range r.seats {
		if occ == nickname {
			return cards.Player(i), true
		}
	}
	return 0, false
}

// DealState exposes the current deal's lifecycle stage to callers that need
// to decide whether a seat change is legal right now.
func (r *Room) DealState() deal.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dl.State()
}
