package room

import (
	"bridgeserver/internal/cards"
	"bridgeserver/internal/deal"
	"bridgeserver/internal/wire"
)

// SelectPlace claims pos for nickname, or vacates nickname's current seat
// when pos is nil. Seats can only change while the deal is
// WaitingForPlayers. Claiming the fourth seat starts the deal and returns
// the GameStarted/AskBid notifications alongside the select_place one.
func (r *Room) SelectPlace(nickname string, pos *cards.Player) ([]wire.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[nickname]; !ok {
		return nil, ErrNotInRoom
	}
	if r.dl.State() != deal.WaitingForPlayers {
		return nil, ErrWrongGameState
	}

	if pos == nil {
		if seat, ok := r.findSeatLocked(nickname); ok {
			r.seats[seat] = ""
			return []wire.Notification{wire.SelectPlaceNotification(nickname, nil)}, nil
		}
		return nil, ErrNotAPlayer
	}

	seat := *pos
	if seat < cards.North || seat > cards.West {
		return nil, ErrInvalidPosition
	}
	if r.seats[seat] != "" {
		return nil, ErrSeatTaken
	}
	if old, ok := r.findSeatLocked(nickname); ok {
		r.seats[old] = ""
	}
	r.seats[seat] = nickname

	pj := wire.PlayerJSON(seat)
	out := []wire.Notification{wire.SelectPlaceNotification(nickname, &pj)}
	if r.allSeatsFilledLocked() {
		out = append(out, r.startDealLocked()...)
	}
	return out, nil
}

func (r *Room) allSeatsFilledLocked() bool {
	for _, occ := range r.seats {
		if occ == "" {
			return false
		}
	}
	return true
}

// startDealLocked deals a fresh hand with r.dealer on lead and returns the
// notifications announcing it. Caller must hold r.mu.
func (r *Room) startDealLocked() []wire.Notification {
	r.dl = deal.New()
	r.dl.Start(r.dealer)
	out := []wire.Notification{
		wire.GameStartedNotification(wire.PlayerJSON(r.dealer)),
		wire.AskBidNotification(wire.PlayerJSON(r.dl.CurrentPlayer())),
	}
	r.resetLog(out...)
	return out
}
