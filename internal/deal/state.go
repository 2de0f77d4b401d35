// Package deal implements the single-hand state machine: dealing, auction,
// trick play and the raw (unscored) result of one deal. It knows nothing
// about rubber scoring, rooms or sockets — that is internal/match and
// internal/room.
package deal

import "bridgeserver/internal/cards"

// State is the lifecycle stage of a single deal.
type State int

const (
	WaitingForPlayers State = iota
	Auction
	Tricking
	Finished
)

func (s State) String() string {
	switch s {
	case WaitingForPlayers:
		return "WaitingForPlayers"
	case Auction:
		return "Auction"
	case Tricking:
		return "Tricking"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// GameValue tracks whether the contract has been doubled or redoubled.
type GameValue int

const (
	PlainValue GameValue = iota
	DoubledValue
	RedoubledValue
)

// Deal is the authoritative, transient state of a single hand.
type Deal struct {
	state State

	playerCards    [4][]cards.Card
	collectedCards [4][]cards.Card
	currentTrick   []cards.Card
	trickLeader    cards.Player

	maxBid    cards.Bid
	maxBidder cards.Player
	gameValue GameValue

	currentPlayer cards.Player
	trickNo       int
}

// New constructs a deal in WaitingForPlayers.
func New() *Deal {
	return &Deal{state: WaitingForPlayers}
}

// State returns the current lifecycle stage.
func (d *Deal) State() State { return d.state }

// CurrentPlayer returns the seat on turn to act.
func (d *Deal) CurrentPlayer() cards.Player { return d.currentPlayer }

// MaxBid returns the highest Play bid made so far (PassBid if none).
func (d *Deal) MaxBid() cards.Bid { return d.maxBid }

// MaxBidder returns the seat that made MaxBid. Only meaningful once MaxBid is a Play.
func (d *Deal) MaxBidder() cards.Player { return d.maxBidder }

// GameValue returns whether the contract is plain, doubled or redoubled.
func (d *Deal) GameValue() GameValue { return d.gameValue }

// TrickNo returns the number of tricks resolved so far (0..13).
func (d *Deal) TrickNo() int { return d.trickNo }

// CurrentTrick returns the cards played so far in the trick in progress (0..3).
func (d *Deal) CurrentTrick() []cards.Card {
	out := make([]cards.Card, len(d.currentTrick))
	copy(out, d.currentTrick)
	return out
}

// Declarer is the seat that won the auction (same as MaxBidder once Tricking).
func (d *Deal) Declarer() cards.Player { return d.maxBidder }

// Dummy is the declarer's partner.
func (d *Deal) Dummy() cards.Player { return d.maxBidder.Partner() }

// GetCards returns player's current hand.
func (d *Deal) GetCards(p cards.Player) []cards.Card {
	out := make([]cards.Card, len(d.playerCards[p]))
	copy(out, d.playerCards[p])
	return out
}

// GetDummyCards returns the dummy's hand once the opening lead has been
// made; it is undefined (nil, false) before that point.
func (d *Deal) GetDummyCards() ([]cards.Card, bool) {
	if d.state != Tricking && d.state != Finished {
		return nil, false
	}
	openingLeadMade := d.trickNo > 0 || len(d.currentTrick) > 0
	if !openingLeadMade {
		return nil, false
	}
	return d.GetCards(d.Dummy()), true
}

// GetDummyPlayer returns the dummy seat once a contract has been reached.
func (d *Deal) GetDummyPlayer() (cards.Player, bool) {
	if d.state == WaitingForPlayers || d.state == Auction {
		return 0, false
	}
	return d.Dummy(), true
}

// CollectedCards returns the cards won in tricks by player so far.
func (d *Deal) CollectedCards(p cards.Player) []cards.Card {
	out := make([]cards.Card, len(d.collectedCards[p]))
	copy(out, d.collectedCards[p])
	return out
}
