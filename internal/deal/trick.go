package deal

import "bridgeserver/internal/cards"

// TrickError enumerates why a card play was rejected.
type TrickError int

const (
	GameStateMismatchTrick TrickError = iota
	PlayerOutOfTurnTrick
	CardNotFound
	WrongCardSuit
)

func (e TrickError) String() string {
	switch e {
	case GameStateMismatchTrick:
		return "GameStateMismatch"
	case PlayerOutOfTurnTrick:
		return "PlayerOutOfTurn"
	case CardNotFound:
		return "CardNotFound"
	case WrongCardSuit:
		return "WrongCardSuit"
	default:
		return "Unknown"
	}
}

// TrickStatusKind discriminates the outcome of Trick.
type TrickStatusKind int

const (
	TrickInProgress TrickStatusKind = iota
	TrickFinished
	DealFinishedKind
	TrickError_ // avoid clashing with the TrickError type name
)

// ResolvedTrick describes a completed trick: the four cards in the order
// played, who led it, and who took it.
type ResolvedTrick struct {
	Cards  [4]cards.Card
	Leader cards.Player
	Taker  cards.Player
}

// GameResult is the raw, unscored outcome of a finished deal: who declared,
// the contract reached, and how many tricks the declaring side won. The
// match engine turns this into scored points.
type GameResult struct {
	Declarer  cards.Player
	Dummy     cards.Player
	Contract  cards.Bid
	GameValue GameValue
	TricksWon int // tricks taken by {Declarer, Dummy}
}

// TrickStatus is the result of a Trick call.
type TrickStatus struct {
	Kind     TrickStatusKind
	Err      TrickError
	Resolved *ResolvedTrick // set on TrickFinished and DealFinishedKind
	Result   *GameResult    // set only on DealFinishedKind
}

// Trick plays one card for player into the trick in progress, resolving
// the trick (and, on the 13th, the deal) as needed.
func (d *Deal) Trick(player cards.Player, card cards.Card) TrickStatus {
	if d.state != Tricking {
		return TrickStatus{Kind: TrickError_, Err: GameStateMismatchTrick}
	}
	if player != d.currentPlayer {
		return TrickStatus{Kind: TrickError_, Err: PlayerOutOfTurnTrick}
	}

	hand := d.playerCards[player]
	idx := indexOfCard(hand, card)
	if idx < 0 {
		return TrickStatus{Kind: TrickError_, Err: CardNotFound}
	}

	if len(d.currentTrick) > 0 {
		leadSuit := d.currentTrick[0].Suit
		if card.Suit != leadSuit && handHasSuit(hand, leadSuit) {
			return TrickStatus{Kind: TrickError_, Err: WrongCardSuit}
		}
	} else {
		d.trickLeader = player
	}

	d.playerCards[player] = append(hand[:idx], hand[idx+1:]...)
	d.currentTrick = append(d.currentTrick, card)
	d.currentPlayer = d.currentPlayer.Next()

	if len(d.currentTrick) < 4 {
		return TrickStatus{Kind: TrickInProgress}
	}

	return d.resolveTrick()
}

func (d *Deal) resolveTrick() TrickStatus {
	var trick [4]cards.Card
	copy(trick[:], d.currentTrick)

	winIdx := cards.TrickWinner(trick, d.maxBid.Type)
	taker := d.trickLeader.Skip(winIdx)

	d.collectedCards[taker] = append(d.collectedCards[taker], trick[:]...)
	d.currentTrick = nil
	d.currentPlayer = taker
	d.trickNo++

	resolved := &ResolvedTrick{Cards: trick, Leader: d.trickLeader, Taker: taker}

	if d.trickNo < 13 {
		return TrickStatus{Kind: TrickFinished, Resolved: resolved}
	}

	d.state = Finished
	result := d.buildResult()
	return TrickStatus{Kind: DealFinishedKind, Resolved: resolved, Result: result}
}

func (d *Deal) buildResult() *GameResult {
	declarer := d.Declarer()
	dummy := d.Dummy()
	tricksWon := len(d.collectedCards[declarer])/4 + len(d.collectedCards[dummy])/4
	return &GameResult{
		Declarer:  declarer,
		Dummy:     dummy,
		Contract:  d.maxBid,
		GameValue: d.gameValue,
		TricksWon: tricksWon,
	}
}

// Evaluate returns the raw deal outcome once the deal is Finished with a
// contract in place. It returns (nil, false) while the deal is still in
// progress, or when the auction ended in four passes (no contract).
func (d *Deal) Evaluate() (*GameResult, bool) {
	if d.state != Finished || d.maxBid.Kind != cards.Play {
		return nil, false
	}
	return d.buildResult(), true
}

// TrickMax returns the current best card of the trick in progress (the
// card that would currently take the trick), and whether any card has been
// played to it yet.
func (d *Deal) TrickMax() (cards.Card, bool) {
	if len(d.currentTrick) == 0 {
		return cards.Card{}, false
	}
	leadSuit := d.currentTrick[0].Suit
	best := d.currentTrick[0]
	for _, c := range d.currentTrick[1:] {
		if cards.Beats(c, best, leadSuit, d.maxBid.Type) {
			best = c
		}
	}
	return best, true
}

func indexOfCard(hand []cards.Card, c cards.Card) int {
	for i, h := range hand {
		if h == c {
			return i
		}
	}
	return -1
}

func handHasSuit(hand []cards.Card, s cards.Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}
