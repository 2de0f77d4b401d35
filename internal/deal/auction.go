package deal

import "bridgeserver/internal/cards"

// BidError enumerates why a bid call was rejected.
type BidError int

const (
	GameStateMismatchBid BidError = iota
	PlayerOutOfTurnBid
	WrongBid
	CantDouble
	CantRedouble
)

func (e BidError) String() string {
	switch e {
	case GameStateMismatchBid:
		return "GameStateMismatch"
	case PlayerOutOfTurnBid:
		return "PlayerOutOfTurn"
	case WrongBid:
		return "WrongBid"
	case CantDouble:
		return "CantDouble"
	case CantRedouble:
		return "CantRedouble"
	default:
		return "Unknown"
	}
}

// BidStatusKind discriminates the outcome of PlaceBid.
type BidStatusKind int

const (
	BidStatusAuction BidStatusKind = iota
	BidStatusTricking
	BidStatusFinished
	BidStatusError
)

// BidStatus is the result of a PlaceBid call.
type BidStatus struct {
	Kind BidStatusKind
	Err  BidError // meaningful only when Kind == BidStatusError
}

func auctionStatus() BidStatus   { return BidStatus{Kind: BidStatusAuction} }
func trickingStatus() BidStatus  { return BidStatus{Kind: BidStatusTricking} }
func finishedStatus() BidStatus  { return BidStatus{Kind: BidStatusFinished} }
func bidErr(e BidError) BidStatus { return BidStatus{Kind: BidStatusError, Err: e} }

// PlaceBid applies one auction call from player. Turn order proceeds
// clockwise from CurrentPlayer(); legality is exactly spec.md §4.2.
func (d *Deal) PlaceBid(player cards.Player, bid cards.Bid) BidStatus {
	if d.state != Auction {
		return bidErr(GameStateMismatchBid)
	}
	if player != d.currentPlayer {
		return bidErr(PlayerOutOfTurnBid)
	}

	switch bid.Kind {
	case cards.Pass:
		return d.applyPass()
	case cards.Play:
		return d.applyPlay(player, bid)
	case cards.Double:
		return d.applyDouble(player)
	case cards.Redouble:
		return d.applyRedouble(player)
	default:
		return bidErr(WrongBid)
	}
}

func (d *Deal) applyPass() BidStatus {
	d.currentPlayer = d.currentPlayer.Next()

	if d.currentPlayer != d.maxBidder {
		return auctionStatus()
	}

	if d.maxBid.Kind == cards.Pass {
		d.state = Finished
		return finishedStatus()
	}

	d.state = Tricking
	d.currentPlayer = d.maxBidder.Next()
	d.trickNo = 0
	d.currentTrick = nil
	return trickingStatus()
}

func (d *Deal) applyPlay(player cards.Player, bid cards.Bid) BidStatus {
	if bid.Level < 1 || bid.Level > 7 {
		return bidErr(WrongBid)
	}
	if d.maxBid.Kind != cards.Pass && !d.maxBid.LessPlay(bid) {
		return bidErr(WrongBid)
	}
	d.maxBid = bid
	d.maxBidder = player
	d.gameValue = PlainValue
	d.currentPlayer = d.currentPlayer.Next()
	return auctionStatus()
}

func (d *Deal) applyDouble(player cards.Player) BidStatus {
	if d.maxBid.Kind != cards.Play || d.gameValue != PlainValue || !player.IsOpponent(d.maxBidder) {
		return bidErr(CantDouble)
	}
	d.gameValue = DoubledValue
	d.currentPlayer = d.currentPlayer.Next()
	return auctionStatus()
}

func (d *Deal) applyRedouble(player cards.Player) BidStatus {
	if d.maxBid.Kind != cards.Play || d.gameValue != DoubledValue {
		return bidErr(CantRedouble)
	}
	if player != d.maxBidder && player != d.maxBidder.Partner() {
		return bidErr(CantRedouble)
	}
	d.gameValue = RedoubledValue
	d.currentPlayer = d.currentPlayer.Next()
	return auctionStatus()
}
