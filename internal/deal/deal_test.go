package deal

import (
	"testing"

	"bridgeserver/internal/cards"
)

// dealWithFixedHands builds a deal already in Auction, bypassing the random
// shuffle, with an explicit assignment of hands per seat.
func dealWithFixedHands(hands [4][]cards.Card, opener cards.Player) *Deal {
	d := New()
	old := shuffle
	shuffle = func([]cards.Card) {}
	defer func() { shuffle = old }()
	d.Start(opener)
	for p := range cards.AllPlayers {
		d.playerCards[p] = append([]cards.Card{}, hands[p]...)
	}
	return d
}

func TestFourPasses(t *testing.T) {
	d := New()
	d.Start(cards.North)

	for _, p := range []cards.Player{cards.North, cards.East, cards.South} {
		st := d.PlaceBid(p, cards.PassBid)
		if st.Kind != BidStatusAuction {
			t.Fatalf("pass by %v: expected Auction continuing, got %+v", p, st)
		}
	}
	st := d.PlaceBid(cards.West, cards.PassBid)
	if st.Kind != BidStatusFinished {
		t.Fatalf("expected Finished after four passes, got %+v", st)
	}
	if d.State() != Finished {
		t.Fatalf("expected deal state Finished, got %v", d.State())
	}
	if _, ok := d.Evaluate(); ok {
		t.Fatalf("expected no GameResult for a passed-out deal")
	}
}

func TestSimpleAuction(t *testing.T) {
	d := New()
	d.Start(cards.North)

	mustBid := func(p cards.Player, b cards.Bid, want BidStatusKind) {
		t.Helper()
		st := d.PlaceBid(p, b)
		if st.Kind != want {
			t.Fatalf("%v bids %+v: expected kind %v, got %+v", p, b, want, st)
		}
	}

	mustBid(cards.North, cards.PlayBid(2, cards.TrumpType(cards.Clubs)), BidStatusAuction)
	mustBid(cards.East, cards.PlayBid(2, cards.TrumpType(cards.Diamonds)), BidStatusAuction)
	mustBid(cards.South, cards.PlayBid(2, cards.TrumpType(cards.Hearts)), BidStatusAuction)
	mustBid(cards.West, cards.PlayBid(3, cards.TrumpType(cards.Clubs)), BidStatusAuction)
	mustBid(cards.North, cards.PassBid, BidStatusAuction)
	mustBid(cards.East, cards.PassBid, BidStatusAuction)
	mustBid(cards.South, cards.PassBid, BidStatusTricking)

	if d.State() != Tricking {
		t.Fatalf("expected Tricking, got %v", d.State())
	}
	if d.MaxBidder() != cards.West {
		t.Fatalf("expected max bidder West, got %v", d.MaxBidder())
	}
	if d.CurrentPlayer() != cards.North {
		t.Fatalf("expected opening lead North, got %v", d.CurrentPlayer())
	}
}

func TestWrongBidRejected(t *testing.T) {
	d := New()
	d.Start(cards.North)
	d.PlaceBid(cards.North, cards.PlayBid(3, cards.TrumpType(cards.Hearts)))
	st := d.PlaceBid(cards.East, cards.PlayBid(2, cards.TrumpType(cards.Spades)))
	if st.Kind != BidStatusError || st.Err != WrongBid {
		t.Fatalf("expected WrongBid error, got %+v", st)
	}
}

func TestDoubleAndRedouble(t *testing.T) {
	d := New()
	d.Start(cards.North)
	d.PlaceBid(cards.North, cards.PlayBid(3, cards.TrumpType(cards.Hearts)))

	d.PlaceBid(cards.East, cards.PassBid)

	if st := d.PlaceBid(cards.South, cards.DoubleBid); st.Kind != BidStatusError || st.Err != CantDouble {
		t.Fatalf("partner-side double on own bid should fail, got %+v", st)
	}
	d.PlaceBid(cards.South, cards.PassBid)
	if st := d.PlaceBid(cards.West, cards.DoubleBid); st.Kind != BidStatusAuction {
		t.Fatalf("opponent double should succeed, got %+v", st)
	}
	if d.GameValue() != DoubledValue {
		t.Fatalf("expected doubled game value")
	}
	d.PlaceBid(cards.North, cards.PassBid)
	if st := d.PlaceBid(cards.East, cards.RedoubleBid); st.Kind != BidStatusError || st.Err != CantRedouble {
		t.Fatalf("non-declaring-side redouble should fail, got %+v", st)
	}
	d.PlaceBid(cards.East, cards.PassBid)
	if st := d.PlaceBid(cards.South, cards.RedoubleBid); st.Kind != BidStatusAuction {
		t.Fatalf("declarer partner redouble should succeed, got %+v", st)
	}
	if d.GameValue() != RedoubledValue {
		t.Fatalf("expected redoubled game value")
	}
}

func TestTrickWinnerUnderTrump(t *testing.T) {
	hands := [4][]cards.Card{
		cards.North: {{Rank: cards.Three, Suit: cards.Spades}},
		cards.East:  {{Rank: cards.Five, Suit: cards.Diamonds}},
		cards.South: {{Rank: cards.King, Suit: cards.Clubs}},
		cards.West:  {{Rank: cards.Queen, Suit: cards.Spades}},
	}
	d := dealWithFixedHands(hands, cards.North)
	// Force a spade contract by North and end the auction.
	d.PlaceBid(cards.North, cards.PlayBid(2, cards.TrumpType(cards.Spades)))
	d.PlaceBid(cards.East, cards.PassBid)
	d.PlaceBid(cards.South, cards.PassBid)
	d.PlaceBid(cards.West, cards.PassBid)
	if d.State() != Tricking {
		t.Fatalf("expected Tricking, got %v", d.State())
	}
	// Opening lead is East (left of declarer North).
	if d.CurrentPlayer() != cards.East {
		t.Fatalf("expected East on lead, got %v", d.CurrentPlayer())
	}

	st := d.Trick(cards.East, cards.Card{Rank: cards.Five, Suit: cards.Diamonds})
	if st.Kind != TrickInProgress {
		t.Fatalf("unexpected status: %+v", st)
	}
	d.Trick(cards.South, cards.Card{Rank: cards.King, Suit: cards.Clubs})
	d.Trick(cards.West, cards.Card{Rank: cards.Queen, Suit: cards.Spades})

	best, ok := d.TrickMax()
	if !ok || best.Suit != cards.Spades || best.Rank != cards.Queen {
		t.Fatalf("expected TrickMax QS, got %+v ok=%v", best, ok)
	}

	st = d.Trick(cards.North, cards.Card{Rank: cards.Three, Suit: cards.Spades})
	if st.Kind != TrickFinished {
		t.Fatalf("expected TrickFinished, got %+v", st)
	}
	if st.Resolved.Taker != cards.West {
		t.Fatalf("expected taker West, got %v", st.Resolved.Taker)
	}
	if d.TrickNo() != 1 {
		t.Fatalf("expected trick_no=1, got %d", d.TrickNo())
	}
}

func TestMustFollowSuit(t *testing.T) {
	hands := [4][]cards.Card{
		cards.East:  {{Rank: cards.Seven, Suit: cards.Hearts}},
		cards.South: {{Rank: cards.Five, Suit: cards.Clubs}, {Rank: cards.Two, Suit: cards.Hearts}},
	}
	d := dealWithFixedHands(hands, cards.North)
	d.PlaceBid(cards.North, cards.PlayBid(3, cards.TrumpType(cards.Spades)))
	d.PlaceBid(cards.East, cards.PassBid)
	d.PlaceBid(cards.South, cards.PassBid)
	d.PlaceBid(cards.West, cards.PassBid)

	// East (opening leader) leads a heart.
	if st := d.Trick(cards.East, cards.Card{Rank: cards.Seven, Suit: cards.Hearts}); st.Kind != TrickInProgress {
		t.Fatalf("unexpected lead status: %+v", st)
	}

	// South holds a heart but tries to discard a club: must be rejected.
	before := d.State()
	st := d.Trick(cards.South, cards.Card{Rank: cards.Five, Suit: cards.Clubs})
	if st.Kind != TrickError_ || st.Err != WrongCardSuit {
		t.Fatalf("expected WrongCardSuit, got %+v", st)
	}
	if d.State() != before || d.CurrentPlayer() != cards.South {
		t.Fatalf("state must be unchanged after a rejected play")
	}

	// South may legally follow with their heart instead.
	if st := d.Trick(cards.South, cards.Card{Rank: cards.Two, Suit: cards.Hearts}); st.Kind != TrickInProgress {
		t.Fatalf("expected legal follow to succeed, got %+v", st)
	}
}
