package deal

import "bridgeserver/internal/cards"

// Start shuffles the deck, deals 13 cards to each seat and opens the
// auction. nextDealBidder is the seat that opens bidding (defaults to North
// on a room's first deal; the match engine supplies it on later deals).
// Requires State() == WaitingForPlayers.
func (d *Deal) Start(nextDealBidder cards.Player) bool {
	if d.state != WaitingForPlayers {
		return false
	}

	deck := cards.NewDeck()
	shuffle(deck)

	for i, p := range cards.AllPlayers {
		d.playerCards[p] = append([]cards.Card{}, deck[i*13:(i+1)*13]...)
		d.collectedCards[p] = nil
	}
	d.currentTrick = nil
	d.trickNo = 0
	d.maxBid = cards.PassBid
	d.maxBidder = nextDealBidder
	d.gameValue = PlainValue
	d.currentPlayer = nextDealBidder
	d.state = Auction
	return true
}
