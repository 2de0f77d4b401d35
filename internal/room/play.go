package room

import (
	"bridgeserver/internal/cards"
	"bridgeserver/internal/deal"
	"bridgeserver/internal/wire"
)

// GetCards returns the caller's own hand and seat, for any occupied seat
// including dummy's. It never includes another seat's cards; the dummy's
// hand is announced to the room by the dummy_cards_notification that
// MakeTrick emits after the opening lead.
func (r *Room) GetCards(nickname string) (hand []cards.Card, seat cards.Player, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seat, ok := r.findSeatLocked(nickname)
	if !ok {
		return nil, 0, ErrNotAPlayer
	}
	return r.dl.GetCards(seat), seat, nil
}

// MakeBid places one auction call on behalf of nickname's seat.
func (r *Room) MakeBid(nickname string, bid cards.Bid) ([]wire.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat, ok := r.findSeatLocked(nickname)
	if !ok {
		return nil, ErrNotAPlayer
	}

	status := r.dl.PlaceBid(seat, bid)
	if status.Kind == deal.BidStatusError {
		return nil, &BidRejected{Err: status.Err}
	}

	out := []wire.Notification{wire.MakeBidNotification(wire.PlayerJSON(seat), wire.BidJSON(bid))}

	switch status.Kind {
	case deal.BidStatusAuction:
		out = append(out, wire.AskBidNotification(wire.PlayerJSON(r.dl.CurrentPlayer())))
	case deal.BidStatusTricking:
		out = append(out, wire.AuctionFinishedWinner(wire.AuctionWinnerData{
			Declarer:  wire.PlayerJSON(r.dl.Declarer()),
			Contract:  wire.BidJSON(r.dl.MaxBid()),
			GameValue: gameValueName(r.dl.GameValue()),
		}))
		out = append(out, wire.AskTrickNotification(wire.PlayerJSON(r.dl.CurrentPlayer())))
	case deal.BidStatusFinished:
		out = append(out, wire.AuctionFinishedNoWinner())
		out = append(out, wire.GameFinishedNoResult())
		r.dealer = r.dealer.Next()
		// startDealLocked resets the replay log to the new deal's opening
		// notifications; the finished auction's ones are not replayed.
		out = append(out, r.startDealLocked()...)
		return out, nil
	}

	r.appendLog(out...)
	return out, nil
}

func gameValueName(gv deal.GameValue) string {
	switch gv {
	case deal.DoubledValue:
		return "Doubled"
	case deal.RedoubledValue:
		return "Redoubled"
	default:
		return "Plain"
	}
}

// MakeTrick plays one card. If nickname is the declarer and it is
// currently dummy's turn, the card is applied to dummy's hand instead —
// the declarer controls both hands once the opening lead has been made.
func (r *Room) MakeTrick(nickname string, card cards.Card) ([]wire.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat, ok := r.findSeatLocked(nickname)
	if !ok {
		return nil, ErrNotAPlayer
	}

	actingSeat := seat
	if dummy, isSet := r.dl.GetDummyPlayer(); isSet && r.dl.CurrentPlayer() == dummy && seat == r.dl.Declarer() {
		actingSeat = dummy
	}

	wasOpeningLead := r.dl.TrickNo() == 0 && len(r.dl.CurrentTrick()) == 0

	status := r.dl.Trick(actingSeat, card)
	if status.Kind == deal.TrickError_ {
		return nil, &TrickRejected{Err: status.Err}
	}

	out := []wire.Notification{wire.MakeTrickNotification(wire.PlayerJSON(actingSeat), wire.CardJSON(card))}

	if wasOpeningLead {
		if hand, ok := r.dl.GetDummyCards(); ok {
			cardsJSON := make([]wire.CardJSON, len(hand))
			for i, c := range hand {
				cardsJSON[i] = wire.CardJSON(c)
			}
			out = append(out, wire.DummyCardsNotification(cardsJSON))
		}
	}

	switch status.Kind {
	case deal.TrickInProgress:
		out = append(out, wire.AskTrickNotification(wire.PlayerJSON(r.dl.CurrentPlayer())))
		r.appendLog(out...)
		return out, nil
	case deal.TrickFinished:
		out = append(out, trickFinishedNotification(status))
		out = append(out, wire.AskTrickNotification(wire.PlayerJSON(r.dl.CurrentPlayer())))
		r.appendLog(out...)
		return out, nil
	case deal.DealFinishedKind:
		out = append(out, trickFinishedNotification(status))
		scored := r.mt.Score(status.Result, status.Resolved)
		r.dealer = scored.NextDealBidder
		out = append(out, wire.DealFinishedNotification(wire.DealFinishedNotificationData{
			Points:            scored.Points,
			ContractSucceeded: scored.ContractSucceeded,
			NextDealer:        wire.PlayerJSON(r.dealer),
		}))
		if scored.IsGameFinished {
			out = append(out, wire.GameFinishedNotification(&wire.GameFinishedResult{
				Points: scored.Points,
				Winner: rubberWinnerName(scored.Points),
			}))
			r.appendLog(out...)
		} else {
			// startDealLocked resets the replay log to the new deal's
			// opening notifications.
			out = append(out, r.startDealLocked()...)
		}
		return out, nil
	}
	return out, nil
}

func trickFinishedNotification(status deal.TrickStatus) wire.Notification {
	var cj [4]wire.CardJSON
	for i, c := range status.Resolved.Cards {
		cj[i] = wire.CardJSON(c)
	}
	return wire.TrickFinishedNotification(
		wire.PlayerJSON(status.Resolved.Leader),
		wire.PlayerJSON(status.Resolved.Taker),
		cj,
	)
}

func rubberWinnerName(points [4]int) string {
	if points[cards.North] >= points[cards.East] {
		return "NorthSouth"
	}
	return "EastWest"
}
