package wire

import (
	"encoding/json"
	"fmt"

	"bridgeserver/internal/cards"
)

// PlayerJSON encodes a cards.Player as its quoted seat name ("North", ...).
type PlayerJSON cards.Player

func (p PlayerJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(cards.Player(p).String())
}

func (p *PlayerJSON) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	pl, ok := cards.PlayerFromString(s)
	if !ok {
		return fmt.Errorf("wire: invalid player %q", s)
	}
	*p = PlayerJSON(pl)
	return nil
}

// CardJSON encodes a cards.Card as {"rank":"K","suit":"S"}.
type CardJSON cards.Card

type cardWire struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c CardJSON) MarshalJSON() ([]byte, error) {
	card := cards.Card(c)
	return json.Marshal(cardWire{Rank: card.Rank.String(), Suit: card.Suit.Letter()})
}

func (c *CardJSON) UnmarshalJSON(b []byte) error {
	var w cardWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	rank, ok := cards.RankFromString(w.Rank)
	if !ok {
		return fmt.Errorf("wire: invalid rank %q", w.Rank)
	}
	suit, ok := cards.SuitFromLetter(w.Suit)
	if !ok {
		return fmt.Errorf("wire: invalid suit %q", w.Suit)
	}
	*c = CardJSON(cards.Card{Rank: rank, Suit: suit})
	return nil
}

// BidTypeJSON encodes a cards.BidType as "NoTrump" or {"Trump":"Spades"}.
type BidTypeJSON cards.BidType

func (t BidTypeJSON) MarshalJSON() ([]byte, error) {
	bt := cards.BidType(t)
	if bt.IsNoTrump() {
		return json.Marshal("NoTrump")
	}
	return json.Marshal(map[string]string{"Trump": bt.Suit().String()})
}

func (t *BidTypeJSON) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "NoTrump" {
			return fmt.Errorf("wire: invalid bid type %q", s)
		}
		*t = BidTypeJSON(cards.NoTrumpType)
		return nil
	}
	var m struct {
		Trump string `json:"Trump"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	suit, ok := suitFromName(m.Trump)
	if !ok {
		return fmt.Errorf("wire: invalid trump suit %q", m.Trump)
	}
	*t = BidTypeJSON(cards.TrumpType(suit))
	return nil
}

func suitFromName(name string) (cards.Suit, bool) {
	for _, s := range cards.AllSuits {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// BidJSON encodes a cards.Bid as one of "Pass", "Double", "Redouble", or
// {"Play":[level, BidTypeJSON]}.
type BidJSON cards.Bid

func (b BidJSON) MarshalJSON() ([]byte, error) {
	bid := cards.Bid(b)
	switch bid.Kind {
	case cards.Pass:
		return json.Marshal("Pass")
	case cards.Double:
		return json.Marshal("Double")
	case cards.Redouble:
		return json.Marshal("Redouble")
	case cards.Play:
		return json.Marshal(map[string]any{
			"Play": []any{bid.Level, BidTypeJSON(bid.Type)},
		})
	default:
		return nil, fmt.Errorf("wire: unknown bid kind %v", bid.Kind)
	}
}

func (b *BidJSON) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "Pass":
			*b = BidJSON(cards.PassBid)
		case "Double":
			*b = BidJSON(cards.DoubleBid)
		case "Redouble":
			*b = BidJSON(cards.RedoubleBid)
		default:
			return fmt.Errorf("wire: invalid bid %q", s)
		}
		return nil
	}

	var m struct {
		Play []json.RawMessage `json:"Play"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m.Play) != 2 {
		return fmt.Errorf("wire: Play bid must carry [level, type]")
	}
	var level int
	if err := json.Unmarshal(m.Play[0], &level); err != nil {
		return err
	}
	var bt BidTypeJSON
	if err := json.Unmarshal(m.Play[1], &bt); err != nil {
		return err
	}
	*b = BidJSON(cards.PlayBid(level, cards.BidType(bt)))
	return nil
}
