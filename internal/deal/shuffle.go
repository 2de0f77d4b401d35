package deal

import (
	"math/rand"

	"bridgeserver/internal/cards"
)

// shuffle randomizes deck in place with a package-level RNG. Tests swap it
// for a no-op (see dealWithFixedHands in deal_test.go).
var shuffle = func(deck []cards.Card) {
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}
