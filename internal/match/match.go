// Package match accumulates rubber-bridge scoring across a sequence of
// deals: trick score, vulnerability, game wins and the rubber bonus. It
// knows nothing about rooms or sockets; it consumes the raw deal.GameResult
// the deal engine produces and turns it into scored points.
package match

import (
	"bridgeserver/internal/cards"
	"bridgeserver/internal/deal"
)

// Match accumulates points, vulnerability and game wins across deals until
// one side wins two games (a rubber).
type Match struct {
	points         [4]int
	vulnerable     [4]bool
	gameWins       [4]int
	gameLineScore  [2]int // pair index -> trick-score accumulated toward the current game
	nextDealBidder cards.Player
	finished       bool
}

// New starts a fresh rubber with North opening the first deal.
func New() *Match {
	return &Match{nextDealBidder: cards.North}
}

// Points returns each seat's cumulative rubber score.
func (m *Match) Points() [4]int { return m.points }

// Vulnerable returns each seat's vulnerability.
func (m *Match) Vulnerable() [4]bool { return m.vulnerable }

// GameWins returns each seat's accumulated game-line wins in this rubber.
func (m *Match) GameWins() [4]int { return m.gameWins }

// NextDealBidder returns the seat that should open the next deal.
func (m *Match) NextDealBidder() cards.Player { return m.nextDealBidder }

// Finished reports whether the rubber has ended (some pair won two games).
func (m *Match) Finished() bool { return m.finished }

func pairIndex(p cards.Player) int { return int(p) % 2 }

func pairPlayers(pair int) (cards.Player, cards.Player) {
	return cards.Player(pair), cards.Player(pair + 2)
}

func (m *Match) isPairVulnerable(pair int) bool {
	p0, _ := pairPlayers(pair)
	return m.vulnerable[p0]
}

func (m *Match) creditPair(pair int, amount int) {
	p0, p1 := pairPlayers(pair)
	m.points[p0] += amount
	m.points[p1] += amount
}

// DealFinished is the scored outcome of one completed deal, ready to drive
// the session layer's DealFinishedNotification.
type DealFinished struct {
	Points            [4]int
	GameWins          [4]int
	ContractSucceeded bool
	Bidder            cards.Player
	NextDealBidder    cards.Player
	IsGameFinished    bool
	Trick             *deal.ResolvedTrick
}

// Score applies rubber-bridge scoring for one completed deal and advances
// vulnerability, game wins and (if a rubber is won) the match itself.
func (m *Match) Score(result *deal.GameResult, lastTrick *deal.ResolvedTrick) DealFinished {
	declaringPair := pairIndex(result.Declarer)
	defendingPair := 1 - declaringPair
	vuln := m.isPairVulnerable(declaringPair)

	needed := 6 + result.Contract.Level
	made := result.TricksWon >= needed

	if made {
		m.scoreMade(result, declaringPair, defendingPair, vuln, needed)
	} else {
		undertricks := needed - result.TricksWon
		penalty := undertrickPenalty(undertricks, vuln, result.GameValue)
		m.creditPair(defendingPair, penalty)
	}

	out := DealFinished{
		Points:            m.points,
		GameWins:          m.gameWins,
		ContractSucceeded: made,
		Bidder:            result.Declarer,
		NextDealBidder:    result.Declarer.Next(),
		IsGameFinished:    m.finished,
		Trick:             lastTrick,
	}
	m.nextDealBidder = out.NextDealBidder
	return out
}

func (m *Match) scoreMade(result *deal.GameResult, declaringPair, defendingPair int, vuln bool, needed int) {
	t := result.Contract.Type
	level := result.Contract.Level
	mult := multiplierFor(result.GameValue)

	trickScore := trickValueForContract(t, level) * mult
	overtricks := result.TricksWon - needed
	overtrickValue := overtrickValueFor(t, result.GameValue, vuln)
	slam := slamBonus(level, vuln)
	insult := insultBonus(result.GameValue)

	total := trickScore + overtricks*overtrickValue + slam + insult

	m.gameLineScore[declaringPair] += trickScore
	if result.GameValue == deal.PlainValue {
		m.gameLineScore[declaringPair] += overtricks * overtrickValue
	}
	if m.gameLineScore[declaringPair] >= 100 {
		p0, p1 := pairPlayers(declaringPair)
		m.gameWins[p0]++
		m.gameWins[p1]++
		m.vulnerable[p0] = true
		m.vulnerable[p1] = true
		m.gameLineScore[0] = 0
		m.gameLineScore[1] = 0

		if m.gameWins[p0] >= 2 {
			opponentGames := m.gameWins[cards.Player(defendingPair)]
			rubberBonus := 700
			if opponentGames == 1 {
				rubberBonus = 500
			}
			total += rubberBonus
			m.finished = true
		}
	}

	m.creditPair(declaringPair, total)
}

func multiplierFor(gv deal.GameValue) int {
	switch gv {
	case deal.DoubledValue:
		return 2
	case deal.RedoubledValue:
		return 4
	default:
		return 1
	}
}

// trickValueForContract is the per-trick value times the contracted level,
// with the NoTrump first-trick bump folded in.
func trickValueForContract(t cards.BidType, level int) int {
	if t.IsNoTrump() {
		return 40 + (level-1)*30
	}
	return perTrickValue(t) * level
}

func perTrickValue(t cards.BidType) int {
	if t.IsNoTrump() {
		return 30
	}
	if t.Suit() == cards.Clubs || t.Suit() == cards.Diamonds {
		return 20
	}
	return 30
}

func overtrickValueFor(t cards.BidType, gv deal.GameValue, vuln bool) int {
	switch gv {
	case deal.DoubledValue:
		if vuln {
			return 200
		}
		return 100
	case deal.RedoubledValue:
		if vuln {
			return 400
		}
		return 200
	default:
		return perTrickValue(t)
	}
}

func slamBonus(level int, vuln bool) int {
	switch level {
	case 6:
		if vuln {
			return 750
		}
		return 500
	case 7:
		if vuln {
			return 1500
		}
		return 1000
	default:
		return 0
	}
}

func insultBonus(gv deal.GameValue) int {
	switch gv {
	case deal.DoubledValue:
		return 50
	case deal.RedoubledValue:
		return 100
	default:
		return 0
	}
}

// undertrickPenalty computes defenders' credit for a defeated contract.
func undertrickPenalty(undertricks int, vuln bool, gv deal.GameValue) int {
	switch gv {
	case deal.DoubledValue:
		return steppedPenalty(undertricks, vuln, 1)
	case deal.RedoubledValue:
		return steppedPenalty(undertricks, vuln, 2)
	default:
		if vuln {
			return 100 * undertricks
		}
		return 50 * undertricks
	}
}

// steppedPenalty implements the doubled undertrick schedule (and, scaled by
// redoubleFactor, the redoubled one): not vulnerable 100/200/200/300...,
// vulnerable 200/300/300....
func steppedPenalty(undertricks int, vuln bool, redoubleFactor int) int {
	first, subsequent := 100, 200
	if vuln {
		first, subsequent = 200, 300
	}

	total := 0
	for n := 1; n <= undertricks; n++ {
		switch {
		case n == 1:
			total += first
		case !vuln && n <= 3:
			total += subsequent
		case !vuln:
			total += subsequent + 100 // beyond the third undertrick: 300
		default:
			total += subsequent
		}
	}
	return total * redoubleFactor
}
