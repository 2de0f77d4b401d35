package match

import (
	"testing"

	"bridgeserver/internal/cards"
	"bridgeserver/internal/deal"
)

func TestScoreMadeMinorPartScore(t *testing.T) {
	m := New()
	result := &deal.GameResult{
		Declarer:  cards.West,
		Dummy:     cards.East,
		Contract:  cards.PlayBid(3, cards.TrumpType(cards.Clubs)),
		GameValue: deal.PlainValue,
		TricksWon: 9, // exactly makes 3C
	}
	out := m.Score(result, nil)
	if !out.ContractSucceeded {
		t.Fatalf("expected contract made")
	}
	// 3 clubs plain made exactly: 3*20 = 60 trick score, no overtricks/bonuses.
	if out.Points[cards.West] != 60 || out.Points[cards.East] != 60 {
		t.Fatalf("expected 60 points to East/West, got %+v", out.Points)
	}
	if out.Points[cards.North] != 0 || out.Points[cards.South] != 0 {
		t.Fatalf("expected 0 points to North/South, got %+v", out.Points)
	}
	if out.NextDealBidder != cards.West.Next() {
		t.Fatalf("expected next dealer to be declarer's next seat")
	}
}

func TestScoreDefeatedNotVulnerable(t *testing.T) {
	m := New()
	result := &deal.GameResult{
		Declarer:  cards.North,
		Dummy:     cards.South,
		Contract:  cards.PlayBid(3, cards.NoTrumpType),
		GameValue: deal.PlainValue,
		TricksWon: 0,
	}
	out := m.Score(result, nil)
	if out.ContractSucceeded {
		t.Fatalf("expected contract defeated")
	}
	// down 9, not vulnerable, plain: 50 * 9 = 450 to the defenders (East/West).
	if out.Points[cards.East] != 450 || out.Points[cards.West] != 450 {
		t.Fatalf("expected 450 to defenders, got %+v", out.Points)
	}
}

func TestGameLineAndVulnerability(t *testing.T) {
	m := New()
	// North/South bid and make 3NT (100 trick points) to win a game outright.
	result := &deal.GameResult{
		Declarer:  cards.North,
		Dummy:     cards.South,
		Contract:  cards.PlayBid(3, cards.NoTrumpType),
		GameValue: deal.PlainValue,
		TricksWon: 9,
	}
	out := m.Score(result, nil)
	if out.GameWins[cards.North] != 1 || out.GameWins[cards.South] != 1 {
		t.Fatalf("expected North/South to win a game, got %+v", out.GameWins)
	}
	if !m.Vulnerable()[cards.North] || !m.Vulnerable()[cards.South] {
		t.Fatalf("expected North/South vulnerable after winning a game")
	}
	if m.Vulnerable()[cards.East] || m.Vulnerable()[cards.West] {
		t.Fatalf("East/West should not be vulnerable")
	}
	if out.IsGameFinished {
		t.Fatalf("one game should not finish the rubber")
	}
}

func TestPlainOvertricksCountTowardGameLine(t *testing.T) {
	m := New()
	// 3H making 10 tricks: 90 trick score + 30 plain overtrick = 120, which
	// alone crosses the 100-point game line and should make the pair
	// vulnerable off this single deal.
	result := &deal.GameResult{
		Declarer:  cards.East,
		Dummy:     cards.West,
		Contract:  cards.PlayBid(3, cards.TrumpType(cards.Hearts)),
		GameValue: deal.PlainValue,
		TricksWon: 10,
	}
	out := m.Score(result, nil)
	if out.Points[cards.East] != 120 || out.Points[cards.West] != 120 {
		t.Fatalf("expected 90 trick + 30 overtrick = 120, got %+v", out.Points)
	}
	if out.GameWins[cards.East] != 1 || out.GameWins[cards.West] != 1 {
		t.Fatalf("expected the overtrick to push the pair over the game line, got %+v", out.GameWins)
	}
	if !m.Vulnerable()[cards.East] || !m.Vulnerable()[cards.West] {
		t.Fatalf("expected East/West vulnerable after the overtrick-assisted game")
	}
}

func TestSlamBonus(t *testing.T) {
	m := New()
	result := &deal.GameResult{
		Declarer:  cards.East,
		Dummy:     cards.West,
		Contract:  cards.PlayBid(6, cards.TrumpType(cards.Spades)),
		GameValue: deal.PlainValue,
		TricksWon: 12,
	}
	out := m.Score(result, nil)
	// trick score 6*30=180 (game, pushes East/West to 1 game win) + small slam 500 not vuln.
	if out.Points[cards.East] != 680 {
		t.Fatalf("expected 180 trick + 500 slam = 680, got %d", out.Points[cards.East])
	}
}
