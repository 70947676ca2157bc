package internal

import (
	"testing"

	"daifugo/internal/domain"
)

func TestEvaluateHand_PrefersStructure(t *testing.T) {
	quad := EvaluateHand(mustHand(t, "3S,3H,3D,3C"), false)
	scattered := EvaluateHand(mustHand(t, "3S,5H,7D,9C"), false)
	if quad <= scattered {
		t.Fatalf("quad = %.1f, scattered = %.1f, want quad higher", quad, scattered)
	}
}

func TestEvaluateHand_TopSinglesFollowInversion(t *testing.T) {
	if got := EvaluateHand(mustHand(t, "2S"), false); got != ScoreTopSingle {
		t.Fatalf("2S = %.1f, want %.1f", got, ScoreTopSingle)
	}
	if got := EvaluateHand(mustHand(t, "2S"), true); got != ScoreLowSingle {
		t.Fatalf("inverted 2S = %.1f, want %.1f", got, ScoreLowSingle)
	}
	if got := EvaluateHand(mustHand(t, "3S"), true); got != ScoreTopSingle {
		t.Fatalf("inverted 3S = %.1f, want %.1f", got, ScoreTopSingle)
	}
}

func TestRankPosition(t *testing.T) {
	tests := []struct {
		rank     int
		inverted bool
		want     int
	}{
		{domain.RankThree, false, 0},
		{domain.RankTwo, false, 12},
		{domain.RankAce, false, 11},
		{domain.RankThree, true, 12},
		{domain.RankTwo, true, 0},
		{domain.RankJoker, true, 13},
	}
	for _, tt := range tests {
		if got := RankPosition(tt.rank, tt.inverted); got != tt.want {
			t.Errorf("RankPosition(%d, %v) = %d, want %d", tt.rank, tt.inverted, got, tt.want)
		}
	}
}

func TestBuildScoredMoves_FinishWins(t *testing.T) {
	hand := mustHand(t, "9S,9H")
	moves := GetValidMoves(hand, domain.NewDiscardHistory(), false)
	weights := PhaseWeights{SingleWeight: -1, FinishBonus: 1000}

	scored := BuildScoredMoves(hand, moves, weights, false, false)
	if len(scored) != 3 {
		t.Fatalf("scored %d moves, want 3", len(scored))
	}

	best := scored[0]
	for _, s := range scored[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if best.Move.Play.Count() != 2 || len(best.Remaining) != 0 {
		t.Fatalf("best = %s, want the pair that empties the hand", best.Move.Play)
	}
}

func TestBuildScoredMoves_JokerPenalty(t *testing.T) {
	hand := mustHand(t, "5S,JK,8D")
	history := domain.NewDiscardHistory()
	history.Push(domain.NewPlayGroup(mustHand(t, "4C")...))

	moves := GetValidMoves(hand, history, false)
	weights := PhaseWeights{UseJokerPenalty: 10}

	var joker, five float64
	for _, s := range BuildScoredMoves(hand, moves, weights, false, false) {
		switch s.Move.Play.String() {
		case "JK":
			joker = s.Score
		case "5S":
			five = s.Score
		}
	}
	if joker >= five {
		t.Fatalf("joker = %.1f, 5S = %.1f, want the joker penalised", joker, five)
	}
}

func TestDetectThreat(t *testing.T) {
	game := &domain.Game{Players: map[string]*domain.Player{
		"me":  {Seat: 1, Hand: make(domain.Hand, 2)},
		"opp": {Seat: 2, Hand: make(domain.Hand, 6)},
		"out": {Seat: 3, Finished: true},
	}}

	if DetectThreat(game, 1, 3) {
		t.Fatal("own short hand and finished players are not threats")
	}
	game.Players["opp"].Hand = make(domain.Hand, 3)
	if !DetectThreat(game, 1, 3) {
		t.Fatal("expected a threat at 3 cards")
	}
	if DetectThreat(game, 1, 0) {
		t.Fatal("zero threshold disables threat detection")
	}
}
