package internal

import "daifugo/internal/domain"

// PhaseWeights tune move scoring for a specific phase.
type PhaseWeights struct {
	HandScoreWeight      float64
	StraightCardWeight   float64
	PairWeight           float64
	TripleWeight         float64
	QuadWeight           float64
	SingleWeight         float64
	TotalCardWeight      float64
	UseJokerPenalty      float64
	UseTopCardPenalty    float64
	UseHighCardPenalty   float64
	FinishBonus          float64
	BlockerHighCardBonus float64
}

// BotTuning defines phase weights and thresholds for a bot difficulty.
type BotTuning struct {
	Opening         PhaseWeights
	Mid             PhaseWeights
	End             PhaseWeights
	PassThreshold   float64
	ThreatThreshold int
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}

// ScoredMove holds a move with its computed score and supporting metadata.
type ScoredMove struct {
	Move             ValidMove
	Score            float64
	Remaining        domain.Hand
	RemainingProfile HandProfile
}

// ScoreHand evaluates a hand using the configured weights and structure profile.
func ScoreHand(hand domain.Hand, weights PhaseWeights, inverted bool) float64 {
	profile := ProfileHand(hand, inverted)
	return scoreHandWithProfile(hand, profile, weights, inverted)
}

// BuildScoredMoves scores each move using phase weights and optional blocking bias.
func BuildScoredMoves(hand domain.Hand, moves []ValidMove, weights PhaseWeights, inverted, threat bool) []ScoredMove {
	scored := make([]ScoredMove, 0, len(moves))
	top := domain.StrongestRank(inverted)
	for _, move := range moves {
		cards := move.Play.Cards()
		remaining := hand.Remove(cards)
		profile := ProfileHand(remaining, inverted)
		score := scoreHandWithProfile(remaining, profile, weights, inverted)

		if len(remaining) == 0 {
			score += weights.FinishBonus
		}

		position := float64(RankPosition(domain.RankOf(move.Play.Strength(inverted)), inverted))
		score -= weights.UseHighCardPenalty * position
		score -= weights.UseJokerPenalty * float64(move.Jokers)
		score -= weights.UseTopCardPenalty * float64(countRank(cards, top))

		if threat && move.Play.Shape() == domain.ShapeSingle {
			score += weights.BlockerHighCardBonus * position
		}

		scored = append(scored, ScoredMove{
			Move:             move,
			Score:            score,
			Remaining:        remaining,
			RemainingProfile: profile,
		})
	}
	return scored
}

// DetectThreat reports whether any opponent is at or below the supplied card threshold.
func DetectThreat(game *domain.Game, seat int, threshold int) bool {
	if threshold <= 0 || game == nil {
		return false
	}
	for _, player := range game.Players {
		if player == nil || player.Seat == seat || player.Finished || len(player.Hand) == 0 {
			continue
		}
		if len(player.Hand) <= threshold {
			return true
		}
	}
	return false
}

func scoreHandWithProfile(hand domain.Hand, profile HandProfile, weights PhaseWeights, inverted bool) float64 {
	score := 0.0
	score += weights.HandScoreWeight * EvaluateHand(hand, inverted)
	score += weights.StraightCardWeight * float64(profile.StraightCards)
	score += weights.PairWeight * float64(profile.Pairs)
	score += weights.TripleWeight * float64(profile.Triples)
	score += weights.QuadWeight * float64(profile.Quads)
	score += weights.SingleWeight * float64(profile.Singles)
	score += weights.TotalCardWeight * float64(profile.TotalCards)
	return score
}

func countRank(cards []domain.Card, rank int) int {
	count := 0
	for _, c := range cards {
		if !c.IsJokerLike() && c.Rank == rank {
			count++
		}
	}
	return count
}
