package internal

import "daifugo/internal/domain"

const (
	ScoreJoker     = 20.0
	ScoreQuad      = 15.0
	ScoreTriple    = 8.0
	ScorePair      = 4.0
	ScoreStraight  = 3.0 // per card
	ScoreTopSingle = 3.0 // strongest two ranks
	ScoreLowSingle = -2.0
)

// EvaluateHand returns a heuristic score for the given hand. Higher is better.
// Jokers count on their own; the rest goes through the same greedy structure
// pass as ProfileHand.
func EvaluateHand(hand domain.Hand, inverted bool) float64 {
	profile := ProfileHand(hand, inverted)

	score := float64(profile.Jokers) * ScoreJoker
	score += float64(profile.Quads) * ScoreQuad
	score += float64(profile.Triples) * ScoreTriple
	score += float64(profile.Pairs) * ScorePair
	score += float64(profile.StraightCards) * ScoreStraight

	top := domain.StrongestRank(inverted)
	second, _ := domain.NextWeakerRank(top, inverted)
	for _, c := range singles(hand) {
		if c.Rank == top || c.Rank == second {
			score += ScoreTopSingle
		} else {
			score += ScoreLowSingle
		}
	}
	return score
}

// singles returns the ordinary cards whose rank appears exactly once.
func singles(hand domain.Hand) []domain.Card {
	counts := make(map[int]int)
	for _, c := range hand {
		if !c.IsJokerLike() {
			counts[c.Rank]++
		}
	}
	var out []domain.Card
	for _, c := range hand {
		if !c.IsJokerLike() && counts[c.Rank] == 1 {
			out = append(out, c)
		}
	}
	return out
}

// RankPosition places rank on a 0..12 scale, weakest to strongest, under
// the current strength order. Jokers score 13.
func RankPosition(rank int, inverted bool) int {
	if rank == domain.RankJoker {
		return 13
	}
	pos := domain.StrengthOf(rank) - domain.StrengthOf(domain.RankThree)
	if inverted {
		return 12 - pos
	}
	return pos
}
