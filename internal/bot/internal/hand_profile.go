package internal

import "daifugo/internal/domain"

// HandProfile summarizes a hand's strategic structure for phase-aware scoring.
type HandProfile struct {
	TotalCards     int
	Singles        int
	Pairs          int
	Triples        int
	Quads          int
	Straights      int
	StraightCards  int
	MaxStraightLen int
	Jokers         int
	TopCards       int // cards of the strongest ordinary rank
}

// ProfileHand analyzes a hand and extracts combo counts using a greedy
// structure pass: same-suit runs first, then rank groups of what is left.
func ProfileHand(hand domain.Hand, inverted bool) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	if len(hand) == 0 {
		return profile
	}

	top := domain.StrongestRank(inverted)
	var rest domain.Hand
	for _, c := range hand {
		switch {
		case c.IsJokerLike():
			profile.Jokers++
		default:
			if c.Rank == top {
				profile.TopCards++
			}
			rest = append(rest, c)
		}
	}

	rest = extractStraights(rest, &profile)

	rankCounts := make(map[int]int)
	for _, c := range rest {
		rankCounts[c.Rank]++
	}
	for _, count := range rankCounts {
		switch count {
		case 4:
			profile.Quads++
		case 3:
			profile.Triples++
		case 2:
			profile.Pairs++
		case 1:
			profile.Singles++
		}
	}

	return profile
}

// extractStraights removes every run of three or more consecutive ranks in
// one suit and records them on profile.
func extractStraights(cards domain.Hand, profile *HandProfile) domain.Hand {
	used := make([]bool, len(cards))
	for _, suit := range domain.Suits {
		var run []int
		flush := func() {
			if len(run) >= 3 {
				profile.Straights++
				profile.StraightCards += len(run)
				if len(run) > profile.MaxStraightLen {
					profile.MaxStraightLen = len(run)
				}
				for _, idx := range run {
					used[idx] = true
				}
			}
			run = run[:0]
		}
		for r, ok := domain.RankThree, true; ok; r, ok = domain.Step(r, domain.Upward) {
			idx := indexOf(cards, used, suit, r)
			if idx < 0 {
				flush()
				continue
			}
			run = append(run, idx)
		}
		flush()
	}

	var rest domain.Hand
	for i, c := range cards {
		if !used[i] {
			rest = append(rest, c)
		}
	}
	return rest
}

func indexOf(cards domain.Hand, used []bool, suit domain.Suit, rank int) int {
	for i, c := range cards {
		if !used[i] && c.Suit == suit && c.Rank == rank {
			return i
		}
	}
	return -1
}
