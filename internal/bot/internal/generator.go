package internal

import (
	"daifugo/internal/combination"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

// ValidMove represents a possible legal play.
type ValidMove struct {
	Play   domain.PlayGroup
	Jokers int // jokers the play spends
}

// GetValidMoves returns every distinct legal play the hand can make on the
// current trick. It walks a planner session depth first, picking hand cards
// weakest first and jokers last, and enumerates each reachable selection.
func GetValidMoves(hand domain.Hand, history *domain.DiscardHistory, inverted bool) []ValidMove {
	sorted := hand.Sorted()
	p := planner.New(sorted, history, inverted)
	e := combination.New(history, inverted)

	seen := make(map[string]bool)
	var moves []ValidMove

	var walk func(from int)
	walk = func(from int) {
		if p.CountSelected() > 0 {
			for _, g := range e.Enumerate(p.SelectedCards()) {
				key := g.Key()
				if seen[key] {
					continue
				}
				seen[key] = true
				moves = append(moves, ValidMove{Play: g, Jokers: countWild(g)})
			}
		}
		for i := from; i < sorted.Count(); i++ {
			// Equal cards at the same depth lead to the same plays.
			if i > from && sorted[i].Same(sorted[i-1]) {
				continue
			}
			if p.Select(i) != planner.SelectSuccess {
				continue
			}
			walk(i + 1)
			p.Deselect(i)
		}
	}
	walk(0)
	return moves
}

func countWild(g domain.PlayGroup) int {
	n := 0
	for _, c := range g.Cards() {
		if c.IsJokerLike() {
			n++
		}
	}
	return n
}
