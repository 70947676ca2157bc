// Package combination resolves a finished selection, jokers included, into
// the concrete plays it can stand for and keeps those that may be played on
// the last discard.
package combination

import (
	"sort"

	"daifugo/internal/domain"
)

// ladderSize is the number of ordinary ranks on the strength ladder.
const ladderSize = domain.StrengthTwo - 3 + 1

// History exposes the discard a new play must beat.
type History interface {
	Last() domain.PlayGroup
}

// Enumerator expands selections against a discard history.
type Enumerator struct {
	history  History
	inverted bool
}

// New returns an Enumerator for the given history and rank order.
func New(history History, inverted bool) *Enumerator {
	return &Enumerator{history: history, inverted: inverted}
}

// Enumerate returns every distinct play the selected cards can represent
// that is valid and playable on the last discard.
func (e *Enumerator) Enumerate(selected []domain.Card) []domain.PlayGroup {
	if len(selected) == 0 {
		return nil
	}

	var ordinary []domain.Card
	jokers := 0
	for _, c := range selected {
		if c.IsJokerLike() {
			jokers++
			continue
		}
		ordinary = append(ordinary, c)
	}

	if jokers == 0 || len(ordinary) == 0 {
		return e.prune([]domain.PlayGroup{domain.NewPlayGroup(selected...)})
	}

	if rank, ok := duplicateRank(ordinary); ok {
		cards := append([]domain.Card(nil), ordinary...)
		for i := 0; i < jokers; i++ {
			cards = append(cards, domain.NewWildcard(ordinary[0].Suit, rank))
		}
		return e.prune([]domain.PlayGroup{domain.NewPlayGroup(cards...)})
	}

	if len(selected) > ladderSize {
		return nil
	}

	candidates := e.straights(ordinary, jokers)
	if len(ordinary) == 1 {
		cards := []domain.Card{ordinary[0]}
		for i := 0; i < jokers; i++ {
			cards = append(cards, domain.NewWildcard(ordinary[0].Suit, ordinary[0].Rank))
		}
		candidates = append(candidates, domain.NewPlayGroup(cards...))
	}
	return e.prune(candidates)
}

// straights reads distinct-rank ordinary cards plus jokers as straights.
// Internal holes take jokers first; the rest spread over both ends.
func (e *Enumerator) straights(ordinary []domain.Card, jokers int) []domain.PlayGroup {
	suit := ordinary[0].Suit
	sorted := append([]domain.Card(nil), ordinary...)
	domain.SortCards(sorted)

	lo, hi := sorted[0].Strength(), sorted[len(sorted)-1].Strength()
	present := make(map[int]bool, len(sorted))
	for _, c := range sorted {
		present[c.Strength()] = true
	}

	base := append([]domain.Card(nil), sorted...)
	for s := lo + 1; s < hi; s++ {
		if present[s] {
			continue
		}
		if jokers == 0 {
			return nil
		}
		base = append(base, domain.NewWildcard(suit, domain.RankOf(s)))
		jokers--
	}

	weakest, strongest := domain.RankOf(lo), domain.RankOf(hi)
	if e.inverted {
		weakest, strongest = strongest, weakest
	}

	var out []domain.PlayGroup
	for wc, ok := NewWildcardCombination(jokers, weakest, strongest, e.inverted), true; ok; wc, ok = wc.Next() {
		cards := append([]domain.Card(nil), base...)
		for _, r := range wc.Ranks() {
			cards = append(cards, domain.NewWildcard(suit, r))
		}
		domain.SortCards(cards)
		out = append(out, domain.NewPlayGroup(cards...))
	}
	return out
}

// prune drops invalid and unplayable candidates and repeats.
func (e *Enumerator) prune(candidates []domain.PlayGroup) []domain.PlayGroup {
	last := e.history.Last()
	seen := make(map[string]bool, len(candidates))
	var out []domain.PlayGroup
	for _, g := range candidates {
		if !g.IsValid() || !e.playable(g, last) {
			continue
		}
		key := g.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	return out
}

func (e *Enumerator) playable(g, last domain.PlayGroup) bool {
	if last.IsNull() {
		return true
	}
	if last.IsLoneJoker() && g.IsLoneThreeOfSpades() {
		return true
	}
	if g.Count() != last.Count() {
		return false
	}
	if (g.Shape() == domain.ShapeStraight) != (last.Shape() == domain.ShapeStraight) {
		return false
	}
	// Nothing answers jokers but a lone 3 of spades on a lone joker.
	if last.IsJokersOnly() {
		return false
	}
	if g.IsJokersOnly() {
		return true
	}
	return domain.IsStrongEnough(last.Strength(e.inverted), g.Strength(e.inverted), e.inverted)
}

func duplicateRank(cards []domain.Card) (int, bool) {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if seen[c.Rank] {
			return c.Rank, true
		}
		seen[c.Rank] = true
	}
	return 0, false
}

// SortByStrength orders plays from weakest to strongest, shorter plays first.
func SortByStrength(plays []domain.PlayGroup, inverted bool) {
	sort.SliceStable(plays, func(i, j int) bool {
		if plays[i].Count() != plays[j].Count() {
			return plays[i].Count() < plays[j].Count()
		}
		return domain.IsStrongEnough(plays[i].Strength(inverted), plays[j].Strength(inverted), inverted)
	})
}
