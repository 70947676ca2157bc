package combination

import (
	"fmt"

	"daifugo/internal/domain"
)

// WildcardCombination is one way of spreading surplus jokers over the two
// open ends of a straight. Weaker holds the ranks below the run, nearest
// first; stronger holds the ranks above it, nearest first.
type WildcardCombination struct {
	weaker   []int
	stronger []int
	inverted bool

	// nextStrong is the rank just above the run, used while stronger is empty.
	nextStrong    int
	hasNextStrong bool
}

// NewWildcardCombination places count jokers around the run bounded by
// weakest and strongest, as many as fit on the weak end and the rest on the
// strong end. It panics when the ladder has no room for all of them.
func NewWildcardCombination(count, weakest, strongest int, inverted bool) WildcardCombination {
	wc := WildcardCombination{inverted: inverted}
	wc.nextStrong, wc.hasNextStrong = domain.NextStrongerRank(strongest, inverted)

	r := weakest
	for len(wc.weaker) < count {
		next, ok := domain.NextWeakerRank(r, inverted)
		if !ok {
			break
		}
		wc.weaker = append(wc.weaker, next)
		r = next
	}

	r = strongest
	for len(wc.weaker)+len(wc.stronger) < count {
		next, ok := domain.NextStrongerRank(r, inverted)
		if !ok {
			panic(fmt.Sprintf("combination: %d jokers do not fit around ranks %d..%d", count, weakest, strongest))
		}
		wc.stronger = append(wc.stronger, next)
		r = next
	}
	return wc
}

// Weaker returns the ranks jokers take below the run.
func (wc WildcardCombination) Weaker() []int {
	return append([]int(nil), wc.weaker...)
}

// Stronger returns the ranks jokers take above the run.
func (wc WildcardCombination) Stronger() []int {
	return append([]int(nil), wc.stronger...)
}

// Ranks returns every rank a joker takes in this split.
func (wc WildcardCombination) Ranks() []int {
	return append(wc.Weaker(), wc.stronger...)
}

// Next moves the farthest weak-end joker to one rank beyond the strong end.
// ok is false once the weak end is empty or the strong end cannot grow.
func (wc WildcardCombination) Next() (WildcardCombination, bool) {
	if len(wc.weaker) == 0 {
		return WildcardCombination{}, false
	}
	target, ok := wc.nextStrong, wc.hasNextStrong
	if len(wc.stronger) > 0 {
		target, ok = domain.NextStrongerRank(wc.stronger[len(wc.stronger)-1], wc.inverted)
	}
	if !ok {
		return WildcardCombination{}, false
	}
	return WildcardCombination{
		weaker:        append([]int(nil), wc.weaker[:len(wc.weaker)-1]...),
		stronger:      append(append([]int(nil), wc.stronger...), target),
		inverted:      wc.inverted,
		nextStrong:    wc.nextStrong,
		hasNextStrong: wc.hasNextStrong,
	}, true
}
