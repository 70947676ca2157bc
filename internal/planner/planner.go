// Package planner evaluates, one hand index at a time, which cards a player
// may add to the selection they are building for their next discard.
package planner

import (
	"daifugo/internal/domain"
)

// minStraight is the shortest legal straight.
const minStraight = 3

// maxSameRank is the largest legal same-rank play.
const maxSameRank = 4

// Hand is the read-only view of a player's cards the planner needs.
type Hand interface {
	Count() int
	CardAt(i int) domain.Card
	CountWithRank(rank int) int
	CountJokers() int
	CountSequentialFrom(suit domain.Suit, rank int, dir domain.Direction) int
}

// History exposes the last two committed discards.
type History interface {
	Last() domain.PlayGroup
	SecondToLast() domain.PlayGroup
}

// Planner is a single turn's selection session. It is not safe for
// concurrent use and should be dropped once the turn is committed.
type Planner struct {
	hand     Hand
	history  History
	inverted bool

	selected []bool
	order    []int // selected indices in the order they were picked
}

// New starts a selection session over hand.
func New(hand Hand, history History, inverted bool) *Planner {
	return &Planner{
		hand:     hand,
		history:  history,
		inverted: inverted,
		selected: make([]bool, hand.Count()),
	}
}

// Inverted reports the rank order the session evaluates with.
func (p *Planner) Inverted() bool {
	return p.inverted
}

// IsSelected reports whether index i is in the selection.
func (p *Planner) IsSelected(i int) bool {
	return p.inRange(i) && p.selected[i]
}

// CountSelected returns the number of selected cards.
func (p *Planner) CountSelected() int {
	return len(p.order)
}

// SelectedIndices returns the selected hand indices in pick order.
func (p *Planner) SelectedIndices() []int {
	return append([]int(nil), p.order...)
}

// SelectedCards returns the selected cards in pick order.
func (p *Planner) SelectedCards() []domain.Card {
	out := make([]domain.Card, len(p.order))
	for i, idx := range p.order {
		out[i] = p.hand.CardAt(idx)
	}
	return out
}

// ToPlayGroup wraps the selection. An empty selection is the null play.
func (p *Planner) ToPlayGroup() domain.PlayGroup {
	return domain.NewPlayGroup(p.SelectedCards()...)
}

// Select adds index i to the selection if it is selectable.
func (p *Planner) Select(i int) SelectResult {
	switch p.CheckSelectability(i) {
	case Selectable:
		p.selected[i] = true
		p.order = append(p.order, i)
		return SelectSuccess
	case AlreadySelected:
		return SelectAlreadySelected
	default:
		return SelectNotSelectable
	}
}

// Deselect removes index i from the selection.
func (p *Planner) Deselect(i int) DeselectResult {
	if !p.inRange(i) {
		return NotDeselectable
	}
	if !p.selected[i] {
		return AlreadyDeselected
	}
	p.selected[i] = false
	for k, idx := range p.order {
		if idx == i {
			p.order = append(p.order[:k], p.order[k+1:]...)
			break
		}
	}
	return DeselectSuccess
}

// SelectableIndices returns every unselected index that may be selected now.
func (p *Planner) SelectableIndices() []int {
	var out []int
	for i := 0; i < p.hand.Count(); i++ {
		if p.CheckSelectability(i) == Selectable {
			out = append(out, i)
		}
	}
	return out
}

// CheckSelectability reports whether index i may join the selection.
func (p *Planner) CheckSelectability(i int) Selectability {
	if !p.inRange(i) {
		return NotSelectable
	}
	if p.selected[i] {
		return AlreadySelected
	}
	// A 3 of spades played on a lone joker closes the trick.
	if p.history.SecondToLast().IsLoneJoker() && p.history.Last().IsLoneThreeOfSpades() {
		return NotSelectable
	}

	candidate := p.hand.CardAt(i)
	var ok bool
	if len(p.order) == 0 {
		ok = p.checkFirst(candidate)
	} else {
		ok = p.checkNext(candidate)
	}
	if ok {
		return Selectable
	}
	return NotSelectable
}

func (p *Planner) inRange(i int) bool {
	return i >= 0 && i < len(p.selected)
}

func (p *Planner) checkFirst(c domain.Card) bool {
	last := p.history.Last()
	if last.IsNull() {
		return true
	}
	if c.IsJoker() && last.Count() == 1 {
		return !last.CardAt(0).IsJoker()
	}
	if c.IsThreeOfSpades() && last.IsLoneJoker() {
		return true
	}
	if !domain.IsStrongEnough(last.Strength(p.inverted), c.Strength(), p.inverted) {
		return false
	}
	if last.Count() == 1 {
		return true
	}
	return p.canComplete(c, last)
}

// canComplete looks ahead from a first pick to see whether the hand holds
// enough cards to finish a play matching last.
func (p *Planner) canComplete(c domain.Card, last domain.PlayGroup) bool {
	need := last.Count()
	jokers := p.hand.CountJokers()

	if last.Shape() == domain.ShapeStraight {
		if !c.IsJoker() {
			return p.fitsStraight(c.Suit, []int{c.Rank}, need)
		}
		for _, suit := range domain.Suits {
			if p.fitsStraight(suit, nil, need) {
				return true
			}
		}
		return false
	}

	if !c.IsJoker() {
		return p.hand.CountWithRank(c.Rank)+jokers >= need
	}
	if jokers >= need {
		return true
	}
	lastStrength := last.Strength(p.inverted)
	for r := domain.RankAce; r <= domain.RankKing; r++ {
		n := p.hand.CountWithRank(r)
		if n > 0 && n+jokers >= need && domain.IsStrongEnough(lastStrength, domain.StrengthOf(r), p.inverted) {
			return true
		}
	}
	return false
}

func (p *Planner) checkNext(c domain.Card) bool {
	last := p.history.Last()
	sel := p.SelectedCards()
	if !last.IsNull() && len(sel) >= last.Count() {
		return false
	}
	if c.IsJoker() {
		return true
	}

	ordinary := ordinaryCards(sel)
	if last.IsNull() && len(sel) < maxSameRank && sameRank(ordinary) &&
		(len(ordinary) == 0 || ordinary[0].Rank == c.Rank) {
		return true
	}

	if last.IsNull() || last.Shape() == domain.ShapeStraight {
		return p.extendsStraight(c, sel, ordinary, last)
	}

	if len(ordinary) == 0 {
		return domain.IsStrongEnough(last.Strength(p.inverted), c.Strength(), p.inverted) &&
			p.hand.CountJokers()+p.hand.CountWithRank(c.Rank) >= last.Count()
	}
	return c.Rank == ordinary[0].Rank
}

func (p *Planner) extendsStraight(c domain.Card, sel, ordinary []domain.Card, last domain.PlayGroup) bool {
	length := last.Count()
	if last.IsNull() {
		length = len(sel) + 1
	}

	if len(ordinary) == 0 {
		return p.fitsStraight(c.Suit, []int{c.Rank}, length)
	}

	w := p.weakestOrdinary(sel)
	if c.Suit != w.Suit {
		return false
	}
	ranks := make([]int, 0, len(ordinary)+1)
	for _, o := range ordinary {
		if o.Suit != c.Suit || o.Rank == c.Rank {
			return false
		}
		ranks = append(ranks, o.Rank)
	}
	ranks = append(ranks, c.Rank)

	// The candidate must connect to the weakest pick through cards of the
	// suit, with jokers covering the holes.
	lo, hi := w.Strength(), c.Strength()
	if lo > hi {
		lo, hi = hi, lo
	}
	if p.hand.CountSequentialFrom(c.Suit, domain.RankOf(lo), domain.Upward) < hi-lo+1 {
		return false
	}

	if span := rankSpan(ranks); span > length {
		if !last.IsNull() {
			return false
		}
		length = span
	}
	return p.fitsStraight(c.Suit, ranks, length)
}

// fitsStraight reports whether the hand can form a straight of the given
// length in suit that holds every rank in include and beats the last discard.
// Start ranks are scanned from the weakest rank toward the strongest.
func (p *Planner) fitsStraight(suit domain.Suit, include []int, length int) bool {
	if length < minStraight {
		length = minStraight
	}
	last := p.history.Last()
	for start, ok := domain.WeakestRank(p.inverted), true; ok; start, ok = domain.NextStrongerRank(start, p.inverted) {
		run, fits := straightFrom(start, length, p.inverted)
		if !fits {
			return false
		}
		if !last.IsNull() && !domain.IsStrongEnough(last.Strength(p.inverted), domain.StrengthOf(start), p.inverted) {
			continue
		}
		if !containsAll(run, include) {
			continue
		}
		low := run[0]
		if p.inverted {
			low = run[len(run)-1]
		}
		if p.hand.CountSequentialFrom(suit, low, domain.Upward) >= length {
			return true
		}
	}
	return false
}

// weakestOrdinary returns the weakest selected card that is not a joker.
// The selection must hold at least one such card.
func (p *Planner) weakestOrdinary(sel []domain.Card) domain.Card {
	var weakest domain.Card
	found := false
	for _, c := range sel {
		if c.IsJokerLike() {
			continue
		}
		if !found || domain.IsStrongEnough(c.Strength(), weakest.Strength(), p.inverted) {
			weakest = c
			found = true
		}
	}
	if !found {
		panic("planner: weakest ordinary card requested from a jokers-only selection")
	}
	return weakest
}

// straightFrom returns length ranks starting at start and stepping stronger.
func straightFrom(start, length int, inverted bool) ([]int, bool) {
	run := make([]int, 0, length)
	run = append(run, start)
	for len(run) < length {
		next, ok := domain.NextStrongerRank(run[len(run)-1], inverted)
		if !ok {
			return nil, false
		}
		run = append(run, next)
	}
	return run, true
}

func ordinaryCards(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsJokerLike() {
			out = append(out, c)
		}
	}
	return out
}

func sameRank(cards []domain.Card) bool {
	for _, c := range cards {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

func containsAll(run, ranks []int) bool {
	for _, r := range ranks {
		found := false
		for _, x := range run {
			if x == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func rankSpan(ranks []int) int {
	lo, hi := 0, 0
	for i, r := range ranks {
		s := domain.StrengthOf(r)
		if i == 0 || s < lo {
			lo = s
		}
		if i == 0 || s > hi {
			hi = s
		}
	}
	return hi - lo + 1
}
