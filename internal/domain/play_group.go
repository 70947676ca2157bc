package domain

import (
	"sort"
	"strings"
)

// Shape classifies a play group.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeSingle
	ShapeGroup    // two to four cards of one rank
	ShapeStraight // kaidan: three or more consecutive ranks of one suit
	ShapeInvalid
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeSingle:
		return "single"
	case ShapeGroup:
		return "group"
	case ShapeStraight:
		return "straight"
	default:
		return "invalid"
	}
}

// maxSameRank is the largest same-rank play.
const maxSameRank = 4

// PlayGroup is an ordered set of cards forming a selection or a committed
// discard. The zero value is the null play.
type PlayGroup struct {
	cards []Card
}

// NullPlayGroup is the empty sentinel play.
var NullPlayGroup = PlayGroup{}

// NewPlayGroup copies cards into a play group, keeping their order.
func NewPlayGroup(cards ...Card) PlayGroup {
	if len(cards) == 0 {
		return PlayGroup{}
	}
	return PlayGroup{cards: append([]Card(nil), cards...)}
}

// Count returns the number of cards.
func (g PlayGroup) Count() int {
	return len(g.cards)
}

// IsNull reports whether g is the empty sentinel.
func (g PlayGroup) IsNull() bool {
	return len(g.cards) == 0
}

// Cards returns a copy of the cards in insertion order.
func (g PlayGroup) Cards() []Card {
	return append([]Card(nil), g.cards...)
}

// CardAt returns the i-th card.
func (g PlayGroup) CardAt(i int) Card {
	return g.cards[i]
}

// IsLone reports whether g holds exactly one card and pred accepts it.
func (g PlayGroup) IsLone(pred func(Card) bool) bool {
	return len(g.cards) == 1 && pred(g.cards[0])
}

// IsLoneJoker reports whether g is a single raw joker.
func (g PlayGroup) IsLoneJoker() bool {
	return g.IsLone(Card.IsJoker)
}

// IsLoneThreeOfSpades reports whether g is a single genuine 3 of spades.
func (g PlayGroup) IsLoneThreeOfSpades() bool {
	return g.IsLone(Card.IsThreeOfSpades)
}

// Strength returns the strength of the weakest card that is not a raw joker.
// A jokers-only group has joker strength, the null group has strength 0.
func (g PlayGroup) Strength(inverted bool) int {
	if len(g.cards) == 0 {
		return 0
	}
	weakest := 0
	for _, c := range g.cards {
		if c.IsJoker() {
			continue
		}
		s := c.Strength()
		if weakest == 0 || IsStrongEnough(s, weakest, inverted) {
			weakest = s
		}
	}
	if weakest == 0 {
		return StrengthJoker
	}
	return weakest
}

// CountJokers returns the number of raw jokers.
func (g PlayGroup) CountJokers() int {
	n := 0
	for _, c := range g.cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// IsJokersOnly reports whether every card is a raw joker.
func (g PlayGroup) IsJokersOnly() bool {
	return len(g.cards) > 0 && g.CountJokers() == len(g.cards)
}

// IsSameRank reports whether every card that is not a raw joker shares one rank.
func (g PlayGroup) IsSameRank() bool {
	if len(g.cards) == 0 {
		return false
	}
	rank := -1
	for _, c := range g.cards {
		if c.IsJoker() {
			continue
		}
		if rank == -1 {
			rank = c.Rank
		} else if c.Rank != rank {
			return false
		}
	}
	return true
}

// IsStraight reports whether the cards, in any order, have strictly
// consecutive ladder strengths. Raw jokers disqualify the check.
func (g PlayGroup) IsStraight() bool {
	if len(g.cards) < 3 {
		return false
	}
	strengths := make([]int, 0, len(g.cards))
	for _, c := range g.cards {
		if c.IsJoker() {
			return false
		}
		strengths = append(strengths, c.Strength())
	}
	sort.Ints(strengths)
	for i := 1; i < len(strengths); i++ {
		if strengths[i] != strengths[i-1]+1 {
			return false
		}
	}
	return true
}

// IsKaidan reports whether the cards make a valid straight once raw jokers
// fill the missing ranks: at least three cards, one suit, distinct ranks, and
// a rank span the jokers can cover.
func (g PlayGroup) IsKaidan() bool {
	if len(g.cards) < 3 || len(g.cards) > StrengthTwo-minLadderStrength+1 {
		return false
	}
	var suit Suit
	seen := make(map[int]bool, len(g.cards))
	lo, hi := 0, 0
	for _, c := range g.cards {
		if c.IsJoker() {
			continue
		}
		if suit == "" {
			suit = c.Suit
		} else if c.Suit != suit {
			return false
		}
		s := c.Strength()
		if seen[s] {
			return false
		}
		seen[s] = true
		if lo == 0 || s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if len(seen) == 0 {
		return false
	}
	return hi-lo+1 <= len(g.cards)
}

// IsValid reports whether g is a legal play shape.
func (g PlayGroup) IsValid() bool {
	n := len(g.cards)
	switch {
	case n == 1:
		return true
	case n >= 2 && n <= maxSameRank && g.IsSameRank():
		return true
	case n >= 3 && g.IsKaidan():
		return true
	default:
		return false
	}
}

// Shape classifies g.
func (g PlayGroup) Shape() Shape {
	n := len(g.cards)
	switch {
	case n == 0:
		return ShapeNone
	case n == 1:
		return ShapeSingle
	case g.IsJokersOnly() && n <= maxSameRank:
		return ShapeGroup
	case n <= maxSameRank && g.IsSameRank():
		return ShapeGroup
	case g.IsKaidan():
		return ShapeStraight
	default:
		return ShapeInvalid
	}
}

// Key returns an order-independent identity of the concrete cards in g.
func (g PlayGroup) Key() string {
	parts := make([]string, len(g.cards))
	for i, c := range g.cards {
		parts[i] = c.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// Equal reports whether g and o hold the same concrete cards regardless of order.
func (g PlayGroup) Equal(o PlayGroup) bool {
	return g.Count() == o.Count() && g.Key() == o.Key()
}

func (g PlayGroup) String() string {
	if g.IsNull() {
		return "-"
	}
	return FormatCards(g.cards)
}
