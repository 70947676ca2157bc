package domain

import "sort"

// Hand is the ordered set of cards a player holds.
type Hand []Card

// Count returns the number of cards in the hand.
func (h Hand) Count() int {
	return len(h)
}

// CardAt returns the card at index i.
func (h Hand) CardAt(i int) Card {
	return h[i]
}

// CountWithRank returns the number of genuine cards of the given rank.
func (h Hand) CountWithRank(rank int) int {
	n := 0
	for _, c := range h {
		if !c.IsJokerLike() && c.Rank == rank {
			n++
		}
	}
	return n
}

// CountJokers returns the number of jokers held.
func (h Hand) CountJokers() int {
	n := 0
	for _, c := range h {
		if c.IsJokerLike() {
			n++
		}
	}
	return n
}

// Has reports whether the hand holds the genuine card of suit and rank.
func (h Hand) Has(suit Suit, rank int) bool {
	for _, c := range h {
		if !c.IsJokerLike() && c.Suit == suit && c.Rank == rank {
			return true
		}
	}
	return false
}

// CountSequentialFrom returns how many consecutive ranks of suit, starting at
// rank and stepping in dir, the hand can cover. Missing ranks, the starting
// one included, are filled with jokers while any remain.
func (h Hand) CountSequentialFrom(suit Suit, rank int, dir Direction) int {
	if rank == RankJoker {
		return 0
	}
	jokers := h.CountJokers()
	n := 0
	for r, ok := rank, true; ok; r, ok = Step(r, dir) {
		switch {
		case h.Has(suit, r):
		case jokers > 0:
			jokers--
		default:
			return n
		}
		n++
	}
	return n
}

// Remove returns a copy of the hand without the given cards. A wildcard in
// cards removes a joker.
func (h Hand) Remove(cards []Card) Hand {
	return Hand(RemoveCards(h, cards))
}

// Contains reports whether every card in cards can be taken from the hand.
func (h Hand) Contains(cards []Card) bool {
	return len(h)-len(RemoveCards(h, cards)) == len(cards)
}

// Sorted returns a copy of the hand ordered by strength, then suit.
func (h Hand) Sorted() Hand {
	out := append(Hand(nil), h...)
	SortCards(out)
	return out
}

// SortCards orders cards by ascending strength, then by suit display order.
func SortCards(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		si, sj := cards[i].Strength(), cards[j].Strength()
		if si != sj {
			return si < sj
		}
		return suitIndex(cards[i].Suit) < suitIndex(cards[j].Suit)
	})
}

func suitIndex(s Suit) int {
	for i, v := range Suits {
		if v == s {
			return i
		}
	}
	return len(Suits)
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card(nil), hand...)
	}

	updated := append([]Card(nil), hand...)
	for _, card := range toRemove {
		for i := range updated {
			if updated[i].Same(card) {
				updated = append(updated[:i], updated[i+1:]...)
				break
			}
		}
	}
	return updated
}
