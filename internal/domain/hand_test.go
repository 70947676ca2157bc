package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandCounts(t *testing.T) {
	h := Hand(cards(t, "5S,5H,7D,JK,JK,KC"))
	assert.Equal(t, 6, h.Count())
	assert.Equal(t, 2, h.CountWithRank(5))
	assert.Equal(t, 0, h.CountWithRank(9))
	assert.Equal(t, 2, h.CountJokers())
	assert.Equal(t, Card{Suit: SuitDiamonds, Rank: 7}, h.CardAt(2))
}

func TestHandCountSequentialFrom(t *testing.T) {
	tests := []struct {
		name string
		hand string
		suit Suit
		rank int
		dir  Direction
		want int
	}{
		{"plain run upward", "5S,6S,7S,9S", SuitSpades, 5, Upward, 3},
		{"plain run downward", "5S,6S,7S", SuitSpades, 7, Downward, 3},
		{"other suit ignored", "5S,6H,7S", SuitSpades, 5, Upward, 1},
		{"joker fills gap", "5S,JK,7S,8S", SuitSpades, 5, Upward, 4},
		{"joker fills start", "JK,6S,7S", SuitSpades, 5, Upward, 3},
		{"missing start without jokers", "6S,7S", SuitSpades, 5, Upward, 0},
		{"runs through ace to two", "KD,AD,2D", SuitDiamonds, 13, Upward, 3},
		{"stops at ladder end", "AD,2D,JK", SuitDiamonds, 1, Upward, 2},
		{"stops at three going down", "4C,3C,JK", SuitClubs, 4, Downward, 2},
		{"joker rank has no run", "JK,JK", SuitClubs, 0, Upward, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hand(cards(t, tt.hand))
			assert.Equal(t, tt.want, h.CountSequentialFrom(tt.suit, tt.rank, tt.dir))
		})
	}
}

func TestHandRemoveAndContains(t *testing.T) {
	h := Hand(cards(t, "5S,JK,7S,8S"))
	played := cards(t, "5S,6S*,7S")
	assert.True(t, h.Contains(played))
	assert.Equal(t, Hand(cards(t, "8S")), h.Remove(played))
	assert.Equal(t, 4, h.Count(), "original hand untouched")

	assert.False(t, h.Contains(cards(t, "5S,5S")))
	assert.False(t, h.Contains(cards(t, "JK,JK")))
}

func TestHandSorted(t *testing.T) {
	h := Hand(cards(t, "2S,JK,3H,AS,3S,KD"))
	assert.Equal(t, "3S,3H,KD,AS,2S,JK", FormatCards(h.Sorted()))
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck(2)
	assert.Len(t, deck, 54)
	assert.Equal(t, 2, Hand(deck).CountJokers())
	for _, s := range Suits {
		for r := RankAce; r <= RankKing; r++ {
			assert.True(t, Hand(deck).Has(s, r))
		}
	}
}

func TestGameNextActive(t *testing.T) {
	g := &Game{
		Players: map[string]*Player{
			"a": {UserID: "a"},
			"b": {UserID: "b", Finished: true},
			"c": {UserID: "c"},
		},
		Order: []string{"a", "b", "c"},
	}
	assert.Equal(t, "c", g.NextActive("a"))
	assert.Equal(t, "a", g.NextActive("c"))
	assert.Equal(t, []string{"a", "c"}, g.ActivePlayers())

	g.Players["c"].Finished = true
	assert.Equal(t, "a", g.NextActive("a"))
}
