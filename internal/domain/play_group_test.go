package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, s string) []Card {
	t.Helper()
	cs, err := ParseCards(s)
	require.NoError(t, err)
	return cs
}

func group(t *testing.T, s string) PlayGroup {
	t.Helper()
	return NewPlayGroup(cards(t, s)...)
}

func TestCardSame(t *testing.T) {
	assert.True(t, Joker.Same(NewWildcard(SuitHearts, 7)))
	assert.True(t, NewWildcard(SuitSpades, 4).Same(NewWildcard(SuitHearts, 9)))
	assert.True(t, Card{Suit: SuitClubs, Rank: 5}.Same(Card{Suit: SuitClubs, Rank: 5}))
	assert.False(t, Card{Suit: SuitClubs, Rank: 5}.Same(Card{Suit: SuitSpades, Rank: 5}))
	assert.False(t, Card{Suit: SuitHearts, Rank: 7}.Same(NewWildcard(SuitHearts, 7)))
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"7S", Card{Suit: SuitSpades, Rank: 7}},
		{"10h", Card{Suit: SuitHearts, Rank: 10}},
		{"TD", Card{Suit: SuitDiamonds, Rank: 10}},
		{"AC", Card{Suit: SuitClubs, Rank: RankAce}},
		{"JK", Joker},
		{"QS*", NewWildcard(SuitSpades, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "7", "7X", "14S", "ZS"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, "10H,JK,QS*", FormatCards(cards(t, "10H JK QS*")))
}

func TestPlayGroupStrength(t *testing.T) {
	assert.Equal(t, 0, NullPlayGroup.Strength(false))
	assert.Equal(t, 5, group(t, "9S,5H,7D").Strength(false))
	assert.Equal(t, 9, group(t, "9S,5H,7D").Strength(true))
	assert.Equal(t, StrengthJoker, group(t, "JK,JK").Strength(false))
	assert.Equal(t, StrengthJoker, group(t, "JK").Strength(true))
	assert.Equal(t, 8, group(t, "8S,JK").Strength(false))
	assert.Equal(t, 7, group(t, "8S,7S*,9S").Strength(false))
	assert.Equal(t, StrengthAce, group(t, "AS,2S").Strength(false))
}

func TestPlayGroupShape(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		valid    bool
		shape    Shape
		straight bool
		kaidan   bool
	}{
		{"empty", "", false, ShapeNone, false, false},
		{"single", "5H", true, ShapeSingle, false, false},
		{"lone joker", "JK", true, ShapeSingle, false, false},
		{"pair", "5H,5S", true, ShapeGroup, false, false},
		{"pair with joker", "5H,JK", true, ShapeGroup, false, false},
		{"quad", "5C,5D,5H,5S", true, ShapeGroup, false, false},
		{"two jokers", "JK,JK", true, ShapeGroup, false, false},
		{"mixed pair", "5H,6H", false, ShapeInvalid, false, false},
		{"kaidan", "6S,8S,7S", true, ShapeStraight, true, true},
		{"kaidan with joker gap", "6S,JK,8S", true, ShapeStraight, false, true},
		{"kaidan with wildcard", "6S,7S*,8S", true, ShapeStraight, true, true},
		{"kaidan through ace", "QH,KH,AH,2H", true, ShapeStraight, true, true},
		{"mixed suit run", "6S,7D,8H", false, ShapeInvalid, true, false},
		{"gap too wide", "6S,JK,9S", false, ShapeInvalid, false, false},
		{"duplicate rank run", "6S,6S,7S", false, ShapeInvalid, false, false},
		{"five of a rank", "5C,5D,5H,5S,JK", false, ShapeInvalid, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := group(t, tt.cards)
			assert.Equal(t, tt.valid, g.IsValid())
			assert.Equal(t, tt.shape, g.Shape())
			assert.Equal(t, tt.straight, g.IsStraight())
			assert.Equal(t, tt.kaidan, g.IsKaidan())
		})
	}
}

func TestPlayGroupKey(t *testing.T) {
	a := group(t, "7S,JK,5S")
	b := group(t, "5S,7S,JK")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(group(t, "5S,7S,6S*")))
	assert.Equal(t, "7S,JK,5S", a.String())
	assert.Equal(t, "-", NullPlayGroup.String())
}

func TestPlayGroupCardsIsACopy(t *testing.T) {
	g := group(t, "7S,8S")
	cs := g.Cards()
	cs[0] = Joker
	assert.Equal(t, Card{Suit: SuitSpades, Rank: 7}, g.CardAt(0))
}

func TestDiscardHistory(t *testing.T) {
	h := NewDiscardHistory()
	assert.True(t, h.Last().IsNull())
	assert.True(t, h.SecondToLast().IsNull())
	assert.Equal(t, 0, h.Len())

	h.Push(group(t, "JK"))
	assert.True(t, h.Last().IsLoneJoker())
	assert.True(t, h.SecondToLast().IsNull())

	h.Push(group(t, "3S"))
	assert.True(t, h.Last().IsLoneThreeOfSpades())
	assert.True(t, h.SecondToLast().IsLoneJoker())
	assert.Equal(t, 2, h.Len())

	h.Clear()
	assert.True(t, h.Last().IsNull())
	assert.True(t, h.SecondToLast().IsNull())
	assert.Equal(t, 0, h.Len())
}
