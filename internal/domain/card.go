package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is the mark printed on a card. Jokers carry SuitJoker.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitJoker    Suit = "JK"
)

// Suits lists the four ordinary suits in display order.
var Suits = []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Card is an immutable playing card. Rank is 1..13 (Ace..King) for ordinary
// cards and 0 for the joker. A wildcard is a joker resolved into a play: it
// keeps the suit of a genuine card from that play and the rank it stands for.
type Card struct {
	Suit Suit
	Rank int
	Wild bool
}

// Joker is the raw joker card.
var Joker = Card{Suit: SuitJoker, Rank: RankJoker}

// NewWildcard returns a joker standing in for rank in the given suit.
func NewWildcard(suit Suit, rank int) Card {
	return Card{Suit: suit, Rank: rank, Wild: true}
}

// IsJoker reports whether c is a raw joker.
func (c Card) IsJoker() bool {
	return c.Rank == RankJoker && !c.Wild
}

// IsWild reports whether c is a resolved joker.
func (c Card) IsWild() bool {
	return c.Wild
}

// IsJokerLike reports whether c is a joker, raw or resolved.
func (c Card) IsJokerLike() bool {
	return c.IsJoker() || c.Wild
}

// IsThreeOfSpades reports whether c is the genuine 3 of spades.
func (c Card) IsThreeOfSpades() bool {
	return !c.Wild && c.Suit == SuitSpades && c.Rank == RankThree
}

// Strength returns the ladder strength of the rank c currently represents.
func (c Card) Strength() int {
	return StrengthOf(c.Rank)
}

// Same reports whether c and o are the same card for rule purposes. Jokers and
// wildcards are interchangeable with each other.
func (c Card) Same(o Card) bool {
	if c.IsJokerLike() || o.IsJokerLike() {
		return c.IsJokerLike() && o.IsJokerLike()
	}
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// AsJoker returns the raw joker a wildcard was resolved from, or c unchanged.
func (c Card) AsJoker() Card {
	if c.Wild {
		return Joker
	}
	return c
}

var rankNames = map[int]string{1: "A", 11: "J", 12: "Q", 13: "K"}

// String renders a card as rank followed by suit, e.g. "10H", "QS", "JK".
// Wildcards carry a trailing "*".
func (c Card) String() string {
	if c.IsJoker() {
		return string(SuitJoker)
	}
	name, ok := rankNames[c.Rank]
	if !ok {
		name = strconv.Itoa(c.Rank)
	}
	s := name + string(c.Suit)
	if c.Wild {
		s += "*"
	}
	return s
}

// ParseCard parses the String form of a card. "T" is accepted for ten.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == string(SuitJoker) {
		return Joker, nil
	}
	wild := strings.HasSuffix(s, "*")
	s = strings.TrimSuffix(s, "*")
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	suit := Suit(s[len(s)-1:])
	if !validSuit(suit) {
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}
	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: rank, Wild: wild}, nil
}

// ParseCards parses a comma or space separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards joins the String form of each card with commas.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func parseRank(s string) (int, error) {
	switch s {
	case "A":
		return RankAce, nil
	case "T":
		return 10, nil
	case "J":
		return 11, nil
	case "Q":
		return 12, nil
	case "K":
		return RankKing, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > RankKing {
		return 0, fmt.Errorf("rank %d out of range", n)
	}
	return n, nil
}

func validSuit(s Suit) bool {
	for _, v := range Suits {
		if v == s {
			return true
		}
	}
	return false
}
