package domain

// NewDeck returns an ordered deck of 52 cards followed by the requested jokers.
func NewDeck(jokers int) []Card {
	deck := make([]Card, 0, 52+jokers)
	for _, s := range Suits {
		for r := RankAce; r <= RankKing; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	for i := 0; i < jokers; i++ {
		deck = append(deck, Joker)
	}
	return deck
}
