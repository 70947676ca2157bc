package brain

import (
	"daifugo/internal/domain"
)

// GameMemory stores the bot's private view of the game: its own cards,
// the cards already discarded and how often each opponent passed.
type GameMemory struct {
	mine   map[domain.Card]bool
	played map[domain.Card]bool

	jokersMine   int
	jokersPlayed int
	// TotalJokers is the number of jokers dealt this game.
	TotalJokers int

	// Passes counts passes per user ID since the game started.
	Passes map[string]int
	// CardsRemaining tracks opponents' hand sizes as reported by play events.
	CardsRemaining map[string]int
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	m := &GameMemory{}
	m.Reset()
	return m
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	m.mine = make(map[domain.Card]bool)
	m.played = make(map[domain.Card]bool)
	m.jokersMine = 0
	m.jokersPlayed = 0
	m.Passes = make(map[string]int)
	m.CardsRemaining = make(map[string]int)
}

// UpdateHand replaces the record of the bot's own cards.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	m.mine = make(map[domain.Card]bool, len(hand))
	m.jokersMine = 0
	for _, c := range hand {
		if c.IsJokerLike() {
			m.jokersMine++
			continue
		}
		m.mine[c] = true
	}
}

// RecordPlay marks cards as discarded. A wildcard counts as a spent joker.
func (m *GameMemory) RecordPlay(userID string, cards []domain.Card, cardsLeft int) {
	for _, c := range cards {
		if c.IsJokerLike() {
			m.jokersPlayed++
			continue
		}
		m.played[c] = true
	}
	m.CardsRemaining[userID] = cardsLeft
}

// RecordPass notes that a player passed.
func (m *GameMemory) RecordPass(userID string) {
	m.Passes[userID]++
}

// IsPlayed reports whether the ordinary card c is already out of the game.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.played[c]
}

// JokersOutstanding returns the jokers that may still sit in an opponent's hand.
func (m *GameMemory) JokersOutstanding() int {
	n := m.TotalJokers - m.jokersMine - m.jokersPlayed
	if n < 0 {
		return 0
	}
	return n
}

// IsBoss reports whether no opponent can hold a single that beats c: every
// stronger ordinary card is played or in hand and no joker is outstanding.
func (m *GameMemory) IsBoss(c domain.Card, inverted bool) bool {
	if c.IsJokerLike() {
		return true
	}
	if m.JokersOutstanding() > 0 {
		return false
	}
	for r, ok := domain.NextStrongerRank(c.Rank, inverted); ok; r, ok = domain.NextStrongerRank(r, inverted) {
		for _, suit := range domain.Suits {
			card := domain.Card{Suit: suit, Rank: r}
			if !m.mine[card] && !m.played[card] {
				return false
			}
		}
	}
	return true
}
