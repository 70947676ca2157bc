package bot

import (
	"daifugo/internal/bot/internal"
	"daifugo/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Pass bool
	Play domain.PlayGroup
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	OnEvent(event interface{})
}

// LegalPlays lists every distinct play the hand can make on the current trick.
func LegalPlays(hand domain.Hand, history *domain.DiscardHistory, inverted bool) []domain.PlayGroup {
	moves := internal.GetValidMoves(hand, history, inverted)
	plays := make([]domain.PlayGroup, len(moves))
	for i, m := range moves {
		plays[i] = m.Play
	}
	return plays
}
