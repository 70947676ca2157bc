package bot

import (
	"daifugo/internal/app"
	"daifugo/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player, ok := game.Players[a.ID]
	if !ok || player.Finished {
		return Move{Pass: true}, nil
	}

	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}

// OnGameEvent notifies the agent of a game event. Events addressed to
// other players are dropped.
func (a *Agent) OnGameEvent(event app.Event) {
	if len(event.Recipients) > 0 {
		mine := false
		for _, id := range event.Recipients {
			if id == a.ID {
				mine = true
				break
			}
		}
		if !mine {
			return
		}
	}
	a.Strategy.OnEvent(event)
}
