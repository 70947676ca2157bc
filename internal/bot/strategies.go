package bot

import (
	"sort"

	"daifugo/internal/app"
	"daifugo/internal/bot/brain"
	"daifugo/internal/bot/internal"
	"daifugo/internal/domain"
)

// SimpleBot always plays its weakest legal option.
type SimpleBot struct{}

func (b *SimpleBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}
	moves := internal.GetValidMoves(player.Hand, game.History, game.Inverted)
	if len(moves) == 0 {
		return Move{Pass: true}, nil
	}
	sort.Slice(moves, func(i, j int) bool {
		a, c := moves[i], moves[j]
		if sa, sc := a.Play.Strength(game.Inverted), c.Play.Strength(game.Inverted); sa != sc {
			return domain.IsStrongEnough(sa, sc, game.Inverted)
		}
		if a.Jokers != c.Jokers {
			return a.Jokers < c.Jokers
		}
		if a.Play.Count() != c.Play.Count() {
			return a.Play.Count() > c.Play.Count()
		}
		return a.Play.Key() < c.Play.Key()
	})
	return Move{Play: moves[0].Play}, nil
}

func (b *SimpleBot) OnEvent(event interface{}) {}

// GreedyBot sheds as many cards as it can each turn.
type GreedyBot struct{}

func (b *GreedyBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}
	moves := internal.GetValidMoves(player.Hand, game.History, game.Inverted)
	if len(moves) == 0 {
		return Move{Pass: true}, nil
	}
	sort.Slice(moves, func(i, j int) bool {
		a, c := moves[i], moves[j]
		if a.Play.Count() != c.Play.Count() {
			return a.Play.Count() > c.Play.Count()
		}
		if sa, sc := a.Play.Strength(game.Inverted), c.Play.Strength(game.Inverted); sa != sc {
			return domain.IsStrongEnough(sa, sc, game.Inverted)
		}
		if a.Jokers != c.Jokers {
			return a.Jokers < c.Jokers
		}
		return a.Play.Key() < c.Play.Key()
	})
	return Move{Play: moves[0].Play}, nil
}

func (b *GreedyBot) OnEvent(event interface{}) {}

// StandardBot scores each option by the hand it leaves behind.
type StandardBot struct {
	Tuning internal.BotTuning
	Memory *brain.GameMemory
}

func (b *StandardBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	validMoves := internal.GetValidMoves(player.Hand, game.History, game.Inverted)
	if len(validMoves) == 0 {
		return Move{Pass: true}, nil
	}

	tuning := b.Tuning
	if tuning == (internal.BotTuning{}) {
		tuning = DefaultTuning
	}
	phase := internal.DetectPhase(game)
	weights := tuning.ForPhase(phase)
	threat := internal.DetectThreat(game, player.Seat, tuning.ThreatThreshold)

	scored := internal.BuildScoredMoves(player.Hand, validMoves, weights, game.Inverted, threat)

	// A single nobody can answer keeps the lead.
	if b.Memory != nil {
		for i := range scored {
			play := scored[i].Move.Play
			if play.Count() == 1 && b.Memory.IsBoss(play.CardAt(0), game.Inverted) {
				scored[i].Score += bossBonus
			}
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		// Save stronger cards when scores are equal.
		si, sj := scored[i].Move.Play.Strength(game.Inverted), scored[j].Move.Play.Strength(game.Inverted)
		if si != sj {
			return domain.IsStrongEnough(si, sj, game.Inverted)
		}
		return scored[i].Move.Play.Key() < scored[j].Move.Play.Key()
	})

	if !game.History.Last().IsNull() {
		currentScore := internal.ScoreHand(player.Hand, weights, game.Inverted)
		if scored[0].Score < currentScore+tuning.PassThreshold {
			return Move{Pass: true}, nil
		}
	}

	return Move{Play: scored[0].Move.Play}, nil
}

// OnEvent feeds app events into the bot's memory.
func (b *StandardBot) OnEvent(event interface{}) {
	if b.Memory == nil {
		return
	}
	ev, ok := event.(app.Event)
	if !ok {
		return
	}
	switch p := ev.Payload.(type) {
	case app.HandDealtPayload:
		b.Memory.Reset()
		b.Memory.UpdateHand(p.Hand)
	case app.GameStartedPayload:
		b.Memory.TotalJokers = p.Jokers
	case app.CardPlayedPayload:
		b.Memory.RecordPlay(p.UserID, p.Cards, p.CardsLeft)
	case app.TurnPassedPayload:
		b.Memory.RecordPass(p.UserID)
	}
}
