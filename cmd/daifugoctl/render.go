package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"daifugo/internal/bot"
	"daifugo/internal/config"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

type selectStep struct {
	Index  int
	Card   domain.Card
	Result planner.SelectResult
}

func renderTable(w io.Writer, title string, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", pterm.LightCyan(title), s)
	return err
}

// renderHand lists the hand with each card's state in the selection.
func renderHand(w io.Writer, t *table, p *planner.Planner) error {
	data := pterm.TableData{{"#", "Card", "State"}}
	for i, c := range t.hand {
		state := p.CheckSelectability(i).String()
		data = append(data, []string{strconv.Itoa(i), c.String(), state})
	}
	title := "Hand"
	if last := t.history.Last(); !last.IsNull() {
		title = fmt.Sprintf("Hand vs %s", last)
	}
	return renderTable(w, title, data)
}

func renderSteps(w io.Writer, steps []selectStep) error {
	data := pterm.TableData{{"#", "Card", "Result"}}
	for _, s := range steps {
		result := s.Result.String()
		if s.Result != planner.SelectSuccess {
			result = pterm.LightRed(result)
		}
		data = append(data, []string{strconv.Itoa(s.Index), s.Card.String(), result})
	}
	return renderTable(w, "Selection", data)
}

func renderPlays(w io.Writer, title string, plays []domain.PlayGroup, inverted bool) error {
	if len(plays) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", pterm.LightCyan(title), "none")
		return err
	}
	data := pterm.TableData{{"Play", "Shape", "Strength", "Jokers"}}
	for _, g := range plays {
		data = append(data, []string{
			g.String(),
			g.Shape().String(),
			strconv.Itoa(g.Strength(inverted)),
			strconv.Itoa(g.CountJokers()),
		})
	}
	return renderTable(w, title, data)
}

func renderMove(w io.Writer, level bot.BotLevel, move bot.Move) error {
	if move.Pass {
		_, err := fmt.Fprintf(w, "%s bot passes\n", level)
		return err
	}
	_, err := fmt.Fprintf(w, "%s bot plays %s\n", level, pterm.LightGreen(move.Play.String()))
	return err
}

func renderConfig(w io.Writer, cfg *config.GameConfig) error {
	return renderTable(w, "Game config", pterm.TableData{
		{"Key", "Value"},
		{"joker_count", strconv.Itoa(cfg.JokerCount)},
		{"min_players", strconv.Itoa(cfg.MinPlayers)},
		{"max_players", strconv.Itoa(cfg.MaxPlayers)},
		{"turn_duration_seconds", strconv.Itoa(cfg.TurnDurationSeconds)},
		{"bots_enabled", strconv.FormatBool(cfg.BotsEnabled)},
		{"bot_min_delay_seconds", strconv.Itoa(cfg.BotMinDelaySeconds)},
		{"bot_max_delay_seconds", strconv.Itoa(cfg.BotMaxDelaySeconds)},
	})
}
