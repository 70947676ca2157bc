package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daifugo/internal/bot"
	"daifugo/internal/combination"
	"daifugo/internal/config"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

type tableLoader func() (*table, error)

func newSelectCmd(load tableLoader) *cobra.Command {
	var picks string
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Replay a selection and show what may be picked and played",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load()
			if err != nil {
				return err
			}
			indices, err := parseIndices(picks, t.hand.Count())
			if err != nil {
				return err
			}

			p := planner.New(t.hand, t.history, t.inverted)
			steps := make([]selectStep, 0, len(indices))
			for _, i := range indices {
				steps = append(steps, selectStep{Index: i, Card: t.hand.CardAt(i), Result: p.Select(i)})
			}
			options := combination.New(t.history, t.inverted).Enumerate(p.SelectedCards())
			combination.SortByStrength(options, t.inverted)

			out := cmd.OutOrStdout()
			if err := renderHand(out, t, p); err != nil {
				return err
			}
			if len(steps) > 0 {
				if err := renderSteps(out, steps); err != nil {
					return err
				}
			}
			return renderPlays(out, "Options", options, t.inverted)
		},
	}
	cmd.Flags().StringVar(&picks, "select", "", "hand indices to select in order, e.g. \"0,2,3\"")
	return cmd
}

func newMovesCmd(load tableLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "moves",
		Short: "List every legal play on the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load()
			if err != nil {
				return err
			}
			plays := bot.LegalPlays(t.hand, t.history, t.inverted)
			combination.SortByStrength(plays, t.inverted)
			return renderPlays(cmd.OutOrStdout(), "Legal plays", plays, t.inverted)
		},
	}
}

func newSuggestCmd(load tableLoader) *cobra.Command {
	var level string
	var opponents []int
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask a bot which play it would make",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load()
			if err != nil {
				return err
			}
			lvl, err := bot.ParseLevel(level)
			if err != nil {
				return err
			}
			brain, err := bot.NewBrain(lvl)
			if err != nil {
				return err
			}
			game, player := suggestGame(t, opponents)
			move, err := brain.CalculateMove(game, player)
			if err != nil {
				return err
			}
			return renderMove(cmd.OutOrStdout(), lvl, move)
		},
	}
	cmd.Flags().StringVar(&level, "level", "standard", "bot level: simple, greedy or standard")
	cmd.Flags().IntSliceVar(&opponents, "opponents", []int{13, 13}, "card counts of the other players")
	return cmd
}

// suggestGame seats the hand first, followed by opponents holding the
// given number of unknown cards.
func suggestGame(t *table, opponents []int) (*domain.Game, *domain.Player) {
	me := &domain.Player{UserID: "you", Seat: 1, Hand: t.hand}
	game := &domain.Game{
		Phase:       domain.PhasePlaying,
		Players:     map[string]*domain.Player{me.UserID: me},
		Order:       []string{me.UserID},
		CurrentTurn: me.UserID,
		History:     t.history,
		Inverted:    t.inverted,
	}
	for i, n := range opponents {
		id := fmt.Sprintf("p%d", i+2)
		game.Players[id] = &domain.Player{UserID: id, Seat: i + 2, Hand: make(domain.Hand, n), Finished: n == 0}
		game.Order = append(game.Order, id)
	}
	return game, me
}

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate a game config file and print the effective values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			return renderConfig(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "path to a JSON game config; defaults only when empty")
	return cmd
}
