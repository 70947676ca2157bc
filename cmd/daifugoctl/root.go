package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"daifugo/internal/domain"
)

// table is the situation every subcommand works on.
type table struct {
	hand     domain.Hand
	history  *domain.DiscardHistory
	inverted bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DAIFUGOCTL")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "daifugoctl",
		Short:         "Inspect Daifugo hands, selections and bot moves",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String("hand", "", "cards in hand, e.g. \"3S,4S,JK\"")
	flags.String("last", "", "play on top of the table")
	flags.String("prev", "", "play under the last one")
	flags.Bool("inverted", false, "strength order is inverted")
	for _, name := range []string{"hand", "last", "prev", "inverted"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	load := func() (*table, error) {
		return loadTable(v.GetString("hand"), v.GetString("prev"), v.GetString("last"), v.GetBool("inverted"))
	}

	root.AddCommand(
		newSelectCmd(load),
		newMovesCmd(load),
		newSuggestCmd(load),
		newConfigCmd(),
	)
	return root
}

func loadTable(hand, prev, last string, inverted bool) (*table, error) {
	cards, err := domain.ParseCards(hand)
	if err != nil {
		return nil, fmt.Errorf("--hand: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("--hand is required")
	}
	t := &table{
		hand:     domain.Hand(cards).Sorted(),
		history:  domain.NewDiscardHistory(),
		inverted: inverted,
	}
	for _, p := range []struct{ flag, value string }{{"prev", prev}, {"last", last}} {
		if p.value == "" {
			continue
		}
		g, err := parsePlay(p.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", p.flag, err)
		}
		t.history.Push(g)
	}
	return t, nil
}

func parsePlay(s string) (domain.PlayGroup, error) {
	cards, err := domain.ParseCards(s)
	if err != nil {
		return domain.NullPlayGroup, err
	}
	g := domain.NewPlayGroup(cards...)
	if !g.IsValid() {
		return domain.NullPlayGroup, fmt.Errorf("%s is not a valid play", s)
	}
	return g, nil
}

// parseIndices reads a comma separated list of hand indices.
func parseIndices(s string, size int) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", f)
		}
		if i < 0 || i >= size {
			return nil, fmt.Errorf("index %d out of range [0,%d)", i, size)
		}
		out = append(out, i)
	}
	return out, nil
}
