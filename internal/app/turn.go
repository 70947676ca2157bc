package app

import (
	"github.com/google/uuid"

	"daifugo/internal/combination"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

// Turn is one player's selection session. It wraps a planner over the
// player's hand and expands the finished selection into playable options.
type Turn struct {
	ID     string
	UserID string

	planner    *planner.Planner
	enumerator *combination.Enumerator
}

func newTurn(hand domain.Hand, history *domain.DiscardHistory, inverted bool) *Turn {
	return &Turn{
		ID:         uuid.NewString(),
		planner:    planner.New(hand, history, inverted),
		enumerator: combination.New(history, inverted),
	}
}

// Select adds hand index i to the selection.
func (t *Turn) Select(i int) planner.SelectResult {
	return t.planner.Select(i)
}

// Deselect removes hand index i from the selection.
func (t *Turn) Deselect(i int) planner.DeselectResult {
	return t.planner.Deselect(i)
}

// Selected returns the selected hand indices in pick order.
func (t *Turn) Selected() []int {
	return t.planner.SelectedIndices()
}

// Selectable returns the hand indices that may be added next.
func (t *Turn) Selectable() []int {
	return t.planner.SelectableIndices()
}

// Options returns the plays the current selection can be committed as,
// weakest first.
func (t *Turn) Options() []domain.PlayGroup {
	options := t.enumerator.Enumerate(t.planner.SelectedCards())
	combination.SortByStrength(options, t.planner.Inverted())
	return options
}
