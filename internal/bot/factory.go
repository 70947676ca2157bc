package bot

import (
	"fmt"
	"strings"

	"daifugo/internal/bot/brain"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelSimple BotLevel = iota
	BotLevelGreedy
	BotLevelStandard
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelSimple:
		return "simple"
	case BotLevelGreedy:
		return "greedy"
	case BotLevelStandard:
		return "standard"
	default:
		return fmt.Sprintf("BotLevel(%d)", int(l))
	}
}

// ParseLevel maps a level name to a BotLevel.
func ParseLevel(name string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple", "easy":
		return BotLevelSimple, nil
	case "greedy":
		return BotLevelGreedy, nil
	case "standard", "", "medium", "hard":
		return BotLevelStandard, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", name)
	}
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelSimple:
		return &SimpleBot{}, nil
	case BotLevelGreedy:
		return &GreedyBot{}, nil
	case BotLevelStandard:
		return &StandardBot{Tuning: DefaultTuning, Memory: brain.NewMemory()}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
