package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override file values,
// e.g. DAIFUGO_JOKER_COUNT.
const EnvPrefix = "DAIFUGO"

type GameConfig struct {
	JokerCount          int `json:"joker_count" mapstructure:"joker_count"`
	MinPlayers          int `json:"min_players" mapstructure:"min_players"`
	MaxPlayers          int `json:"max_players" mapstructure:"max_players"`
	TurnDurationSeconds int `json:"turn_duration_seconds" mapstructure:"turn_duration_seconds"`
	// BotsEnabled lets the match handler fill empty seats with bots when a game starts.
	BotsEnabled        bool `json:"bots_enabled" mapstructure:"bots_enabled"`
	BotMinDelaySeconds int  `json:"bot_min_delay_seconds" mapstructure:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int  `json:"bot_max_delay_seconds" mapstructure:"bot_max_delay_seconds"`
}

var (
	ErrJokerCount = errors.New("joker_count must be between 0 and 2")
	ErrPlayers    = errors.New("player limits must satisfy 2 <= min_players <= max_players <= 4")
	ErrBotDelay   = errors.New("bot delays must satisfy 0 <= bot_min_delay_seconds <= bot_max_delay_seconds")
)

// Default returns the configuration used when no file is given.
func Default() GameConfig {
	return GameConfig{
		JokerCount:          1,
		MinPlayers:          2,
		MaxPlayers:          4,
		TurnDurationSeconds: 30,
		BotsEnabled:         true,
		BotMinDelaySeconds:  1,
		BotMaxDelaySeconds:  3,
	}
}

// Validate checks value ranges.
func (c GameConfig) Validate() error {
	if c.JokerCount < 0 || c.JokerCount > 2 {
		return fmt.Errorf("joker_count %d: %w", c.JokerCount, ErrJokerCount)
	}
	if c.MinPlayers < 2 || c.MinPlayers > c.MaxPlayers || c.MaxPlayers > 4 {
		return fmt.Errorf("players %d..%d: %w", c.MinPlayers, c.MaxPlayers, ErrPlayers)
	}
	if c.BotMinDelaySeconds < 0 || c.BotMinDelaySeconds > c.BotMaxDelaySeconds {
		return fmt.Errorf("bot delay %d..%d: %w", c.BotMinDelaySeconds, c.BotMaxDelaySeconds, ErrBotDelay)
	}
	return nil
}

// Load reads a JSON config file on top of the defaults and applies
// DAIFUGO_* environment overrides. An empty path skips the file.
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("joker_count", d.JokerCount)
	v.SetDefault("min_players", d.MinPlayers)
	v.SetDefault("max_players", d.MaxPlayers)
	v.SetDefault("turn_duration_seconds", d.TurnDurationSeconds)
	v.SetDefault("bots_enabled", d.BotsEnabled)
	v.SetDefault("bot_min_delay_seconds", d.BotMinDelaySeconds)
	v.SetDefault("bot_max_delay_seconds", d.BotMaxDelaySeconds)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	var c GameConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &c, nil
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path once.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = Load(path)
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults if
// LoadGameConfig has not succeeded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		d := Default()
		return &d
	}
	return cfg
}
