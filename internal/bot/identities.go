package bot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// botIDPrefix marks user IDs minted for seat-filling bots.
const botIDPrefix = "bot-"

var botNames = []string{"Kuro", "Shiro", "Aka", "Ao", "Midori", "Kiiro"}

// BotIdentity is the presence a bot takes when it fills a seat.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       BotLevel
}

// NewBotID mints a fresh bot user ID.
func NewBotID() string {
	return botIDPrefix + uuid.NewString()
}

// NewBotIdentity returns an identity for the bot filling slot index.
func NewBotIdentity(index int, level BotLevel) BotIdentity {
	id := NewBotID()
	name := botNames[index%len(botNames)]
	return BotIdentity{
		UserID:      id,
		Username:    strings.ToLower(name) + "-" + id[len(botIDPrefix):len(botIDPrefix)+8],
		DisplayName: fmt.Sprintf("%s (AI)", name),
		Level:       level,
	}
}

// NewAgent builds an Agent for identity with a brain of the identity's level.
func NewAgent(identity BotIdentity) (*Agent, error) {
	strategy, err := NewBrain(identity.Level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: identity.UserID, Name: identity.DisplayName, Strategy: strategy}, nil
}

// IsBot reports whether the given user ID was minted for a bot.
func IsBot(userID string) bool {
	if !strings.HasPrefix(userID, botIDPrefix) {
		return false
	}
	_, err := uuid.Parse(userID[len(botIDPrefix):])
	return err == nil
}
