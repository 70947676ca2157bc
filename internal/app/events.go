package app

import "daifugo/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined   EventKind = "player_joined"
	EventPlayerLeft     EventKind = "player_left"
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardPlayed     EventKind = "card_played"
	EventTurnPassed     EventKind = "turn_passed"
	EventTrickSwept     EventKind = "trick_swept"
	EventPlayerFinished EventKind = "player_finished"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID string
	Seat   int
	Bot    bool
}

type PlayerLeftPayload struct {
	UserID string
}

type GameStartedPayload struct {
	Phase           domain.Phase
	FirstTurnUserID string
	Order           []string
	Jokers          int
}

type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

type CardPlayedPayload struct {
	UserID         string
	Cards          []domain.Card
	CardsLeft      int
	NextTurnUserID string
}

type TurnPassedPayload struct {
	UserID         string
	NextTurnUserID string
}

// TrickSweptPayload names the player who leads the fresh trick.
type TrickSweptPayload struct {
	LeaderUserID string
}

type PlayerFinishedPayload struct {
	UserID   string
	Position int // 1-based finishing position
}

type GameEndedPayload struct {
	FinishOrder []string
}
