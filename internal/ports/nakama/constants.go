package nakama

const (
	// RpcIDFindMatch is the Nakama RPC id clients call to find or create an open match.
	RpcIDFindMatch = "find_match"

	// MatchNameDaifugo is the authoritative match handler name registered with Nakama.
	MatchNameDaifugo = "daifugo_match"

	// GameConfigPath is read once per process by the first match.
	GameConfigPath = "data/game_config.json"
)

// Match label keys, queryable as +label.open / label.phase.
const (
	MatchLabelKeyOpenSeats = "open"
	MatchLabelKeyPhase     = "phase"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame    int64 = 1
	OpSelectCard   int64 = 2 // {"index": n}
	OpDeselectCard int64 = 3 // {"index": n}
	OpPlayOption   int64 = 4 // {"option": n}, index into the last selection state's options
	OpPassTurn     int64 = 5

	// Server -> Client events
	OpMatchState     int64 = 101
	OpGameStarted    int64 = 102
	OpHandDealt      int64 = 103 // send privately
	OpSelectionState int64 = 104 // send privately
	OpCardPlayed     int64 = 105
	OpTurnPassed     int64 = 106
	OpTrickSwept     int64 = 107
	OpPlayerFinished int64 = 108
	OpGameEnded      int64 = 109
	OpError          int64 = 110
)

// Error codes carried by OpError.
const (
	ErrCodeBadRequest = 400
	ErrCodeRejected   = 409
)
