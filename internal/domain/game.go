package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby indicates the match is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates the match is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the match has finished.
	PhaseEnded Phase = "ended"
)

// MaxSeats is the number of seats at a table.
const MaxSeats = 4

// Player holds the domain state for a player in a game.
type Player struct {
	UserID    string
	Seat      int // 1-based
	Hand      Hand
	HasPassed bool
	Finished  bool
}

// Game is the state of one deal: the seated players, the current trick and
// whose turn it is.
type Game struct {
	Phase   Phase
	Players map[string]*Player
	Order   []string // user IDs in seat order

	CurrentTurn  string
	LastPlayedBy string
	History      *DiscardHistory

	// Inverted flips the ordinary rank order. Nothing in the rules sets it yet.
	Inverted bool

	FinishOrder []string
}

// NextActive returns the first player after userID in seat order who still
// holds cards, or "" when there is none.
func (g *Game) NextActive(userID string) string {
	start := g.seatIndex(userID)
	for i := 1; i <= len(g.Order); i++ {
		id := g.Order[(start+i)%len(g.Order)]
		if pl := g.Players[id]; pl != nil && !pl.Finished {
			return id
		}
	}
	return ""
}

// ActivePlayers returns the user IDs still holding cards, in seat order.
func (g *Game) ActivePlayers() []string {
	out := make([]string, 0, len(g.Order))
	for _, id := range g.Order {
		if pl := g.Players[id]; pl != nil && !pl.Finished {
			out = append(out, id)
		}
	}
	return out
}

// ResetPasses clears every player's pass flag.
func (g *Game) ResetPasses() {
	for _, pl := range g.Players {
		pl.HasPassed = false
	}
}

func (g *Game) seatIndex(userID string) int {
	for i, id := range g.Order {
		if id == userID {
			return i
		}
	}
	return -1
}

// LowestAvailableSeat returns the lowest index of an empty seat, or -1 when full.
func LowestAvailableSeat(seats *[MaxSeats]string) int {
	for i, userID := range seats {
		if userID == "" {
			return i
		}
	}
	return -1
}

// CountPlayersWithCards returns the number of active players with cards remaining.
func CountPlayersWithCards(game *Game) int {
	count := 0
	for _, player := range game.Players {
		if !player.Finished && len(player.Hand) > 0 {
			count++
		}
	}
	return count
}
