package app

import (
	"errors"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"daifugo/internal/combination"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

// Service contains Daifugo use-cases operating on domain state.
type Service struct {
	rng    *rand.Rand
	log    logrus.FieldLogger
	jokers int
}

// Option customises a Service.
type Option func(*Service)

// WithLogger routes service logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// WithJokers sets how many jokers are shuffled into the deck.
func WithJokers(n int) Option {
	return func(s *Service) { s.jokers = n }
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Service{rng: rng, log: discard, jokers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrNotPlaying     = errors.New("match not in playing phase")
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players to start")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrPlayerFinished = errors.New("player already finished")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrEmptyPlay      = errors.New("play has no cards")
	ErrCardsNotInHand = errors.New("cards not in hand")
	ErrIllegalPlay    = errors.New("play is not legal on the current trick")
	ErrCannotPass     = errors.New("cannot pass when leading a trick")
)

// StartGame deals a new game to the given players in seat order. Empty
// strings mark empty seats. The holder of the 3 of diamonds leads.
func (s *Service) StartGame(playerIDs []string) (*domain.Game, []Event, error) {
	players := make(map[string]*domain.Player)
	var order []string
	for i, userID := range playerIDs {
		if userID == "" {
			continue
		}
		players[userID] = &domain.Player{UserID: userID, Seat: i + 1}
		order = append(order, userID)
	}

	if len(players) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(players) > domain.MaxSeats {
		return nil, nil, ErrTooManyPlayers
	}

	deck := domain.NewDeck(s.jokers)
	s.shuffle(deck)

	for i, c := range deck {
		pl := players[order[i%len(order)]]
		pl.Hand = append(pl.Hand, c)
	}

	game := &domain.Game{
		Phase:   domain.PhasePlaying,
		Players: players,
		Order:   order,
		History: domain.NewDiscardHistory(),
	}
	game.CurrentTurn = order[0]
	threeOfDiamonds := domain.Card{Suit: domain.SuitDiamonds, Rank: domain.RankThree}

	events := make([]Event, 0, len(order)+1)
	for _, userID := range order {
		pl := players[userID]
		pl.Hand = pl.Hand.Sorted()
		if pl.Hand.Contains([]domain.Card{threeOfDiamonds}) {
			game.CurrentTurn = userID
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: append([]domain.Card(nil), pl.Hand...)},
			Recipients: []string{userID},
		})
	}

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Phase:           game.Phase,
			FirstTurnUserID: game.CurrentTurn,
			Order:           append([]string(nil), order...),
			Jokers:          s.jokers,
		},
	})

	s.log.WithFields(logrus.Fields{
		"players":    len(order),
		"jokers":     s.jokers,
		"first_turn": game.CurrentTurn,
	}).Info("game started")

	return game, events, nil
}

// BeginTurn opens a selection session for the player whose turn it is.
func (s *Service) BeginTurn(game *domain.Game, userID string) (*Turn, error) {
	pl, err := s.actor(game, userID)
	if err != nil {
		return nil, err
	}
	t := newTurn(pl.Hand, game.History, game.Inverted)
	t.UserID = userID
	s.log.WithFields(logrus.Fields{"user_id": userID, "turn_id": t.ID}).Debug("turn opened")
	return t, nil
}

// PlayCards commits play for the acting player. The play's cards, with
// wildcards read as jokers, must be in the hand, be selectable in turn
// order, and play must be one of the readings those cards enumerate to.
func (s *Service) PlayCards(game *domain.Game, actorUserID string, play domain.PlayGroup) ([]Event, error) {
	pl, err := s.actor(game, actorUserID)
	if err != nil {
		return nil, err
	}
	if play.IsNull() {
		return nil, ErrEmptyPlay
	}

	raw := make([]domain.Card, play.Count())
	for i, c := range play.Cards() {
		raw[i] = c.AsJoker()
	}
	if !pl.Hand.Contains(raw) {
		return nil, ErrCardsNotInHand
	}
	if !s.isLegal(pl.Hand, game, raw, play) {
		s.log.WithFields(logrus.Fields{"user_id": actorUserID, "cards": play.String()}).Warn("illegal play rejected")
		return nil, ErrIllegalPlay
	}

	pl.Hand = pl.Hand.Remove(raw)
	game.History.Push(play)
	game.LastPlayedBy = actorUserID

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			UserID:    actorUserID,
			Cards:     play.Cards(),
			CardsLeft: len(pl.Hand),
		},
	}}
	s.log.WithFields(logrus.Fields{
		"user_id":    actorUserID,
		"cards":      play.String(),
		"cards_left": len(pl.Hand),
	}).Info("cards played")

	if len(pl.Hand) == 0 {
		pl.Finished = true
		game.FinishOrder = append(game.FinishOrder, actorUserID)
		events = append(events, Event{
			Kind:    EventPlayerFinished,
			Payload: PlayerFinishedPayload{UserID: actorUserID, Position: len(game.FinishOrder)},
		})
	}

	if domain.CountPlayersWithCards(game) <= 1 {
		return append(events, s.endGame(game)...), nil
	}

	events = append(events, s.advance(game, actorUserID)...)
	played := events[0].Payload.(CardPlayedPayload)
	played.NextTurnUserID = game.CurrentTurn
	events[0].Payload = played
	return events, nil
}

// PassTurn marks a player's pass. When nobody else can still answer the
// last play, the trick is swept and its winner leads.
func (s *Service) PassTurn(game *domain.Game, actorUserID string) ([]Event, error) {
	pl, err := s.actor(game, actorUserID)
	if err != nil {
		return nil, err
	}
	if game.History.Last().IsNull() {
		return nil, ErrCannotPass
	}

	pl.HasPassed = true
	events := []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{UserID: actorUserID},
	}}
	events = append(events, s.advance(game, actorUserID)...)

	passed := events[0].Payload.(TurnPassedPayload)
	passed.NextTurnUserID = game.CurrentTurn
	events[0].Payload = passed

	s.log.WithFields(logrus.Fields{"user_id": actorUserID, "next": game.CurrentTurn}).Info("turn passed")
	return events, nil
}

// advance hands the turn to the next player who may still answer the last
// play, or sweeps the trick when there is none.
func (s *Service) advance(game *domain.Game, from string) []Event {
	if next := nextToAct(game, from); next != "" {
		game.CurrentTurn = next
		return nil
	}

	leader := game.LastPlayedBy
	if pl := game.Players[leader]; pl == nil || pl.Finished {
		leader = game.NextActive(leader)
	}
	game.History.Clear()
	game.ResetPasses()
	game.CurrentTurn = leader

	s.log.WithField("leader", leader).Info("trick swept")
	return []Event{{
		Kind:    EventTrickSwept,
		Payload: TrickSweptPayload{LeaderUserID: leader},
	}}
}

func (s *Service) endGame(game *domain.Game) []Event {
	for _, userID := range game.Order {
		if pl := game.Players[userID]; !pl.Finished {
			pl.Finished = true
			game.FinishOrder = append(game.FinishOrder, userID)
		}
	}
	game.Phase = domain.PhaseEnded
	game.CurrentTurn = ""
	s.log.WithField("finish_order", game.FinishOrder).Info("game ended")
	return []Event{{
		Kind:    EventGameEnded,
		Payload: GameEndedPayload{FinishOrder: append([]string(nil), game.FinishOrder...)},
	}}
}

func (s *Service) actor(game *domain.Game, userID string) (*domain.Player, error) {
	if game == nil || game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[userID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if pl.Finished {
		return nil, ErrPlayerFinished
	}
	if game.CurrentTurn != userID {
		return nil, ErrNotYourTurn
	}
	return pl, nil
}

// isLegal replays the selection through a planner session, weakest genuine
// cards first and jokers last, then checks play is one of its readings.
func (s *Service) isLegal(hand domain.Hand, game *domain.Game, raw []domain.Card, play domain.PlayGroup) bool {
	picks := append([]domain.Card(nil), raw...)
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Strength() < picks[j].Strength()
	})

	p := planner.New(hand, game.History, game.Inverted)
	for _, c := range picks {
		idx := -1
		for i := 0; i < hand.Count(); i++ {
			if !p.IsSelected(i) && hand.CardAt(i).Same(c) {
				idx = i
				break
			}
		}
		if idx < 0 || p.Select(idx) != planner.SelectSuccess {
			return false
		}
	}

	for _, option := range combination.New(game.History, game.Inverted).Enumerate(p.SelectedCards()) {
		if option.Equal(play) {
			return true
		}
	}
	return false
}

// nextToAct returns the first player after from, in seat order, who holds
// cards, has not passed this trick and did not make the last play.
func nextToAct(game *domain.Game, from string) string {
	start := 0
	for i, id := range game.Order {
		if id == from {
			start = i
			break
		}
	}
	for i := 1; i <= len(game.Order); i++ {
		id := game.Order[(start+i)%len(game.Order)]
		pl := game.Players[id]
		if pl == nil || pl.Finished || pl.HasPassed || id == game.LastPlayedBy {
			continue
		}
		return id
	}
	return ""
}

func (s *Service) shuffle(deck []domain.Card) {
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}
