package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"daifugo/internal/app"
	"daifugo/internal/bot"
	"daifugo/internal/config"
	"daifugo/internal/domain"
	"daifugo/internal/planner"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats           [domain.MaxSeats]string     `json:"seats"`      // user IDs, empty string means seat is empty
	OwnerSeat       int                         `json:"owner_seat"` // seat index of the match owner
	Tick            int64                       `json:"tick"`       // current tick of the match
	Presences       map[string]runtime.Presence `json:"-"`          // user ID -> presence for targeted messaging
	App             *app.Service                `json:"-"`
	Game            *domain.Game                `json:"-"` // nil while in lobby
	Turn            *app.Turn                   `json:"-"` // open selection session of a human current player
	TurnStartedTick int64                       `json:"turn_started_tick"`
	Config          config.GameConfig           `json:"config"`
	BotWaitUntil    int64                       `json:"bot_wait_until"` // tick when the current bot acts
	Bots            map[string]*bot.Agent       `json:"-"`              // seats played by the AI, including takeovers
	BotDisplayNames map[string]string           `json:"-"`

	rng *rand.Rand
}

// seatLimit is the number of seats open to players under the config.
func (ms *MatchState) seatLimit() int {
	if ms.Config.MaxPlayers <= 0 || ms.Config.MaxPlayers > domain.MaxSeats {
		return domain.MaxSeats
	}
	return ms.Config.MaxPlayers
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats[:ms.seatLimit()] {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !ms.isBot(seat) {
			count++
		}
	}
	return count
}

// isBot reports whether the AI plays for userID, either a seat-filling bot
// or a human seat taken over after its player left.
func (ms *MatchState) isBot(userID string) bool {
	if _, ok := ms.Bots[userID]; ok {
		return true
	}
	return bot.IsBot(userID)
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserID := range ms.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

// findFirstHumanSeat returns the first seat index with a connected human or -1 if none exist.
func (ms *MatchState) findFirstHumanSeat() int {
	for i, userID := range ms.Seats {
		if _, connected := ms.Presences[userID]; userID != "" && connected && !ms.isBot(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig(GameConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}
	cfg := *config.GetGameConfig()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := &MatchState{
		OwnerSeat:       -1,
		Presences:       make(map[string]runtime.Presence),
		App:             app.NewService(rng, app.WithLogger(newAppLogger(logger)), app.WithJokers(cfg.JokerCount)),
		Config:          cfg,
		Bots:            make(map[string]*bot.Agent),
		BotDisplayNames: make(map[string]string),
		rng:             rng,
	}

	label, err := matchLabel(state.GetOpenSeatsCount(), string(domain.PhaseLobby))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // bot delays and turn timers are counted in ticks
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A player whose seat was taken over may come back.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}
	if matchState.Game != nil {
		return state, false, "Game in progress"
	}
	if matchState.GetOpenSeatsCount() <= 0 && !mh.hasBotSeat(matchState) {
		return state, false, "Match full"
	}
	return state, true, ""
}

func (mh *matchHandler) hasBotSeat(state *MatchState) bool {
	for _, seat := range state.Seats {
		if seat != "" && bot.IsBot(seat) {
			return true
		}
	}
	return false
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p

		if seat := matchState.seatOf(userID); seat >= 0 {
			if _, takenOver := matchState.Bots[userID]; takenOver {
				delete(matchState.Bots, userID)
				logger.Info("MatchJoin: User %s reclaimed seat %d.", userID, seat)
			}
			continue
		}

		if !mh.assignSeat(matchState, logger, userID) {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", userID)
		}
	}

	if !mh.ownerPresent(matchState) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
		logger.Debug("MatchJoin: Owner set to seat %d.", matchState.OwnerSeat)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	if matchState.Turn == nil {
		mh.refreshTurn(matchState, dispatcher, logger)
	}

	return matchState
}

// assignSeat seats userID in the lowest empty seat, or replaces a lobby bot.
func (mh *matchHandler) assignSeat(state *MatchState, logger runtime.Logger, userID string) bool {
	limit := state.seatLimit()
	seats := state.Seats
	for i := limit; i < domain.MaxSeats; i++ {
		seats[i] = "closed"
	}
	if i := domain.LowestAvailableSeat(&seats); i >= 0 {
		state.Seats[i] = userID
		return true
	}

	if state.Game != nil {
		return false
	}
	for i, seatUserID := range state.Seats[:limit] {
		if bot.IsBot(seatUserID) {
			logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, userID, i)
			delete(state.Bots, seatUserID)
			delete(state.BotDisplayNames, seatUserID)
			state.Seats[i] = userID
			return true
		}
	}
	return false
}

func (mh *matchHandler) ownerPresent(state *MatchState) bool {
	if state.OwnerSeat < 0 || state.OwnerSeat >= len(state.Seats) {
		return false
	}
	userID := state.Seats[state.OwnerSeat]
	_, connected := state.Presences[userID]
	return userID != "" && connected && !state.isBot(userID)
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		seat := matchState.seatOf(userID)
		if seat < 0 {
			continue
		}

		if pl := mh.gamePlayer(matchState, userID); pl != nil && !pl.Finished {
			agent, err := bot.NewAgent(bot.BotIdentity{UserID: userID, Level: bot.BotLevelStandard})
			if err != nil {
				logger.Error("MatchLeave: Failed to create takeover bot for %s: %v", userID, err)
				continue
			}
			matchState.Bots[userID] = agent
			if matchState.Turn != nil && matchState.Turn.UserID == userID {
				matchState.Turn = nil
			}
			logger.Info("MatchLeave: User %s left mid-game, a bot takes over seat %d.", userID, seat)
			continue
		}

		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", userID, seat)
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	if !mh.ownerPresent(matchState) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
		logger.Debug("MatchLeave: Owner set to seat %d.", matchState.OwnerSeat)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) gamePlayer(state *MatchState, userID string) *domain.Player {
	if state.Game == nil || state.Game.Phase != domain.PhasePlaying {
		return nil
	}
	return state.Game.Players[userID]
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpSelectCard:
			mh.handleSelection(matchState, dispatcher, logger, msg, true)
		case OpDeselectCard:
			mh.handleSelection(matchState, dispatcher, logger, msg, false)
		case OpPlayOption:
			mh.handlePlayOption(ctx, matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processTurnTimeout(ctx, matchState, dispatcher, logger)
	mh.processBots(ctx, matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if _, err := decodePayload(msg.GetData()); err != nil {
		logger.Warn("StartGame: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, err.Error())
		return
	}
	if state.Game != nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "game already in progress")
		return
	}
	if senderSeat < 0 || senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "only the match owner can start the game")
		return
	}

	if state.Config.BotsEnabled {
		mh.fillBots(state, logger)
	}

	activeCount := state.GetOccupiedSeatCount()
	if activeCount < state.Config.MinPlayers || activeCount < app.MinPlayersToStartGame {
		logger.Warn("StartGame: Cannot start with %d players. Need at least %d.", activeCount, state.Config.MinPlayers)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, app.ErrTooFewPlayers.Error())
		return
	}

	game, events, err := state.App.StartGame(state.Seats[:])
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, err.Error())
		return
	}
	state.Game = game

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, logger)
	mh.applyEvents(ctx, state, dispatcher, logger, events)

	logger.Info("StartGame: Game started with %d players.", activeCount)
}

// fillBots seats a bot in every empty seat up to the configured limit.
func (mh *matchHandler) fillBots(state *MatchState, logger runtime.Logger) {
	for i, seat := range state.Seats[:state.seatLimit()] {
		if seat != "" {
			continue
		}
		identity := bot.NewBotIdentity(i, bot.BotLevelStandard)
		agent, err := bot.NewAgent(identity)
		if err != nil {
			logger.Error("Failed to create bot agent for %s: %v", identity.UserID, err)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		state.BotDisplayNames[identity.UserID] = identity.DisplayName
		logger.Info("fillBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
	}
}

// currentTurn returns the open turn if it belongs to userID, reporting an error to them otherwise.
func (mh *matchHandler) currentTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) *app.Turn {
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, userID, ErrCodeRejected, app.ErrNotPlaying.Error())
		return nil
	}
	if state.Turn == nil || state.Turn.UserID != userID {
		mh.sendError(state, dispatcher, logger, userID, ErrCodeRejected, app.ErrNotYourTurn.Error())
		return nil
	}
	return state.Turn
}

func (mh *matchHandler) handleSelection(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData, selecting bool) {
	senderID := msg.GetUserId()
	turn := mh.currentTurn(state, dispatcher, logger, senderID)
	if turn == nil {
		return
	}

	request, err := decodePayload(msg.GetData())
	if err == nil {
		var index int
		if index, err = intField(request, "index"); err == nil {
			if selecting {
				if res := turn.Select(index); res != planner.SelectSuccess {
					logger.Debug("handleSelection: %s select %d: %s", senderID, index, res)
					mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, res.String())
				}
			} else if res := turn.Deselect(index); res != planner.DeselectSuccess {
				logger.Debug("handleSelection: %s deselect %d: %s", senderID, index, res)
				mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, res.String())
			}
		}
	}
	if err != nil {
		logger.Warn("handleSelection: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, err.Error())
		return
	}

	mh.sendSelectionState(state, dispatcher, logger)
}

func (mh *matchHandler) handlePlayOption(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	turn := mh.currentTurn(state, dispatcher, logger, senderID)
	if turn == nil {
		return
	}

	request, err := decodePayload(msg.GetData())
	if err != nil {
		logger.Warn("handlePlayOption: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, err.Error())
		return
	}
	index, err := intField(request, "option")
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, err.Error())
		return
	}
	options := turn.Options()
	if index < 0 || index >= len(options) {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, "option out of range")
		return
	}

	events, err := state.App.PlayCards(state.Game, senderID, options[index])
	if err != nil {
		logger.Warn("handlePlayOption: User %s failed to play %s: %v", senderID, options[index], err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, err.Error())
		return
	}
	mh.applyEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handlePassTurn: Game not started.")
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, app.ErrNotPlaying.Error())
		return
	}

	events, err := state.App.PassTurn(state.Game, senderID)
	if err != nil {
		logger.Warn("handlePassTurn: User %s failed to pass turn: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, err.Error())
		return
	}
	mh.applyEvents(ctx, state, dispatcher, logger, events)
}

// processTurnTimeout acts for a human who let the turn clock run out: the
// weakest legal option, or a pass when there is none.
func (mh *matchHandler) processTurnTimeout(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Turn == nil || state.Config.TurnDurationSeconds <= 0 {
		return
	}
	if state.Tick-state.TurnStartedTick < int64(state.Config.TurnDurationSeconds) {
		return
	}

	userID := state.Turn.UserID
	logger.Info("processTurnTimeout: Turn of %s timed out.", userID)
	fallback := &bot.Agent{ID: userID, Strategy: &bot.SimpleBot{}}
	mh.playFor(ctx, state, dispatcher, logger, fallback)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil || state.Game.Phase != domain.PhasePlaying {
		state.BotWaitUntil = 0
		return
	}

	currentUserID := state.Game.CurrentTurn
	agent, isBot := state.Bots[currentUserID]
	if !isBot {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		minDelay, maxDelay := state.Config.BotMinDelaySeconds, state.Config.BotMaxDelaySeconds
		delay := minDelay
		if maxDelay > minDelay {
			delay += state.rng.Intn(maxDelay - minDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", currentUserID, state.BotWaitUntil, state.Tick)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	mh.playFor(ctx, state, dispatcher, logger, agent)
}

// playFor lets agent take the current turn. A rejected move falls back to
// the weakest legal option or a pass.
func (mh *matchHandler) playFor(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, agent *bot.Agent) {
	move, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("playFor: %s failed to calculate move: %v", agent.ID, err)
	}

	events, err := mh.commit(state, agent.ID, move)
	if err != nil {
		logger.Warn("playFor: %s move rejected (%v), falling back.", agent.ID, err)
		fallback, _ := (&bot.SimpleBot{}).CalculateMove(state.Game, state.Game.Players[agent.ID])
		if events, err = mh.commit(state, agent.ID, fallback); err != nil {
			logger.Error("playFor: %s fallback rejected: %v", agent.ID, err)
			return
		}
	}
	mh.applyEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) commit(state *MatchState, userID string, move bot.Move) ([]app.Event, error) {
	if move.Pass {
		return state.App.PassTurn(state.Game, userID)
	}
	return state.App.PlayCards(state.Game, userID, move.Play)
}

// applyEvents dispatches events, then closes the game or opens the next turn.
func (mh *matchHandler) applyEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	if state.Game != nil && state.Game.Phase == domain.PhaseEnded {
		mh.finishGame(state, dispatcher, logger)
		return
	}
	mh.refreshTurn(state, dispatcher, logger)
}

// refreshTurn opens a selection session when a connected human is to act.
func (mh *matchHandler) refreshTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	state.Turn = nil
	if state.Game == nil || state.Game.Phase != domain.PhasePlaying {
		return
	}
	userID := state.Game.CurrentTurn
	if state.isBot(userID) {
		return
	}

	turn, err := state.App.BeginTurn(state.Game, userID)
	if err != nil {
		logger.Error("refreshTurn: Failed to open turn for %s: %v", userID, err)
		return
	}
	state.Turn = turn
	state.TurnStartedTick = state.Tick
	mh.sendSelectionState(state, dispatcher, logger)
}

// finishGame returns the match to the lobby. Seats taken over by bots are freed.
func (mh *matchHandler) finishGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	state.Game = nil
	state.Turn = nil
	state.BotWaitUntil = 0

	for i, userID := range state.Seats {
		if _, takenOver := state.Bots[userID]; takenOver && !bot.IsBot(userID) {
			delete(state.Bots, userID)
			state.Seats[i] = ""
			logger.Debug("finishGame: Freed seat %d of departed user %s.", i, userID)
		}
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, logger)
}

// broadcastEvent handles the conversion and dispatching of app events to Nakama.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	for _, agent := range state.Bots {
		agent.OnGameEvent(ev)
	}

	opCode, fields, err := eventMessage(ev)
	if err != nil {
		logger.Warn("broadcastEvent: %v", err)
		return
	}
	bytes, err := encodePayload(fields)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// Targeted events for bots must not leak to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
		logger.Error("broadcastEvent: Failed to send %v: %v", ev.Kind, err)
	}
}

func (mh *matchHandler) sendSelectionState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Turn == nil {
		return
	}
	presence, ok := state.Presences[state.Turn.UserID]
	if !ok {
		return
	}
	bytes, err := encodePayload(selectionMessage(state.Turn))
	if err != nil {
		logger.Error("sendSelectionState: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpSelectionState, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendSelectionState: Failed to send: %v", err)
	}
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	players := make([]interface{}, 0, len(state.Seats))
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := state.BotDisplayNames[userID]; name != "" {
			displayName = name
		}

		cardsRemaining, finished := 0, false
		if state.Game != nil {
			if pl := state.Game.Players[userID]; pl != nil {
				cardsRemaining = len(pl.Hand)
				finished = pl.Finished
			}
		}

		players = append(players, map[string]interface{}{
			"user_id":         userID,
			"seat":            i,
			"display_name":    displayName,
			"is_owner":        i == state.OwnerSeat,
			"is_bot":          state.isBot(userID),
			"cards_remaining": cardsRemaining,
			"finished":        finished,
		})
	}

	fields := map[string]interface{}{
		"phase":      string(domain.PhaseLobby),
		"owner_seat": state.OwnerSeat,
		"tick":       state.Tick,
		"players":    players,
	}
	if state.Game != nil {
		fields["phase"] = string(state.Game.Phase)
		fields["current_turn"] = state.Game.CurrentTurn
		fields["table"] = cardsToList(state.Game.History.Last().Cards())
		fields["inverted"] = state.Game.Inverted
	}

	bytes, err := encodePayload(fields)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true); err != nil {
		logger.Error("broadcastMatchState: Failed to send: %v", err)
	}
}

// sendError sends an error event to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := encodePayload(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	if err := dispatcher.BroadcastMessage(OpError, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendError: Failed to send: %v", err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := domain.PhaseLobby
	if state.Game != nil {
		phase = domain.PhasePlaying
	}

	label, err := matchLabel(state.GetOpenSeatsCount(), string(phase))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with grace %d", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
