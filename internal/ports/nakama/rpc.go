package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"daifugo/internal/domain"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcIDFindMatch, RpcFindMatch)
}

// RpcFindMatch searches for a lobby with at least one open seat and creates
// one when none exists.
//
// Payload: unused.
// Returns: {"match_id": string, "is_new": bool}.
func RpcFindMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	limit := 1
	authoritative := true
	query := fmt.Sprintf("+label.%s:>=1 +label.%s:%s", MatchLabelKeyOpenSeats, MatchLabelKeyPhase, domain.PhaseLobby)
	minSize := 0
	maxSize := domain.MaxSeats

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("RpcFindMatch [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	matchID := ""
	isNew := false
	if len(matches) > 0 {
		matchID = matches[0].MatchId
		logger.Info("RpcFindMatch [User:%s]: Found existing match %s", userID, matchID)
	} else {
		matchID, err = nk.MatchCreate(ctx, MatchNameDaifugo, map[string]interface{}{})
		if err != nil {
			logger.Error("RpcFindMatch [User:%s]: Failed to create match: %v", userID, err)
			return "", err
		}
		isNew = true
		logger.Info("RpcFindMatch [User:%s]: Created new match %s", userID, matchID)
	}

	resp, err := encodePayload(map[string]interface{}{
		"match_id": matchID,
		"is_new":   isNew,
	})
	if err != nil {
		return "", err
	}
	return string(resp), nil
}
