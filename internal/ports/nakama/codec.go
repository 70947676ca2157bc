package nakama

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"daifugo/internal/app"
	"daifugo/internal/domain"
)

// encodePayload marshals fields as a protojson-encoded google.protobuf.Struct.
func encodePayload(fields map[string]interface{}) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// decodePayload parses a client message body. An empty body is an empty struct.
func decodePayload(data []byte) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if len(data) == 0 {
		return s, nil
	}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// intField reads a non-negative integer field.
func intField(s *structpb.Struct, key string) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	if n.NumberValue < 0 || n.NumberValue > math.MaxInt32 || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, fmt.Errorf("field %q must be an integer in [0, %d]", key, math.MaxInt32)
	}
	return int(n.NumberValue), nil
}

func cardsToList(cards []domain.Card) []interface{} {
	out := make([]interface{}, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func stringsToList(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func intsToList(ns []int) []interface{} {
	out := make([]interface{}, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

// matchLabel encodes the label Nakama indexes for match listing.
func matchLabel(open int, phase string) (string, error) {
	b, err := encodePayload(map[string]interface{}{
		MatchLabelKeyOpenSeats: open,
		MatchLabelKeyPhase:     phase,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// eventMessage maps an app event to its opcode and wire fields.
func eventMessage(ev app.Event) (int64, map[string]interface{}, error) {
	switch p := ev.Payload.(type) {
	case app.GameStartedPayload:
		return OpGameStarted, map[string]interface{}{
			"phase":      string(p.Phase),
			"first_turn": p.FirstTurnUserID,
			"order":      stringsToList(p.Order),
			"jokers":     p.Jokers,
		}, nil
	case app.HandDealtPayload:
		return OpHandDealt, map[string]interface{}{
			"user_id": p.UserID,
			"hand":    cardsToList(p.Hand),
		}, nil
	case app.CardPlayedPayload:
		return OpCardPlayed, map[string]interface{}{
			"user_id":    p.UserID,
			"cards":      cardsToList(p.Cards),
			"cards_left": p.CardsLeft,
			"next_turn":  p.NextTurnUserID,
		}, nil
	case app.TurnPassedPayload:
		return OpTurnPassed, map[string]interface{}{
			"user_id":   p.UserID,
			"next_turn": p.NextTurnUserID,
		}, nil
	case app.TrickSweptPayload:
		return OpTrickSwept, map[string]interface{}{
			"leader": p.LeaderUserID,
		}, nil
	case app.PlayerFinishedPayload:
		return OpPlayerFinished, map[string]interface{}{
			"user_id":  p.UserID,
			"position": p.Position,
		}, nil
	case app.GameEndedPayload:
		return OpGameEnded, map[string]interface{}{
			"finish_order": stringsToList(p.FinishOrder),
		}, nil
	default:
		return 0, nil, fmt.Errorf("unknown event kind: %v", ev.Kind)
	}
}

// selectionMessage describes an open turn to the player holding it.
func selectionMessage(turn *app.Turn) map[string]interface{} {
	options := turn.Options()
	list := make([]interface{}, len(options))
	for i, o := range options {
		list[i] = cardsToList(o.Cards())
	}
	return map[string]interface{}{
		"turn_id":    turn.ID,
		"selected":   intsToList(turn.Selected()),
		"selectable": intsToList(turn.Selectable()),
		"options":    list,
	}
}
