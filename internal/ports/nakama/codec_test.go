package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"

	"daifugo/internal/app"
)

func TestMatchLabel(t *testing.T) {
	tests := []struct {
		name  string
		open  int
		phase string
	}{
		{name: "LobbyState", open: 3, phase: "lobby"},
		{name: "PlayingState", open: 0, phase: "playing"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			label, err := matchLabel(test.open, test.phase)
			if err != nil {
				t.Fatalf("Failed to marshal label: %v", err)
			}
			var got map[string]interface{}
			if err := json.Unmarshal([]byte(label), &got); err != nil {
				t.Fatalf("Failed to parse label %s: %v", label, err)
			}
			if got["open"] != float64(test.open) || got["phase"] != test.phase {
				t.Errorf("Got %s", label)
			}
		})
	}
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "number", body: `{"index":2}`, want: 2},
		{name: "missing", body: `{}`, wantErr: true},
		{name: "string", body: `{"index":"2"}`, wantErr: true},
		{name: "fraction", body: `{"index":1.5}`, wantErr: true},
		{name: "negative", body: `{"index":-3}`, wantErr: true},
		{name: "largest", body: `{"index":2147483647}`, want: 2147483647},
		{name: "too large", body: `{"index":1e19}`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := decodePayload([]byte(test.body))
			if err != nil {
				t.Fatalf("decodePayload: %v", err)
			}
			got, err := intField(s, "index")
			if (err != nil) != test.wantErr {
				t.Fatalf("err = %v, wantErr %t", err, test.wantErr)
			}
			if got != test.want {
				t.Fatalf("got %d, want %d", got, test.want)
			}
		})
	}
}

func TestEventMessage(t *testing.T) {
	op, fields, err := eventMessage(app.Event{
		Kind: app.EventCardPlayed,
		Payload: app.CardPlayedPayload{
			UserID:         "u1",
			Cards:          mustCards(t, "6S,7S*,8S"),
			CardsLeft:      4,
			NextTurnUserID: "u2",
		},
	})
	if err != nil {
		t.Fatalf("eventMessage: %v", err)
	}
	if op != OpCardPlayed {
		t.Fatalf("op = %d, want %d", op, OpCardPlayed)
	}

	data, err := encodePayload(fields)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	var got struct {
		UserID    string   `json:"user_id"`
		Cards     []string `json:"cards"`
		CardsLeft int      `json:"cards_left"`
		NextTurn  string   `json:"next_turn"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("payload %s: %v", data, err)
	}
	if got.UserID != "u1" || got.CardsLeft != 4 || got.NextTurn != "u2" {
		t.Fatalf("payload = %+v", got)
	}
	if len(got.Cards) != 3 || got.Cards[1] != "7S*" {
		t.Fatalf("cards = %v", got.Cards)
	}

	if _, _, err := eventMessage(app.Event{Kind: "bogus", Payload: 42}); err == nil {
		t.Fatal("Expected an error for an unknown payload")
	}
}

// recordingLogger captures runtime logger calls by level.
type recordingLogger struct {
	noopLogger
	fields map[string]interface{}
	lines  *[]string
}

func (l recordingLogger) record(level string, v []interface{}) {
	*l.lines = append(*l.lines, fmt.Sprintf("%s:%v", level, v[0]))
}

func (l recordingLogger) Debug(format string, v ...interface{}) { l.record("debug", v) }
func (l recordingLogger) Info(format string, v ...interface{})  { l.record("info", v) }
func (l recordingLogger) Warn(format string, v ...interface{})  { l.record("warn", v) }
func (l recordingLogger) Error(format string, v ...interface{}) { l.record("error", v) }
func (l recordingLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

func TestAppLoggerForwardsToRuntime(t *testing.T) {
	var lines []string
	rec := recordingLogger{fields: make(map[string]interface{}), lines: &lines}

	log := newAppLogger(rec)
	log.WithField("user_id", "u1").Info("cards played")
	log.Warn("illegal play rejected")
	log.Debug("turn opened")

	want := []string{"info:cards played", "warn:illegal play rejected", "debug:turn opened"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines = %v, want %v", lines, want)
		}
	}
	if rec.fields["component"] != "app" || rec.fields["user_id"] != "u1" {
		t.Fatalf("fields = %v", rec.fields)
	}
	if _, ok := log.(*logrus.Entry); !ok {
		t.Fatalf("app logger is %T, want *logrus.Entry", log)
	}
}

// fakeNakama implements the parts of runtime.NakamaModule the RPCs use.
type fakeNakama struct {
	runtime.NakamaModule
	matches []*api.Match
	query   string
	created int
}

func (f *fakeNakama) MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error) {
	f.query = query
	return f.matches, nil
}

func (f *fakeNakama) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	f.created++
	return "new-match." + module, nil
}

func TestRpcFindMatch(t *testing.T) {
	nk := &fakeNakama{}
	out, err := RpcFindMatch(context.Background(), noopLogger{}, nil, nk, "")
	if err != nil {
		t.Fatalf("RpcFindMatch: %v", err)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("response %s: %v", out, err)
	}
	if resp["match_id"] != "new-match."+MatchNameDaifugo || resp["is_new"] != true || nk.created != 1 {
		t.Fatalf("response = %v", resp)
	}
	if nk.query != "+label.open:>=1 +label.phase:lobby" {
		t.Fatalf("query = %q", nk.query)
	}

	nk.matches = []*api.Match{{MatchId: "existing"}}
	out, err = RpcFindMatch(context.Background(), noopLogger{}, nil, nk, "")
	if err != nil {
		t.Fatalf("RpcFindMatch: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("response %s: %v", out, err)
	}
	if resp["match_id"] != "existing" || resp["is_new"] != false || nk.created != 1 {
		t.Fatalf("response = %v", resp)
	}
}

// fakeInitializer records RPC registrations.
type fakeInitializer struct {
	runtime.Initializer
	rpcs map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)
}

func (f *fakeInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	f.rpcs[id] = fn
	return nil
}

func TestRegisterRPCs(t *testing.T) {
	initializer := &fakeInitializer{rpcs: make(map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error))}
	if err := RegisterRPCs(initializer); err != nil {
		t.Fatalf("RegisterRPCs: %v", err)
	}
	fn, ok := initializer.rpcs[RpcIDFindMatch]
	if !ok || RpcIDFindMatch != "find_match" {
		t.Fatalf("find_match not registered: %v", initializer.rpcs)
	}

	nk := &fakeNakama{matches: []*api.Match{{MatchId: "existing"}}}
	out, err := fn(context.Background(), noopLogger{}, nil, nk, "")
	if err != nil {
		t.Fatalf("registered handler: %v", err)
	}
	if !strings.Contains(out, "existing") {
		t.Fatalf("registered handler returned %s", out)
	}
}
