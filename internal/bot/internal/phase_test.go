package internal

import (
	"testing"

	"daifugo/internal/domain"
)

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name    string
		players map[string]*domain.Player
		want    GamePhase
	}{
		{
			name: "opening",
			players: map[string]*domain.Player{
				"p1": {Seat: 1, Hand: make(domain.Hand, 13)},
				"p2": {Seat: 2, Hand: make(domain.Hand, 14)},
			},
			want: PhaseOpening,
		},
		{
			name: "mid",
			players: map[string]*domain.Player{
				"p1": {Seat: 1, Hand: make(domain.Hand, 8)},
				"p2": {Seat: 2, Hand: make(domain.Hand, 7)},
			},
			want: PhaseMid,
		},
		{
			name: "short hand",
			players: map[string]*domain.Player{
				"p1": {Seat: 1, Hand: make(domain.Hand, 5)},
				"p2": {Seat: 2, Hand: make(domain.Hand, 12)},
			},
			want: PhaseEnd,
		},
		{
			name: "someone finished",
			players: map[string]*domain.Player{
				"p1": {Seat: 1, Finished: true},
				"p2": {Seat: 2, Hand: make(domain.Hand, 12)},
				"p3": {Seat: 3, Hand: make(domain.Hand, 12)},
			},
			want: PhaseEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPhase(&domain.Game{Players: tt.players}); got != tt.want {
				t.Fatalf("DetectPhase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectPhase_NilGame(t *testing.T) {
	if got := DetectPhase(nil); got != PhaseMid {
		t.Fatalf("DetectPhase(nil) = %v, want %v", got, PhaseMid)
	}
}
