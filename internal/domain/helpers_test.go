package domain

import (
	"reflect"
	"testing"
)

func TestLowestAvailableSeat(t *testing.T) {
	tests := []struct {
		name  string
		seats [MaxSeats]string
		want  int
	}{
		{name: "all empty", seats: [MaxSeats]string{"", "", "", ""}, want: 0},
		{name: "first taken", seats: [MaxSeats]string{"u1", "", "", ""}, want: 1},
		{name: "gap reused", seats: [MaxSeats]string{"u1", "", "u3", ""}, want: 1},
		{name: "full", seats: [MaxSeats]string{"u1", "u2", "u3", "u4"}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowestAvailableSeat(&tt.seats); got != tt.want {
				t.Fatalf("LowestAvailableSeat() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{
		{Suit: SuitSpades, Rank: 3},
		{Suit: SuitHearts, Rank: 4},
		Joker,
		{Suit: SuitSpades, Rank: 6},
	}
	played := []Card{
		{Suit: SuitHearts, Rank: 4},
		Joker,
	}

	got := RemoveCards(hand, played)
	want := []Card{{Suit: SuitSpades, Rank: 3}, {Suit: SuitSpades, Rank: 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RemoveCards() = %v, want %v", got, want)
	}
	if len(hand) != 4 {
		t.Fatalf("RemoveCards modified its input: %v", hand)
	}
}

func TestCountPlayersWithCards(t *testing.T) {
	game := &Game{
		Players: map[string]*Player{
			"a": {Hand: Hand{{Suit: SuitSpades, Rank: 3}}},
			"b": {Hand: Hand{}},
			"c": {Hand: Hand{{Suit: SuitHearts, Rank: 4}}, Finished: true},
		},
	}
	if got := CountPlayersWithCards(game); got != 1 {
		t.Fatalf("CountPlayersWithCards() = %d, want 1", got)
	}
}

func TestActivePlayersAndResetPasses(t *testing.T) {
	game := &Game{
		Order: []string{"a", "b", "c"},
		Players: map[string]*Player{
			"a": {UserID: "a", HasPassed: true},
			"b": {UserID: "b", Finished: true},
			"c": {UserID: "c", HasPassed: true},
		},
	}
	if got := game.ActivePlayers(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("ActivePlayers() = %v", got)
	}
	game.ResetPasses()
	for id, pl := range game.Players {
		if pl.HasPassed {
			t.Fatalf("%s still marked as passed", id)
		}
	}
}
