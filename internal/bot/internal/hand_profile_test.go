package internal

import "testing"

func TestProfileHand_CountsCombos(t *testing.T) {
	hand := mustHand(t, "3S,4S,5S,8S,8D,JS,JD,JH,AS,AD,AH,AC,2H,JK")

	profile := ProfileHand(hand, false)

	if profile.TotalCards != 14 {
		t.Fatalf("TotalCards = %d, want 14", profile.TotalCards)
	}
	if profile.Straights != 1 || profile.StraightCards != 3 || profile.MaxStraightLen != 3 {
		t.Fatalf("Straights = %d (cards %d, max %d), want 1 straight of 3",
			profile.Straights, profile.StraightCards, profile.MaxStraightLen)
	}
	if profile.Pairs != 1 {
		t.Fatalf("Pairs = %d, want 1", profile.Pairs)
	}
	if profile.Triples != 1 {
		t.Fatalf("Triples = %d, want 1", profile.Triples)
	}
	if profile.Quads != 1 {
		t.Fatalf("Quads = %d, want 1", profile.Quads)
	}
	if profile.Singles != 1 {
		t.Fatalf("Singles = %d, want 1", profile.Singles)
	}
	if profile.Jokers != 1 || profile.TopCards != 1 {
		t.Fatalf("Jokers = %d, TopCards = %d, want 1 and 1", profile.Jokers, profile.TopCards)
	}
}

func TestProfileHand_StraightsNeedOneSuit(t *testing.T) {
	profile := ProfileHand(mustHand(t, "6S,7H,8S"), false)
	if profile.Straights != 0 || profile.Singles != 3 {
		t.Fatalf("Straights = %d, Singles = %d, want 0 and 3", profile.Straights, profile.Singles)
	}

	profile = ProfileHand(mustHand(t, "QD,KD,AD,2D"), false)
	if profile.MaxStraightLen != 4 {
		t.Fatalf("MaxStraightLen = %d, want 4", profile.MaxStraightLen)
	}
}

func TestProfileHand_InvertedTopCards(t *testing.T) {
	profile := ProfileHand(mustHand(t, "3S,3H,2D"), true)
	if profile.TopCards != 2 {
		t.Fatalf("TopCards = %d, want 2", profile.TopCards)
	}
}
