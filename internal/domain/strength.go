package domain

// Strength ladder values. Ranks 3..13 keep their own value, Ace and 2 sit
// above King, and the joker is an out-of-band maximum unaffected by inversion.
const (
	StrengthAce   = 14
	StrengthTwo   = 15
	StrengthJoker = 16

	minLadderStrength = 3
)

// Rank constants for the ranks with special ladder positions.
const (
	RankJoker = 0
	RankAce   = 1
	RankTwo   = 2
	RankThree = 3
	RankKing  = 13
)

// Direction is a physical step along the strength ladder, independent of inversion.
type Direction int

const (
	// Upward moves toward higher strength values (3 -> 4 -> ... -> K -> A -> 2).
	Upward Direction = iota
	// Downward moves toward lower strength values.
	Downward
)

// StrengthOf maps a rank to its position on the strength ladder.
func StrengthOf(rank int) int {
	switch rank {
	case RankJoker:
		return StrengthJoker
	case RankAce:
		return StrengthAce
	case RankTwo:
		return StrengthTwo
	default:
		return rank
	}
}

// RankOf is the inverse of StrengthOf.
func RankOf(strength int) int {
	switch strength {
	case StrengthJoker:
		return RankJoker
	case StrengthAce:
		return RankAce
	case StrengthTwo:
		return RankTwo
	default:
		return strength
	}
}

// IsStrongEnough reports whether a play of strength next beats a play of strength last.
// A joker-strength last play can never be beaten and a joker-strength next play beats anything.
func IsStrongEnough(last, next int, inverted bool) bool {
	if last == StrengthJoker {
		return false
	}
	if next == StrengthJoker {
		return true
	}
	if inverted {
		return next < last
	}
	return next > last
}

// StrongerRank returns whichever of a and b is stronger.
func StrongerRank(a, b int, inverted bool) int {
	if IsStrongEnough(StrengthOf(a), StrengthOf(b), inverted) {
		return b
	}
	return a
}

// WeakerRank returns whichever of a and b is weaker.
func WeakerRank(a, b int, inverted bool) int {
	if StrongerRank(a, b, inverted) == a {
		return b
	}
	return a
}

// Step moves rank one position along the ladder in the physical direction dir.
// ok is false for the joker and when the step would leave the 3..2 range.
func Step(rank int, dir Direction) (int, bool) {
	if rank == RankJoker {
		return 0, false
	}
	s := StrengthOf(rank)
	if dir == Upward {
		s++
	} else {
		s--
	}
	if s < minLadderStrength || s > StrengthTwo {
		return 0, false
	}
	return RankOf(s), true
}

// NextStrongerRank returns the rank one step stronger than rank. ok is false when
// the step falls off the ladder (strength 2 below the 3, or the joker slot 16 above
// the 2), and for the joker itself.
func NextStrongerRank(rank int, inverted bool) (int, bool) {
	return Step(rank, StrongerDirection(inverted))
}

// NextWeakerRank returns the rank one step weaker than rank, with the same
// boundaries as NextStrongerRank.
func NextWeakerRank(rank int, inverted bool) (int, bool) {
	return Step(rank, WeakerDirection(inverted))
}

// WeakestRank returns the weakest ordinary rank for the given inversion mode.
func WeakestRank(inverted bool) int {
	if inverted {
		return RankTwo
	}
	return RankThree
}

// StrongestRank returns the strongest ordinary rank for the given inversion mode.
func StrongestRank(inverted bool) int {
	if inverted {
		return RankThree
	}
	return RankTwo
}

// RanksBetween returns every rank from a to b inclusive, walking the strength
// ladder upward from the weaker end. Argument order does not matter.
func RanksBetween(a, b int) []int {
	lo, hi := StrengthOf(a), StrengthOf(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]int, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		out = append(out, RankOf(s))
	}
	return out
}

// StrongerDirection returns the physical direction that leads to stronger ranks.
func StrongerDirection(inverted bool) Direction {
	if inverted {
		return Downward
	}
	return Upward
}

// WeakerDirection returns the physical direction that leads to weaker ranks.
func WeakerDirection(inverted bool) Direction {
	if inverted {
		return Upward
	}
	return Downward
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Upward {
		return Downward
	}
	return Upward
}
