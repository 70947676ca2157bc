package domain

// DiscardHistory is the log of committed plays for the current trick. It is
// seeded with the null play so Last is always defined.
type DiscardHistory struct {
	plays []PlayGroup
}

// NewDiscardHistory returns a history holding only the null play.
func NewDiscardHistory() *DiscardHistory {
	return &DiscardHistory{plays: []PlayGroup{NullPlayGroup}}
}

// Push appends a committed play.
func (h *DiscardHistory) Push(g PlayGroup) {
	h.plays = append(h.plays, g)
}

// Last returns the most recent play, or the null play.
func (h *DiscardHistory) Last() PlayGroup {
	return h.at(1)
}

// SecondToLast returns the play before Last, or the null play.
func (h *DiscardHistory) SecondToLast() PlayGroup {
	return h.at(2)
}

// Clear sweeps the trick, leaving only the null play.
func (h *DiscardHistory) Clear() {
	h.plays = []PlayGroup{NullPlayGroup}
}

// Len returns the number of committed plays, excluding the seed.
func (h *DiscardHistory) Len() int {
	if len(h.plays) == 0 {
		return 0
	}
	return len(h.plays) - 1
}

func (h *DiscardHistory) at(fromEnd int) PlayGroup {
	if h == nil || len(h.plays) < fromEnd {
		return NullPlayGroup
	}
	return h.plays[len(h.plays)-fromEnd]
}
