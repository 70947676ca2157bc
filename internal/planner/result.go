package planner

// Selectability is the outcome of asking whether a hand index may join the
// current selection.
type Selectability int

const (
	Selectable Selectability = iota
	AlreadySelected
	NotSelectable
)

func (s Selectability) String() string {
	switch s {
	case Selectable:
		return "selectable"
	case AlreadySelected:
		return "already_selected"
	default:
		return "not_selectable"
	}
}

// SelectResult is the outcome of Select.
type SelectResult int

const (
	SelectSuccess SelectResult = iota
	SelectAlreadySelected
	SelectNotSelectable
)

func (r SelectResult) String() string {
	switch r {
	case SelectSuccess:
		return "success"
	case SelectAlreadySelected:
		return "already_selected"
	default:
		return "not_selectable"
	}
}

// DeselectResult is the outcome of Deselect.
type DeselectResult int

const (
	DeselectSuccess DeselectResult = iota
	AlreadyDeselected
	NotDeselectable
)

func (r DeselectResult) String() string {
	switch r {
	case DeselectSuccess:
		return "success"
	case AlreadyDeselected:
		return "already_deselected"
	default:
		return "not_deselectable"
	}
}
