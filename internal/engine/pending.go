package engine

import "strconv"

// Operator is a pending delete/change/yank awaiting a motion or doubling.
type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
)

// String returns the operator's trigger key, or "" for OpNone.
func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "d"
	case OpChange:
		return "c"
	case OpYank:
		return "y"
	default:
		return ""
	}
}

// CharSearch identifies an awaited-character motion or replacement.
// The next literal character typed completes it.
type CharSearch int

const (
	SearchNone CharSearch = iota
	// SearchFindForward lands on the target character (f).
	SearchFindForward
	// SearchTillForward lands one position before the target (t).
	SearchTillForward
	// SearchFindBackward lands on the target character, scanning left (F).
	SearchFindBackward
	// SearchTillBackward lands one position after the target, scanning left (T).
	SearchTillBackward
	// SearchReplace overwrites the character under the cursor (r).
	SearchReplace
)

// Pending holds all transient composition state between key presses.
// Every dispatch that completes, cancels, or no-ops a command must go
// through Clear, so no stale composition survives a command.
type Pending struct {
	// Operator set by d/c/y, awaiting a motion or a doubling key.
	Operator Operator
	// Count is the accumulated digit string; empty means multiplier 1.
	// "0" only appends when Count is already non-empty; a leading 0 is
	// the move-to-line-start motion instead.
	Count string
	// Search is the awaited-character motion set by f/F/t/T/r.
	Search CharSearch
	// AwaitG is set after a bare g; only a second g completes it.
	AwaitG bool
}

// Clear resets all composition state. The single exit point for every
// completed, cancelled, or no-op command.
func (p *Pending) Clear() {
	p.Operator = OpNone
	p.Count = ""
	p.Search = SearchNone
	p.AwaitG = false
}

// IsEmpty reports whether no composition is in progress.
func (p Pending) IsEmpty() bool {
	return p.Operator == OpNone && p.Count == "" && p.Search == SearchNone && !p.AwaitG
}

// CountValue returns the accumulated count as an int, defaulting to 1.
func (p Pending) CountValue() int {
	if p.Count == "" {
		return 1
	}
	n, err := strconv.Atoi(p.Count)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// String renders the in-progress composition for status display,
// e.g. "12d" while awaiting the motion of a counted delete.
func (p Pending) String() string {
	s := p.Count + p.Operator.String()
	switch p.Search {
	case SearchFindForward:
		s += "f"
	case SearchTillForward:
		s += "t"
	case SearchFindBackward:
		s += "F"
	case SearchTillBackward:
		s += "T"
	case SearchReplace:
		s += "r"
	}
	if p.AwaitG {
		s += "g"
	}
	return s
}
