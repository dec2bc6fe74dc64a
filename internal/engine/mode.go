// Package engine implements a vim-style modal key grammar over an external
// text buffer. It owns the mode state machine, pending command composition,
// motion resolution, operators, the yank register, and change repetition.
// The buffer itself (line storage, cursor, selection, undo) is consumed
// through the Buffer interface and never owned here.
package engine

// Mode represents the current editing mode.
type Mode int

const (
	// ModeInsert is the mode for inserting text. It is the initial mode.
	ModeInsert Mode = iota
	// ModeNormal is the default vim mode for navigation and commands.
	ModeNormal
	// ModeVisual is the mode for character-wise visual selection.
	ModeVisual
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeNormal:
		return "NORMAL"
	case ModeVisual:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}

// ModeTransition is published on the engine's event broker whenever the
// mode actually changes. Self-transitions are never published.
type ModeTransition struct {
	From Mode
	To   Mode
}
