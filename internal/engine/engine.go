package engine

import (
	"context"

	"github.com/zjrosen/vimkit/internal/pubsub"
)

// Engine is the modal key grammar state machine for one input widget.
// It is single-threaded: each HandleKey call runs to completion, including
// buffer mutation, before the next key is dispatched. One engine instance
// owns its mode state exclusively; no locking.
type Engine struct {
	buf      Buffer
	mode     Mode
	pending  Pending
	last     LastChange
	register string

	transitions   *pubsub.Broker[ModeTransition]
	onModeChanged func(Mode)
}

// New creates an engine over the given buffer, starting in Insert mode.
func New(buf Buffer) *Engine {
	return &Engine{
		buf:         buf,
		mode:        ModeInsert,
		transitions: pubsub.NewBroker[ModeTransition](),
	}
}

// Close shuts down the transition broker.
func (e *Engine) Close() {
	e.transitions.Close()
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Pending returns a copy of the in-progress composition state.
func (e *Engine) Pending() Pending {
	return e.pending
}

// Register returns the contents of the yank register.
func (e *Engine) Register() string {
	return e.register
}

// Transitions returns a channel of mode-change events. The channel is
// closed when ctx is cancelled or the engine is closed.
func (e *Engine) Transitions(ctx context.Context) <-chan pubsub.Event[ModeTransition] {
	return e.transitions.Subscribe(ctx)
}

// SetModeChangedFunc registers a callback invoked with the new mode on
// every real transition, for hosts that prefer a callback over the broker.
// Never invoked for self-transitions.
func (e *Engine) SetModeChangedFunc(fn func(Mode)) {
	e.onModeChanged = fn
}

// SetMode forces the mode directly, publishing the transition like any
// other. Hosts use it to honor a configured starting mode or to drop out
// of a modal state on blur.
func (e *Engine) SetMode(to Mode) {
	e.setMode(to)
}

// ClearPending drops any in-progress composition.
func (e *Engine) ClearPending() {
	e.pending.Clear()
}

// HandleKey dispatches one key event to the current mode's handler.
// It returns true if the key was fully handled; false only in Insert mode
// for keys other than Escape, in which case the host performs its default
// text insertion.
func (e *Engine) HandleKey(k Key) bool {
	switch e.mode {
	case ModeInsert:
		return e.handleInsertKey(k)
	case ModeVisual:
		return e.handleVisualKey(k)
	case ModeNormal:
		return e.handleNormalKey(k)
	default:
		return false
	}
}

// handleInsertKey intercepts only Escape; everything else falls through to
// the host's default insertion handling.
func (e *Engine) handleInsertKey(k Key) bool {
	if k.Kind != KeyEscape {
		return false
	}
	e.setMode(ModeNormal)
	e.pending.Clear()
	// Step back one column, the post-insert cursor convention.
	loc := e.buf.CursorLocation()
	if loc.Col > 0 {
		e.buf.MoveCursor(Position{Row: loc.Row, Col: loc.Col - 1})
	}
	return true
}

// setMode transitions the mode and notifies subscribers. A no-op
// self-transition publishes nothing.
func (e *Engine) setMode(to Mode) {
	if e.mode == to {
		return
	}
	from := e.mode
	e.mode = to
	e.transitions.Publish(pubsub.ChangedEvent, ModeTransition{From: from, To: to})
	if e.onModeChanged != nil {
		e.onModeChanged(to)
	}
}

// repeat runs a motion or primitive edit count times, then leaves the
// count for the caller to clear with the rest of the pending state.
func (e *Engine) repeat(fn func()) {
	n := e.pending.CountValue()
	for i := 0; i < n; i++ {
		fn()
	}
}
