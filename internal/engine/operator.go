package engine

import "strings"

// runOperatorMotion resolves the motion from the current cursor, then
// applies the operator to the normalized span between the pre- and
// post-motion positions.
func (e *Engine) runOperatorMotion(op Operator, motion MotionKind) {
	start := e.buf.CursorLocation()
	e.applyMotion(motion)
	end := e.buf.CursorLocation()
	start, end = NormalizeSpan(start, end)
	e.applySpan(op, start, end)
}

// runLineOperator applies a doubled operator (dd/cc/yy) to the current
// line, extended to include the trailing line break unless it is the
// last line of the document.
func (e *Engine) runLineOperator(op Operator) {
	row := e.buf.CursorLocation().Row
	e.buf.CursorLineStart()
	start := e.buf.CursorLocation()
	e.buf.CursorLineEnd()
	if row < e.buf.LineCount()-1 {
		e.buf.CursorRight() // wraps past the line break
	}
	end := e.buf.CursorLocation()
	e.applySpan(op, start, end)
}

// applySpan executes an operator over [start, end). Delete and change
// save the removed text to the register; yank copies without mutating.
// The cursor ends at the span start in every case.
func (e *Engine) applySpan(op Operator, start, end Position) {
	e.buf.SetSelection(start, end)
	text := e.buf.SelectedText()

	switch op {
	case OpYank:
		e.register = text
		e.buf.SetSelection(start, start)
		e.buf.MoveCursor(start)
	case OpDelete:
		e.register = text
		e.buf.Delete(start, end)
	case OpChange:
		e.register = text
		e.buf.Delete(start, end)
		e.setMode(ModeInsert)
	}
}

// pasteAfter inserts the register after the cursor (p). A register ending
// in a line break came from a line operator and pastes as a new line
// below the cursor line. Empty register is a no-op.
func (e *Engine) pasteAfter() {
	if e.register == "" {
		return
	}
	loc := e.buf.CursorLocation()
	if strings.HasSuffix(e.register, "\n") {
		e.buf.CursorLineEnd()
		e.buf.Insert("\n" + strings.TrimSuffix(e.register, "\n"))
		e.buf.MoveCursor(Position{Row: loc.Row + 1, Col: 0})
		return
	}
	col := min(loc.Col+1, e.buf.LineLength(loc.Row))
	e.buf.MoveCursor(Position{Row: loc.Row, Col: col})
	e.buf.Insert(e.register)
}

// pasteBefore inserts the register at the cursor (P), or as a new line
// above the cursor line for line-wise registers.
func (e *Engine) pasteBefore() {
	if e.register == "" {
		return
	}
	if strings.HasSuffix(e.register, "\n") {
		loc := e.buf.CursorLocation()
		e.buf.MoveCursor(Position{Row: loc.Row, Col: 0})
		e.buf.Insert(e.register)
		e.buf.MoveCursor(Position{Row: loc.Row, Col: 0})
		return
	}
	e.buf.Insert(e.register)
}
