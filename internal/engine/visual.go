package engine

// handleVisualKey runs the Visual-mode grammar. The anchor stays where it
// was when the mode was entered; motions move the active end only.
// Every key is consumed.
func (e *Engine) handleVisualKey(k Key) bool {
	if k.Kind == KeyEscape {
		start, _ := NormalizeSpan(e.buf.Selection())
		e.buf.SetSelection(start, start)
		e.buf.MoveCursor(start)
		e.setMode(ModeNormal)
		e.pending.Clear()
		return true
	}

	switch k.Kind {
	case KeyLeft:
		e.extendSelection(e.buf.CursorLeft)
	case KeyRight:
		e.extendSelection(e.buf.CursorRight)
	case KeyUp:
		e.extendSelection(e.buf.CursorUp)
	case KeyDown:
		e.extendSelection(e.buf.CursorDown)
	case KeyChar:
		switch k.Char {
		case 'h':
			e.extendSelection(e.buf.CursorLeft)
		case 'l':
			e.extendSelection(e.buf.CursorRight)
		case 'j':
			e.extendSelection(e.buf.CursorDown)
		case 'k':
			e.extendSelection(e.buf.CursorUp)
		case 'w':
			e.extendSelection(e.buf.CursorWordRight)
		case 'b':
			e.extendSelection(e.buf.CursorWordLeft)
		case '$':
			e.extendSelection(e.buf.CursorLineEnd)
		case '0':
			e.extendSelection(e.buf.CursorLineStart)
		case 'd', 'x':
			e.visualDelete(ModeNormal)
		case 'c':
			e.visualDelete(ModeInsert)
		case 'y':
			e.visualYank()
		}
	}
	e.pending.Clear()
	return true
}

// extendSelection moves the cursor and resets the selection to
// (anchor, new cursor).
func (e *Engine) extendSelection(fn func()) {
	anchor, _ := e.buf.Selection()
	fn()
	e.buf.SetSelection(anchor, e.buf.CursorLocation())
}

// visualSpan returns the normalized selection widened to include the
// character under the active end, the inclusive-cursor convention.
func (e *Engine) visualSpan() (start, end Position) {
	start, end = NormalizeSpan(e.buf.Selection())
	if end.Col < e.buf.LineLength(end.Row) {
		end.Col++
	}
	return start, end
}

// visualDelete removes the selection into the register and leaves the
// cursor at the span start in the given mode (Normal for d/x, Insert for c).
func (e *Engine) visualDelete(toMode Mode) {
	start, end := e.visualSpan()
	e.buf.SetSelection(start, end)
	e.register = e.buf.SelectedText()
	e.buf.Delete(start, end)
	e.buf.SetSelection(start, start)
	e.buf.MoveCursor(start)
	e.setMode(toMode)
}

// visualYank copies the selection into the register without mutating,
// collapses the selection, and returns to Normal mode at the span start.
func (e *Engine) visualYank() {
	start, end := e.visualSpan()
	e.buf.SetSelection(start, end)
	e.register = e.buf.SelectedText()
	e.buf.SetSelection(start, start)
	e.buf.MoveCursor(start)
	e.setMode(ModeNormal)
}
