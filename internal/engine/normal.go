package engine

// handleNormalKey runs the Normal-mode grammar. Every key is consumed;
// unrecognized keys are absorbed as no-ops. Awaited-character state and a
// pending second g take priority over any other interpretation of the key,
// followed by count accumulation and operator composition.
func (e *Engine) handleNormalKey(k Key) bool {
	switch {
	case e.pending.AwaitG:
		if k.IsChar('g') {
			e.buf.MoveCursor(Position{Row: 0, Col: 0})
		}
		// Anything other than a second g cancels silently.
		e.pending.Clear()

	case e.pending.Search != SearchNone:
		search := e.pending.Search
		if k.Kind == KeyChar {
			if search == SearchReplace {
				e.replaceChar(k.Char)
			} else {
				e.resolveCharSearch(search, k.Char)
			}
		}
		e.pending.Clear()

	case k.Kind == KeyChar && k.Char >= '0' && k.Char <= '9' && (k.Char != '0' || e.pending.Count != ""):
		// A leading 0 is the line-start motion, not a count digit.
		e.pending.Count += string(k.Char)
		// Composition continues; nothing cleared.

	case e.pending.Operator != OpNone:
		e.handleOperatorPending(k)

	default:
		e.handleNormalCommand(k)
	}
	return true
}

// handleOperatorPending interprets the key following d/c/y: doubling runs
// the line operator, a motion key resolves the span, another operator key
// takes over the composition, and anything else cancels silently.
func (e *Engine) handleOperatorPending(k Key) {
	op := e.pending.Operator
	if k.Kind != KeyChar {
		e.pending.Clear()
		return
	}

	if next := operatorForChar(k.Char); next != OpNone {
		if next == op {
			e.runLineOperator(op)
			e.recordLineChange(op)
			e.pending.Clear()
			return
		}
		e.pending.Operator = next
		return
	}

	switch k.Char {
	case 'w':
		e.finishOperator(op, MotionWordRight)
	case 'b':
		e.finishOperator(op, MotionWordLeft)
	case '$':
		e.finishOperator(op, MotionLineEnd)
	case '0':
		e.finishOperator(op, MotionLineStart)
	default:
		e.pending.Clear()
	}
}

// finishOperator resolves an operator+motion pair and records it for
// repetition when it mutated the buffer.
func (e *Engine) finishOperator(op Operator, motion MotionKind) {
	e.runOperatorMotion(op, motion)
	if op == OpDelete || op == OpChange {
		e.last = LastChange{Kind: ChangeOperated, Op: op, Motion: motion}
	}
	e.pending.Clear()
}

// recordLineChange records a doubled line operator. Yank is navigationally
// neutral and never replayable.
func (e *Engine) recordLineChange(op Operator) {
	switch op {
	case OpDelete:
		e.last = LastChange{Kind: ChangeDeleteLine}
	case OpChange:
		e.last = LastChange{Kind: ChangeChangeLine}
	}
}

func operatorForChar(r rune) Operator {
	switch r {
	case 'd':
		return OpDelete
	case 'c':
		return OpChange
	case 'y':
		return OpYank
	default:
		return OpNone
	}
}

// handleNormalCommand runs the no-composition-in-progress part of the
// grammar: mode switches, navigation, operator and search starters,
// standalone edits, paste, undo/redo, and repeat.
func (e *Engine) handleNormalCommand(k Key) {
	switch k.Kind {
	case KeyEscape:
		e.pending.Clear()
		return
	case KeyLeft:
		e.repeat(e.buf.CursorLeft)
		e.pending.Clear()
		return
	case KeyRight:
		e.repeat(e.buf.CursorRight)
		e.pending.Clear()
		return
	case KeyUp:
		e.repeat(e.buf.CursorUp)
		e.pending.Clear()
		return
	case KeyDown:
		e.repeat(e.buf.CursorDown)
		e.pending.Clear()
		return
	case KeyCtrlR:
		e.buf.Redo()
		e.pending.Clear()
		return
	case KeyChar:
		// Handled below.
	default:
		e.pending.Clear()
		return
	}

	switch k.Char {
	// Mode switches.
	case 'i':
		e.setMode(ModeInsert)
	case 'I':
		e.buf.CursorLineStart()
		e.setMode(ModeInsert)
	case 'a':
		loc := e.buf.CursorLocation()
		if loc.Col < e.buf.LineLength(loc.Row) {
			e.buf.MoveCursor(Position{Row: loc.Row, Col: loc.Col + 1})
		}
		e.setMode(ModeInsert)
	case 'A':
		e.buf.CursorLineEnd()
		e.setMode(ModeInsert)
	case 'o':
		e.buf.CursorLineEnd()
		e.buf.Insert("\n")
		e.setMode(ModeInsert)
	case 'O':
		e.buf.CursorLineStart()
		e.buf.Insert("\n")
		e.buf.CursorUp()
		e.setMode(ModeInsert)
	case 'v':
		loc := e.buf.CursorLocation()
		e.buf.SetSelection(loc, loc)
		e.setMode(ModeVisual)

	// Navigation.
	case 'h':
		e.repeat(e.buf.CursorLeft)
	case 'l':
		e.repeat(e.buf.CursorRight)
	case 'j':
		e.repeat(e.buf.CursorDown)
	case 'k':
		e.repeat(e.buf.CursorUp)
	case 'w':
		e.repeat(e.buf.CursorWordRight)
	case 'b':
		e.repeat(e.buf.CursorWordLeft)
	case 'e':
		e.repeat(e.moveWordEnd)
	case '0':
		e.buf.CursorLineStart()
	case '$':
		e.buf.CursorLineEnd()
	case '^':
		e.moveFirstNonBlank()
	case 'G':
		e.buf.MoveCursor(e.buf.DocumentEnd())
	case 'g':
		e.pending.AwaitG = true
		return

	// Awaited-character starters.
	case 'f':
		e.pending.Search = SearchFindForward
		return
	case 't':
		e.pending.Search = SearchTillForward
		return
	case 'F':
		e.pending.Search = SearchFindBackward
		return
	case 'T':
		e.pending.Search = SearchTillBackward
		return
	case 'r':
		e.pending.Search = SearchReplace
		return

	// Operator starters.
	case 'd':
		e.pending.Operator = OpDelete
		return
	case 'c':
		e.pending.Operator = OpChange
		return
	case 'y':
		e.pending.Operator = OpYank
		return

	// Standalone edits.
	case 'x':
		e.repeat(e.buf.DeleteRight)
		e.last = LastChange{Kind: ChangeDeleteChar}
	case 'X':
		e.repeat(e.buf.DeleteLeft)
		e.last = LastChange{Kind: ChangeDeleteBack}
	case 'D':
		e.buf.DeleteToEndOfLine()
		e.last = LastChange{Kind: ChangeDeleteToLineEnd}
	case 'C':
		e.buf.DeleteToEndOfLine()
		e.setMode(ModeInsert)
		e.last = LastChange{Kind: ChangeChangeToLineEnd}
	case 's':
		e.buf.DeleteRight()
		e.setMode(ModeInsert)
		e.last = LastChange{Kind: ChangeSubstituteChar}
	case 'S':
		e.buf.CursorLineStart()
		e.buf.DeleteLine()
		e.setMode(ModeInsert)
		e.last = LastChange{Kind: ChangeSubstituteLine}
	case 'J':
		e.joinLines()

	// Paste. Deliberately not recorded: the single register makes a
	// repeated paste ambiguous after the next delete overwrites it.
	case 'p':
		e.pasteAfter()
	case 'P':
		e.pasteBefore()

	case 'u':
		e.buf.Undo()
	case '.':
		e.replayLastChange()
	}
	e.pending.Clear()
}

// replaceChar overwrites the character under the cursor without advancing.
func (e *Engine) replaceChar(r rune) {
	e.buf.DeleteRight()
	e.buf.Insert(string(r))
	loc := e.buf.CursorLocation()
	if loc.Col > 0 {
		e.buf.MoveCursor(Position{Row: loc.Row, Col: loc.Col - 1})
	}
}

// joinLines joins the current line with the next, separated by one space.
func (e *Engine) joinLines() {
	loc := e.buf.CursorLocation()
	if loc.Row >= e.buf.LineCount()-1 {
		return
	}
	e.buf.CursorLineEnd()
	e.buf.DeleteRight() // removes the line break
	e.buf.Insert(" ")
}
