package engine

// ChangeKind identifies the last buffer-mutating Normal-mode command, for
// the . repeat. Paste, J, r, and all Visual-mode operations are excluded:
// they are either navigationally ambiguous to replay or depend on a
// register the next change overwrites.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeDeleteChar
	ChangeDeleteBack
	ChangeDeleteToLineEnd
	ChangeChangeToLineEnd
	ChangeSubstituteChar
	ChangeSubstituteLine
	ChangeDeleteLine
	ChangeChangeLine
	ChangeOperated
)

// LastChange records a replayable change. Op and Motion are set only for
// ChangeOperated.
type LastChange struct {
	Kind   ChangeKind
	Op     Operator
	Motion MotionKind
}

// replayLastChange re-executes the recorded change at the current cursor.
// Replaying never re-records, so . after . repeats the original change.
func (e *Engine) replayLastChange() {
	switch e.last.Kind {
	case ChangeDeleteChar:
		e.buf.DeleteRight()
	case ChangeDeleteBack:
		e.buf.DeleteLeft()
	case ChangeDeleteToLineEnd:
		e.buf.DeleteToEndOfLine()
	case ChangeChangeToLineEnd:
		e.buf.DeleteToEndOfLine()
		e.setMode(ModeInsert)
	case ChangeSubstituteChar:
		e.buf.DeleteRight()
		e.setMode(ModeInsert)
	case ChangeSubstituteLine:
		e.buf.CursorLineStart()
		e.buf.DeleteLine()
		e.setMode(ModeInsert)
	case ChangeDeleteLine:
		e.runLineOperator(OpDelete)
	case ChangeChangeLine:
		e.runLineOperator(OpChange)
	case ChangeOperated:
		e.runOperatorMotion(e.last.Op, e.last.Motion)
	}
}
