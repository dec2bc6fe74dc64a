package engine

// Position is a buffer location. Col is a grapheme index within the row,
// ranging from 0 to the line's grapheme count inclusive (a gap position).
type Position struct {
	Row int
	Col int
}

// Before reports whether p orders strictly before o.
func (p Position) Before(o Position) bool {
	return p.Row < o.Row || (p.Row == o.Row && p.Col < o.Col)
}

// NormalizeSpan orders two positions so start <= end.
func NormalizeSpan(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// Buffer is the narrow contract the engine consumes. The host supplies the
// implementation; the engine never assumes anything about storage and adds
// no boundary logic of its own. Cursor primitives are expected to clamp,
// and may wrap across lines as the textbuffer package does.
//
// Delete and SetSelection spans are half-open: [start, end). A line break
// counts as a single position at the end of its line.
type Buffer interface {
	// CursorLocation returns the current cursor position.
	CursorLocation() Position
	// MoveCursor moves the cursor, clamping to valid positions.
	MoveCursor(pos Position)

	// DocumentLine returns the text of the given row, without line break.
	DocumentLine(row int) string
	// LineLength returns the grapheme count of the given row.
	LineLength(row int) int
	// LineCount returns the number of lines in the document.
	LineCount() int
	// DocumentEnd returns the position just past the last character.
	DocumentEnd() Position

	// Primitive cursor motions.
	CursorLeft()
	CursorRight()
	CursorUp()
	CursorDown()
	CursorWordRight()
	CursorWordLeft()
	CursorLineStart()
	CursorLineEnd()

	// Insert inserts text at the cursor, leaving the cursor after it.
	Insert(text string)
	// Delete removes the half-open span [start, end).
	Delete(start, end Position)
	// DeleteLeft removes the character before the cursor.
	DeleteLeft()
	// DeleteRight removes the character under the cursor.
	DeleteRight()
	// DeleteToEndOfLine removes from the cursor to the end of the line.
	DeleteToEndOfLine()
	// DeleteLine removes the current line entirely.
	DeleteLine()

	// Selection returns the current (anchor, active) selection, unordered.
	Selection() (start, end Position)
	// SetSelection sets the (anchor, active) selection.
	SetSelection(start, end Position)
	// SelectedText returns the text covered by the selection span.
	SelectedText() string

	// FullText returns the whole document joined with "\n".
	FullText() string

	Undo()
	Redo()
}
