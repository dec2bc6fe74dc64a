// Package textbuffer is an in-memory, grapheme-indexed text store
// implementing the buffer contract the modal engine consumes. Lines are
// stored without their breaks; columns are grapheme indices ranging from
// 0 to the line's grapheme count inclusive. Undo and redo restore full
// document snapshots taken before each mutation.
package textbuffer

import (
	"strings"

	"github.com/zjrosen/vimkit/internal/engine"
)

// Buffer holds document content, a cursor, and a selection span.
// Not safe for concurrent use.
type Buffer struct {
	lines  []string
	cursor engine.Position
	anchor engine.Position
	active engine.Position

	undo []snapshot
	redo []snapshot
}

type snapshot struct {
	lines  []string
	cursor engine.Position
}

// New creates a buffer from the given text, cursor at the origin.
// Empty text yields a single empty line.
func New(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// CursorLocation returns the current cursor position.
func (b *Buffer) CursorLocation() engine.Position {
	return b.cursor
}

// MoveCursor moves the cursor, clamping to valid positions.
func (b *Buffer) MoveCursor(pos engine.Position) {
	b.cursor = b.clamp(pos)
}

// DocumentLine returns the text of the given row without its line break.
func (b *Buffer) DocumentLine(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLength returns the grapheme count of the given row.
func (b *Buffer) LineLength(row int) int {
	return graphemeCount(b.DocumentLine(row))
}

// LineCount returns the number of lines in the document.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// DocumentEnd returns the position just past the last character.
func (b *Buffer) DocumentEnd() engine.Position {
	row := len(b.lines) - 1
	return engine.Position{Row: row, Col: graphemeCount(b.lines[row])}
}

// CursorLeft moves one column left, wrapping to the end of the previous
// line at column 0.
func (b *Buffer) CursorLeft() {
	switch {
	case b.cursor.Col > 0:
		b.cursor.Col--
	case b.cursor.Row > 0:
		b.cursor.Row--
		b.cursor.Col = graphemeCount(b.lines[b.cursor.Row])
	}
}

// CursorRight moves one column right, wrapping to the start of the next
// line past the end of the current one. The wrap is what lets a span
// built from cursor motions cover a line break.
func (b *Buffer) CursorRight() {
	switch {
	case b.cursor.Col < graphemeCount(b.lines[b.cursor.Row]):
		b.cursor.Col++
	case b.cursor.Row < len(b.lines)-1:
		b.cursor.Row++
		b.cursor.Col = 0
	}
}

// CursorUp moves one row up, clamping the column to the new line.
func (b *Buffer) CursorUp() {
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor = b.clamp(b.cursor)
	}
}

// CursorDown moves one row down, clamping the column to the new line.
func (b *Buffer) CursorDown() {
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.cursor = b.clamp(b.cursor)
	}
}

// CursorWordRight moves to the start of the next word, crossing to the
// next line when the current line has no further word. On the last line
// it stops at the line end.
func (b *Buffer) CursorWordRight() {
	line := b.lines[b.cursor.Row]
	n := graphemeCount(line)
	if b.cursor.Col < n {
		if next := nextWordStart(line, b.cursor.Col); next > b.cursor.Col && next < n {
			b.cursor.Col = next
			return
		}
	}
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.cursor.Col = firstWordStart(b.lines[b.cursor.Row])
		if b.cursor.Col >= graphemeCount(b.lines[b.cursor.Row]) {
			b.cursor.Col = 0
		}
	} else {
		b.cursor.Col = n
	}
}

// CursorWordLeft moves to the start of the previous word, crossing to
// the previous line from the start of the current one.
func (b *Buffer) CursorWordLeft() {
	if b.cursor.Col > 0 {
		if prev := prevWordStart(b.lines[b.cursor.Row], b.cursor.Col); prev < b.cursor.Col {
			b.cursor.Col = prev
			return
		}
	}
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor.Col = lastWordStart(b.lines[b.cursor.Row])
	}
}

// CursorLineStart moves to column 0.
func (b *Buffer) CursorLineStart() {
	b.cursor.Col = 0
}

// CursorLineEnd moves to the gap position after the last character.
func (b *Buffer) CursorLineEnd() {
	b.cursor.Col = graphemeCount(b.lines[b.cursor.Row])
}

// Insert inserts text at the cursor, leaving the cursor after it.
// The text may contain line breaks.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	b.pushUndo()

	line := b.lines[b.cursor.Row]
	at := byteOffset(line, b.cursor.Col)
	segs := strings.Split(line[:at]+text+line[at:], "\n")

	merged := make([]string, 0, len(b.lines)+len(segs)-1)
	merged = append(merged, b.lines[:b.cursor.Row]...)
	merged = append(merged, segs...)
	merged = append(merged, b.lines[b.cursor.Row+1:]...)
	b.lines = merged

	inserted := line[:at] + text
	if idx := strings.LastIndex(inserted, "\n"); idx >= 0 {
		b.cursor.Row += strings.Count(inserted, "\n")
		b.cursor.Col = graphemeCount(inserted[idx+1:])
	} else {
		b.cursor.Col += graphemeCount(text)
	}
}

// Delete removes the half-open span [start, end) and leaves the cursor
// at the span start.
func (b *Buffer) Delete(start, end engine.Position) {
	start, end = engine.NormalizeSpan(start, end)
	start = b.clamp(start)
	end = b.clamp(end)
	if start == end {
		return
	}
	b.pushUndo()

	head := b.lines[start.Row]
	tail := b.lines[end.Row]
	joined := head[:byteOffset(head, start.Col)] + tail[byteOffset(tail, end.Col):]

	merged := make([]string, 0, len(b.lines)-(end.Row-start.Row))
	merged = append(merged, b.lines[:start.Row]...)
	merged = append(merged, joined)
	merged = append(merged, b.lines[end.Row+1:]...)
	b.lines = merged
	b.cursor = b.clamp(start)
}

// DeleteLeft removes the character before the cursor, joining with the
// previous line at column 0.
func (b *Buffer) DeleteLeft() {
	cur := b.cursor
	switch {
	case cur.Col > 0:
		b.Delete(engine.Position{Row: cur.Row, Col: cur.Col - 1}, cur)
	case cur.Row > 0:
		b.Delete(engine.Position{Row: cur.Row - 1, Col: graphemeCount(b.lines[cur.Row-1])}, cur)
	}
}

// DeleteRight removes the character under the cursor, joining with the
// next line past the end of the current one.
func (b *Buffer) DeleteRight() {
	cur := b.cursor
	switch {
	case cur.Col < graphemeCount(b.lines[cur.Row]):
		b.Delete(cur, engine.Position{Row: cur.Row, Col: cur.Col + 1})
	case cur.Row < len(b.lines)-1:
		b.Delete(cur, engine.Position{Row: cur.Row + 1, Col: 0})
	}
}

// DeleteToEndOfLine removes from the cursor to the end of the line.
func (b *Buffer) DeleteToEndOfLine() {
	cur := b.cursor
	b.Delete(cur, engine.Position{Row: cur.Row, Col: graphemeCount(b.lines[cur.Row])})
}

// DeleteLine removes the current line and its trailing break. The last
// line keeps its slot and is emptied instead.
func (b *Buffer) DeleteLine() {
	row := b.cursor.Row
	start := engine.Position{Row: row, Col: 0}
	if row < len(b.lines)-1 {
		b.Delete(start, engine.Position{Row: row + 1, Col: 0})
		return
	}
	b.Delete(start, engine.Position{Row: row, Col: graphemeCount(b.lines[row])})
}

// SetText replaces the whole document as one undoable mutation and moves
// the cursor to the origin.
func (b *Buffer) SetText(text string) {
	b.pushUndo()
	b.lines = strings.Split(text, "\n")
	b.cursor = engine.Position{}
	b.anchor = engine.Position{}
	b.active = engine.Position{}
}

// Selection returns the current (anchor, active) span, unordered.
func (b *Buffer) Selection() (start, end engine.Position) {
	return b.anchor, b.active
}

// SetSelection sets the (anchor, active) span, clamping both ends.
func (b *Buffer) SetSelection(start, end engine.Position) {
	b.anchor = b.clamp(start)
	b.active = b.clamp(end)
}

// SelectedText returns the text covered by the selection span, with
// crossed line breaks rendered as "\n".
func (b *Buffer) SelectedText() string {
	start, end := engine.NormalizeSpan(b.anchor, b.active)
	if start == end {
		return ""
	}
	if start.Row == end.Row {
		return sliceGraphemes(b.lines[start.Row], start.Col, end.Col)
	}

	var out strings.Builder
	head := b.lines[start.Row]
	out.WriteString(head[byteOffset(head, start.Col):])
	for row := start.Row + 1; row < end.Row; row++ {
		out.WriteString("\n")
		out.WriteString(b.lines[row])
	}
	out.WriteString("\n")
	out.WriteString(sliceGraphemes(b.lines[end.Row], 0, end.Col))
	return out.String()
}

// FullText returns the whole document joined with "\n".
func (b *Buffer) FullText() string {
	return strings.Join(b.lines, "\n")
}

// Undo restores the document and cursor to their state before the most
// recent mutation.
func (b *Buffer) Undo() {
	if len(b.undo) == 0 {
		return
	}
	b.redo = append(b.redo, b.capture())
	s := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.restore(s)
}

// Redo reverses the most recent Undo. Any new mutation discards the
// redo history.
func (b *Buffer) Redo() {
	if len(b.redo) == 0 {
		return
	}
	b.undo = append(b.undo, b.capture())
	s := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.restore(s)
}

func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, b.capture())
	b.redo = nil
}

func (b *Buffer) capture() snapshot {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = s.lines
	b.cursor = s.cursor
	b.anchor = b.clamp(b.anchor)
	b.active = b.clamp(b.active)
}

func (b *Buffer) clamp(pos engine.Position) engine.Position {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if pos.Row > len(b.lines)-1 {
		pos.Row = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := graphemeCount(b.lines[pos.Row]); pos.Col > n {
		pos.Col = n
	}
	return pos
}
