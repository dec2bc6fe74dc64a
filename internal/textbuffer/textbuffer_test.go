package textbuffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/zjrosen/vimkit/internal/engine"
)

func pos(row, col int) engine.Position {
	return engine.Position{Row: row, Col: col}
}

func TestNew_SplitsLines(t *testing.T) {
	b := New("one\ntwo\nthree")
	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, "two", b.DocumentLine(1))
}

func TestNew_EmptyTextYieldsOneLine(t *testing.T) {
	b := New("")
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, 0, b.LineLength(0))
}

func TestFullText_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,10}(\n[a-z ]{0,10}){0,4}`).Draw(t, "text")
		assert.Equal(t, text, New(text).FullText())
	})
}

func TestMoveCursor_Clamps(t *testing.T) {
	b := New("ab\ncdef")

	b.MoveCursor(pos(5, 99))
	assert.Equal(t, pos(1, 4), b.CursorLocation())

	b.MoveCursor(pos(-1, -1))
	assert.Equal(t, pos(0, 0), b.CursorLocation())
}

func TestCursorRight_WrapsToNextLine(t *testing.T) {
	b := New("ab\ncd")
	b.MoveCursor(pos(0, 2))

	b.CursorRight()
	assert.Equal(t, pos(1, 0), b.CursorLocation())
}

func TestCursorLeft_WrapsToPreviousLineEnd(t *testing.T) {
	b := New("ab\ncd")
	b.MoveCursor(pos(1, 0))

	b.CursorLeft()
	assert.Equal(t, pos(0, 2), b.CursorLocation())
}

func TestCursorVertical_ClampsColumn(t *testing.T) {
	b := New("abcdef\nab")
	b.MoveCursor(pos(0, 5))

	b.CursorDown()
	assert.Equal(t, pos(1, 2), b.CursorLocation())

	b.CursorUp()
	assert.Equal(t, pos(0, 2), b.CursorLocation())
}

func TestCursorWordRight_WithinLine(t *testing.T) {
	b := New("one two three")

	b.CursorWordRight()
	assert.Equal(t, pos(0, 4), b.CursorLocation())

	b.CursorWordRight()
	assert.Equal(t, pos(0, 8), b.CursorLocation())
}

func TestCursorWordRight_PunctuationIsItsOwnWord(t *testing.T) {
	b := New("foo.bar")

	b.CursorWordRight()
	assert.Equal(t, pos(0, 3), b.CursorLocation())

	b.CursorWordRight()
	assert.Equal(t, pos(0, 4), b.CursorLocation())
}

func TestCursorWordRight_CrossesLines(t *testing.T) {
	b := New("one\n  two")
	b.MoveCursor(pos(0, 1))

	b.CursorWordRight()
	assert.Equal(t, pos(1, 2), b.CursorLocation())
}

func TestCursorWordRight_LastLineStopsAtEnd(t *testing.T) {
	b := New("one two")
	b.MoveCursor(pos(0, 4))

	b.CursorWordRight()
	assert.Equal(t, pos(0, 7), b.CursorLocation())
}

func TestCursorWordLeft_WithinLine(t *testing.T) {
	b := New("one two three")
	b.MoveCursor(pos(0, 8))

	b.CursorWordLeft()
	assert.Equal(t, pos(0, 4), b.CursorLocation())

	b.CursorWordLeft()
	assert.Equal(t, pos(0, 0), b.CursorLocation())
}

func TestCursorWordLeft_CrossesLines(t *testing.T) {
	b := New("one two\nthree")
	b.MoveCursor(pos(1, 0))

	b.CursorWordLeft()
	assert.Equal(t, pos(0, 4), b.CursorLocation())
}

func TestInsert_MidLine(t *testing.T) {
	b := New("held")
	b.MoveCursor(pos(0, 2))

	b.Insert("llo wor")
	assert.Equal(t, "hello world", b.FullText())
	assert.Equal(t, pos(0, 9), b.CursorLocation())
}

func TestInsert_LineBreakSplitsLine(t *testing.T) {
	b := New("oneTwo")
	b.MoveCursor(pos(0, 3))

	b.Insert("\n")
	assert.Equal(t, "one\nTwo", b.FullText())
	assert.Equal(t, pos(1, 0), b.CursorLocation())
}

func TestInsert_MultilineText(t *testing.T) {
	b := New("ab")
	b.MoveCursor(pos(0, 1))

	b.Insert("1\n2\n3")
	assert.Equal(t, "a1\n2\n3b", b.FullText())
	assert.Equal(t, pos(2, 1), b.CursorLocation())
}

func TestDelete_SameLineSpan(t *testing.T) {
	b := New("hello world")

	b.Delete(pos(0, 5), pos(0, 11))
	assert.Equal(t, "hello", b.FullText())
	assert.Equal(t, pos(0, 5), b.CursorLocation())
}

func TestDelete_AcrossLines(t *testing.T) {
	b := New("one\ntwo\nthree")

	b.Delete(pos(0, 2), pos(2, 3))
	assert.Equal(t, "onee", b.FullText())
	assert.Equal(t, pos(0, 2), b.CursorLocation())
}

func TestDelete_NormalizesReversedSpan(t *testing.T) {
	b := New("abcdef")

	b.Delete(pos(0, 4), pos(0, 1))
	assert.Equal(t, "aef", b.FullText())
}

func TestDeleteLeft_JoinsAtLineStart(t *testing.T) {
	b := New("one\ntwo")
	b.MoveCursor(pos(1, 0))

	b.DeleteLeft()
	assert.Equal(t, "onetwo", b.FullText())
	assert.Equal(t, pos(0, 3), b.CursorLocation())
}

func TestDeleteRight_JoinsAtLineEnd(t *testing.T) {
	b := New("one\ntwo")
	b.MoveCursor(pos(0, 3))

	b.DeleteRight()
	assert.Equal(t, "onetwo", b.FullText())
}

func TestDeleteRight_AtDocumentEndIsNoOp(t *testing.T) {
	b := New("one")
	b.MoveCursor(pos(0, 3))

	b.DeleteRight()
	assert.Equal(t, "one", b.FullText())
}

func TestDeleteToEndOfLine(t *testing.T) {
	b := New("hello\nworld")
	b.MoveCursor(pos(0, 2))

	b.DeleteToEndOfLine()
	assert.Equal(t, "he\nworld", b.FullText())
}

func TestDeleteLine_MiddleLine(t *testing.T) {
	b := New("one\ntwo\nthree")
	b.MoveCursor(pos(1, 1))

	b.DeleteLine()
	assert.Equal(t, "one\nthree", b.FullText())
}

func TestDeleteLine_LastLineKeepsSlot(t *testing.T) {
	b := New("one\ntwo")
	b.MoveCursor(pos(1, 1))

	b.DeleteLine()
	assert.Equal(t, "one\n", b.FullText())
	assert.Equal(t, 2, b.LineCount())
}

func TestSelectedText_SameLine(t *testing.T) {
	b := New("hello world")
	b.SetSelection(pos(0, 6), pos(0, 11))

	assert.Equal(t, "world", b.SelectedText())
}

func TestSelectedText_Multiline(t *testing.T) {
	b := New("one\ntwo\nthree")
	b.SetSelection(pos(0, 2), pos(2, 3))

	assert.Equal(t, "e\ntwo\nthr", b.SelectedText())
}

func TestSelectedText_ReversedSpan(t *testing.T) {
	b := New("abcdef")
	b.SetSelection(pos(0, 4), pos(0, 1))

	assert.Equal(t, "bcd", b.SelectedText())
}

func TestSelectedText_EmptySpan(t *testing.T) {
	b := New("abc")
	b.SetSelection(pos(0, 1), pos(0, 1))

	assert.Equal(t, "", b.SelectedText())
}

func TestUndo_RestoresContentAndCursor(t *testing.T) {
	b := New("hello")
	b.MoveCursor(pos(0, 2))
	b.Insert("XX")
	assert.Equal(t, "heXXllo", b.FullText())

	b.Undo()
	assert.Equal(t, "hello", b.FullText())
	assert.Equal(t, pos(0, 2), b.CursorLocation())
}

func TestRedo_ReappliesChange(t *testing.T) {
	b := New("hello")
	b.Delete(pos(0, 0), pos(0, 2))
	b.Undo()
	assert.Equal(t, "hello", b.FullText())

	b.Redo()
	assert.Equal(t, "llo", b.FullText())
}

func TestRedo_DiscardedByNewMutation(t *testing.T) {
	b := New("hello")
	b.Delete(pos(0, 0), pos(0, 2))
	b.Undo()
	b.Insert("X")

	b.Redo()
	assert.Equal(t, "Xhello", b.FullText())
}

func TestUndo_EmptyHistoryIsNoOp(t *testing.T) {
	b := New("hello")
	b.Undo()
	b.Redo()
	assert.Equal(t, "hello", b.FullText())
}

func TestGraphemes_EmojiCountAsOne(t *testing.T) {
	b := New("a😀b")
	assert.Equal(t, 3, b.LineLength(0))

	b.MoveCursor(pos(0, 1))
	b.DeleteRight()
	assert.Equal(t, "ab", b.FullText())
}

func TestUndo_RoundTripsRandomMutations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,8}(\n[a-z ]{0,8}){0,3}`).Draw(t, "text")
		b := New(text)

		steps := rapid.IntRange(1, 8).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := b.FullText()
			if rapid.Bool().Draw(t, "insert") {
				b.Insert(rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "text"))
			} else {
				b.DeleteRight()
			}
			if b.FullText() != before {
				b.Undo()
			}
			assert.Equal(t, before, b.FullText())
		}
	})
}

func TestFullText_AgreesWithLineCount(t *testing.T) {
	b := New("one\ntwo\nthree")
	assert.Equal(t, b.LineCount(), strings.Count(b.FullText(), "\n")+1)
}
