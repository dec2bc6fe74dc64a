package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zjrosen/vimkit/internal/engine"
)

func TestVisual_EntryCollapsesSelectionAtCursor(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 2)
	press(e, "v")

	assert.Equal(t, engine.ModeVisual, e.Mode())
	start, end := buf.Selection()
	assert.Equal(t, engine.Position{Row: 0, Col: 2}, start)
	assert.Equal(t, engine.Position{Row: 0, Col: 2}, end)
}

func TestVisual_YankIsInclusive(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 0)
	press(e, "vlly")

	assert.Equal(t, "abc", e.Register())
	assert.Equal(t, "abcdef", buf.FullText())
	assert.Equal(t, engine.ModeNormal, e.Mode())
	assert.Equal(t, engine.Position{Row: 0, Col: 0}, buf.CursorLocation())
}

func TestVisual_Delete(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 0)
	press(e, "vlld")

	assert.Equal(t, "def", buf.FullText())
	assert.Equal(t, "abc", e.Register())
	assert.Equal(t, engine.ModeNormal, e.Mode())
	assert.Equal(t, engine.Position{Row: 0, Col: 0}, buf.CursorLocation())
}

func TestVisual_XDeletesLikeD(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 0)
	press(e, "vllx")

	assert.Equal(t, "def", buf.FullText())
}

func TestVisual_ChangeEntersInsert(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 0)
	press(e, "vllc")

	assert.Equal(t, "def", buf.FullText())
	assert.Equal(t, engine.ModeInsert, e.Mode())
}

func TestVisual_BackwardSelectionNormalizes(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 3)
	press(e, "vhhd")

	assert.Equal(t, "aef", buf.FullText())
	assert.Equal(t, "bcd", e.Register())
	assert.Equal(t, engine.Position{Row: 0, Col: 1}, buf.CursorLocation())
}

func TestVisual_ToLineEndSelectsThroughLastChar(t *testing.T) {
	e, buf := newNormal("abc", 0, 0)
	press(e, "v$d")

	assert.Equal(t, "", buf.FullText())
	assert.Equal(t, "abc", e.Register())
}

func TestVisual_SpansLines(t *testing.T) {
	e, buf := newNormal("abc\ndef", 0, 1)
	press(e, "vjd")

	assert.Equal(t, "af", buf.FullText())
	assert.Equal(t, "bc\nde", e.Register())
}

func TestVisual_WordMotionExtends(t *testing.T) {
	e, buf := newNormal("one two three", 0, 0)
	press(e, "vwy")

	// Anchor 0, active at "two", widened one past the active end.
	assert.Equal(t, "one t", e.Register())
	assert.Equal(t, "one two three", buf.FullText())
}

func TestVisual_EscapeCollapsesToSpanStart(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 3)
	press(e, "vhh")
	e.HandleKey(engine.Control(engine.KeyEscape))

	assert.Equal(t, engine.ModeNormal, e.Mode())
	assert.Equal(t, engine.Position{Row: 0, Col: 1}, buf.CursorLocation())
	start, end := buf.Selection()
	assert.Equal(t, start, end)
}

func TestVisual_DeleteNotRecordedForRepeat(t *testing.T) {
	e, buf := newNormal("abcdef", 0, 0)
	press(e, "x")    // recorded, leaves "bcdef"
	press(e, "vld.") // visual delete must not displace the x

	// vld removes "bc", then . repeats the single-char delete.
	assert.Equal(t, "ef", buf.FullText())
}

func TestVisual_ArrowKeysExtend(t *testing.T) {
	e, _ := newNormal("abcdef", 0, 0)
	press(e, "v")
	e.HandleKey(engine.Control(engine.KeyRight))
	e.HandleKey(engine.Control(engine.KeyRight))
	press(e, "y")

	assert.Equal(t, "abc", e.Register())
}

func TestVisual_PendingClearedOnEveryKey(t *testing.T) {
	e, _ := newNormal("abcdef", 0, 0)
	press(e, "v3")

	// Counts have no meaning in Visual mode here; nothing may linger.
	assert.True(t, e.Pending().IsEmpty())
}
