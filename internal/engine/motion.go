package engine

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MotionKind identifies a motion usable as an operator's span boundary.
type MotionKind int

const (
	MotionNone MotionKind = iota
	MotionWordRight
	MotionWordLeft
	MotionLineEnd
	MotionLineStart
)

// applyMotion executes a motion against the buffer's primitives.
func (e *Engine) applyMotion(motion MotionKind) {
	switch motion {
	case MotionWordRight:
		e.buf.CursorWordRight()
	case MotionWordLeft:
		e.buf.CursorWordLeft()
	case MotionLineEnd:
		e.buf.CursorLineEnd()
	case MotionLineStart:
		e.buf.CursorLineStart()
	}
}

// moveWordEnd implements the e motion, which has no buffer primitive:
// skip the rest of the current word, skip whitespace, run through the
// next word, then step back onto its last character. Computed over the
// full text so it crosses line breaks.
func (e *Engine) moveWordEnd() {
	clusters := graphemes(e.buf.FullText())
	n := len(clusters)
	if n == 0 {
		return
	}
	pos := e.linearIndex(e.buf.CursorLocation())

	for pos < n && !isBlank(clusters[pos]) {
		pos++
	}
	for pos < n && isBlank(clusters[pos]) {
		pos++
	}
	for pos < n && !isBlank(clusters[pos]) {
		pos++
	}
	if pos > 0 {
		pos--
	}

	e.buf.MoveCursor(positionAt(clusters, pos))
}

// moveFirstNonBlank implements the ^ motion.
func (e *Engine) moveFirstNonBlank() {
	loc := e.buf.CursorLocation()
	e.buf.CursorLineStart()
	for i, cluster := range graphemes(e.buf.DocumentLine(loc.Row)) {
		if !isBlank(cluster) {
			e.buf.MoveCursor(Position{Row: loc.Row, Col: i})
			return
		}
	}
}

// resolveCharSearch executes an f/F/t/T motion toward the target
// character, scanning only the current line. A miss is a no-op; the
// caller clears the pending state either way. Forward searches never move
// the cursor backwards, and backward searches never move it forwards.
func (e *Engine) resolveCharSearch(kind CharSearch, target rune) {
	loc := e.buf.CursorLocation()
	clusters := graphemes(e.buf.DocumentLine(loc.Row))

	switch kind {
	case SearchFindForward, SearchTillForward:
		for i := loc.Col + 1; i < len(clusters); i++ {
			if clusterIs(clusters[i], target) {
				tgt := i
				if kind == SearchTillForward {
					tgt = i - 1
				}
				e.buf.MoveCursor(Position{Row: loc.Row, Col: max(loc.Col, tgt)})
				return
			}
		}
	case SearchFindBackward, SearchTillBackward:
		for i := min(loc.Col, len(clusters)) - 1; i >= 0; i-- {
			if clusterIs(clusters[i], target) {
				tgt := i
				if kind == SearchTillBackward {
					tgt = i + 1
				}
				e.buf.MoveCursor(Position{Row: loc.Row, Col: min(loc.Col, tgt)})
				return
			}
		}
	}
}

// linearIndex converts a position to a grapheme offset into the full
// text, counting each line break as one grapheme.
func (e *Engine) linearIndex(pos Position) int {
	idx := 0
	for row := 0; row < pos.Row; row++ {
		idx += e.buf.LineLength(row) + 1
	}
	return idx + pos.Col
}

// positionAt converts a grapheme offset back to a row/column position.
func positionAt(clusters []string, pos int) Position {
	row, col := 0, 0
	for i := 0; i < pos && i < len(clusters); i++ {
		if clusters[i] == "\n" {
			row++
			col = 0
		} else {
			col++
		}
	}
	return Position{Row: row, Col: col}
}

// graphemes splits a string into grapheme clusters.
func graphemes(s string) []string {
	out := make([]string, 0, uniseg.GraphemeClusterCount(s))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, next := uniseg.StepString(s, state)
		out = append(out, cluster)
		s, state = rest, next
	}
	return out
}

// isBlank reports whether a cluster is whitespace (including line breaks).
func isBlank(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}

// clusterIs reports whether a cluster is exactly the single rune r.
func clusterIs(cluster string, r rune) bool {
	cr, size := utf8.DecodeRuneInString(cluster)
	return size == len(cluster) && cr == r
}
