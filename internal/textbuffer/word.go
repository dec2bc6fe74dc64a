package textbuffer

// Word boundary scanning. All positions are grapheme indices within a
// single line.

// nextWordStart returns the index of the next word start strictly after
// the word or whitespace run containing pos, or the grapheme count when
// the line has no further word.
func nextWordStart(line string, pos int) int {
	gs := clusters(line)
	n := len(gs)
	if pos >= n {
		return pos
	}
	if cur := classOf(gs[pos]); cur != classWhitespace {
		for pos < n && classOf(gs[pos]) == cur {
			pos++
		}
	}
	for pos < n && classOf(gs[pos]) == classWhitespace {
		pos++
	}
	return pos
}

// prevWordStart returns the index of the start of the word before pos,
// or 0 when there is none.
func prevWordStart(line string, pos int) int {
	gs := clusters(line)
	n := len(gs)
	if pos <= 0 || n == 0 {
		return 0
	}
	pos--
	if pos >= n {
		pos = n - 1
	}
	for pos > 0 && classOf(gs[pos]) == classWhitespace {
		pos--
	}
	if pos <= 0 {
		return 0
	}
	cls := classOf(gs[pos])
	for pos > 0 && classOf(gs[pos-1]) == cls {
		pos--
	}
	return pos
}

// firstWordStart returns the index of the first non-whitespace cluster,
// or the grapheme count for a blank line.
func firstWordStart(line string) int {
	gs := clusters(line)
	pos := 0
	for pos < len(gs) && classOf(gs[pos]) == classWhitespace {
		pos++
	}
	return pos
}

// lastWordStart returns the index of the start of the last word on the
// line, or 0 for a blank line.
func lastWordStart(line string) int {
	gs := clusters(line)
	pos := len(gs) - 1
	for pos > 0 && classOf(gs[pos]) == classWhitespace {
		pos--
	}
	if pos <= 0 {
		return 0
	}
	cls := classOf(gs[pos])
	for pos > 0 && classOf(gs[pos-1]) == cls {
		pos--
	}
	return pos
}
