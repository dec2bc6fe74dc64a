package textbuffer

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Character classes for word boundary detection. A word is a run of
// letters, digits, and underscores, or a run of punctuation; whitespace
// separates both kinds.
const (
	classWhitespace = iota
	classWord
	classPunct
)

func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// clusters splits a string into its grapheme clusters.
func clusters(s string) []string {
	out := make([]string, 0, uniseg.GraphemeClusterCount(s))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, next := uniseg.StepString(s, state)
		out = append(out, cluster)
		s, state = rest, next
	}
	return out
}

// byteOffset converts a grapheme index to a byte offset into s.
// Indices past the end map to len(s).
func byteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}
	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, next := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s, state = rest, next
	}
	return len(original)
}

// sliceGraphemes returns the substring from grapheme index start to end
// (exclusive), like s[start:end] but grapheme-aware.
func sliceGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	return s[byteOffset(s, start):byteOffset(s, end)]
}

// classOf classifies a cluster by its base rune. Multi-rune clusters
// (emoji, combining marks) take the class of the base character.
func classOf(cluster string) int {
	for _, r := range cluster {
		switch {
		case unicode.IsSpace(r):
			return classWhitespace
		case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
			return classWord
		default:
			return classPunct
		}
	}
	return classWhitespace
}
