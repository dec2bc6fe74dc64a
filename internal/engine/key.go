package engine

// KeyKind discriminates named control keys from printable characters.
// Modeling the key as a closed sum forces every handler to deal with both
// shapes explicitly instead of null-checking an optional character.
type KeyKind int

const (
	// KeyChar is a printable character; Key.Char holds the rune.
	KeyChar KeyKind = iota
	// KeyEscape is the escape key.
	KeyEscape
	// KeyLeft is the left arrow key.
	KeyLeft
	// KeyRight is the right arrow key.
	KeyRight
	// KeyUp is the up arrow key.
	KeyUp
	// KeyDown is the down arrow key.
	KeyDown
	// KeyCtrlR is the ctrl+r chord.
	KeyCtrlR
)

// Key is a single key event delivered to the engine.
type Key struct {
	Kind KeyKind
	Char rune // valid only when Kind == KeyChar
}

// Char constructs a printable-character key.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Char: r}
}

// Control constructs a named control key.
func Control(kind KeyKind) Key {
	return Key{Kind: kind}
}

// IsChar reports whether the key carries the given printable character.
func (k Key) IsChar(r rune) bool {
	return k.Kind == KeyChar && k.Char == r
}
