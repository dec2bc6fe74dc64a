// Package input provides a bubbletea text input component with optional
// vim-style modal editing. The modal grammar lives in the engine package;
// this component owns the bubbletea plumbing, default Insert-mode text
// handling, and rendering.
package input

import (
	"regexp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/textbuffer"
)

// mouseEscapePattern matches SGR mouse tracking sequences that arrive as
// raw runes when bubbletea did not parse them, e.g. "[<65;87;15M".
var mouseEscapePattern = regexp.MustCompile(`^\[?<\d+;\d+;\d+[Mm]$`)

func isMouseEscapeSequence(runes []rune) bool {
	if len(runes) < 6 {
		return false
	}
	return mouseEscapePattern.MatchString(string(runes))
}

// Config defines input configuration with optional callbacks.
type Config struct {
	// VimEnabled enables modal editing. When false the component behaves
	// as a standard textarea, always in Insert mode.
	VimEnabled bool

	// DefaultMode is the starting mode when vim is enabled.
	DefaultMode engine.Mode

	// Placeholder is shown when the component is empty.
	Placeholder string

	// OnSubmit produces a custom message when content is submitted
	// (Enter). If nil, SubmitMsg{Content: content} is produced.
	OnSubmit func(content string) tea.Msg

	// OnModeChange produces a custom message when the mode changes.
	// If nil, ModeChangeMsg is produced.
	OnModeChange func(mode, previous engine.Mode) tea.Msg

	// OnChange produces a custom message when content changes.
	// If nil, no message is emitted on content change.
	OnChange func(content string) tea.Msg
}

// SubmitMsg is sent when the user submits content (Enter).
type SubmitMsg struct {
	Content string
}

// ModeChangeMsg is sent when the mode changes and no OnModeChange
// callback is configured.
type ModeChangeMsg struct {
	Mode     engine.Mode
	Previous engine.Mode
}

// Model holds the input component state.
type Model struct {
	config  Config
	buf     *textbuffer.Buffer
	eng     *engine.Engine
	width   int
	focused bool
}

// New creates an input component with the given configuration.
func New(cfg Config) Model {
	buf := textbuffer.New("")
	eng := engine.New(buf)
	if cfg.VimEnabled && cfg.DefaultMode != engine.ModeInsert {
		eng.SetMode(cfg.DefaultMode)
	}
	return Model{config: cfg, buf: buf, eng: eng}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key events go to the engine first; keys
// the engine does not consume fall through to default text handling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	prevMode := m.Mode()
	prevValue := m.buf.FullText()
	cmd := m.handleKey(keyMsg)

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if mode := m.Mode(); mode != prevMode {
		cmds = append(cmds, m.modeChangeCmd(mode, prevMode))
	}
	if value := m.buf.FullText(); value != prevValue {
		log.Debug(log.CatBuffer, "Content changed", "lines", m.buf.LineCount(), "bytes", len(value))
		if m.config.OnChange != nil {
			cmds = append(cmds, func() tea.Msg { return m.config.OnChange(value) })
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.config.VimEnabled {
		if k, ok := translateKey(msg); ok && m.eng.HandleKey(k) {
			log.Debug(log.CatEngine, "Key consumed", "key", msg.String(), "mode", m.eng.Mode().String())
			return nil
		}
	}
	return m.handleDefaultKey(msg)
}

// translateKey converts a tea.KeyMsg to an engine key event. Returns
// false for key types the engine has no representation for.
func translateKey(msg tea.KeyMsg) (engine.Key, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return engine.Char(msg.Runes[0]), true
		}
	case tea.KeyEscape:
		return engine.Control(engine.KeyEscape), true
	case tea.KeyLeft:
		return engine.Control(engine.KeyLeft), true
	case tea.KeyRight:
		return engine.Control(engine.KeyRight), true
	case tea.KeyUp:
		return engine.Control(engine.KeyUp), true
	case tea.KeyDown:
		return engine.Control(engine.KeyDown), true
	case tea.KeyCtrlR:
		return engine.Control(engine.KeyCtrlR), true
	}
	return engine.Key{}, false
}

// handleDefaultKey is the Insert-mode (and vim-disabled) text path.
func (m Model) handleDefaultKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Alt && msg.Type == tea.KeyEnter {
		m.buf.Insert("\n")
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if isMouseEscapeSequence(msg.Runes) {
			return nil
		}
		m.buf.Insert(string(msg.Runes))
	case tea.KeySpace:
		m.buf.Insert(" ")
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		m.buf.DeleteLeft()
	case tea.KeyDelete:
		m.buf.DeleteRight()
	case tea.KeyLeft:
		m.buf.CursorLeft()
	case tea.KeyRight:
		m.buf.CursorRight()
	case tea.KeyUp:
		m.buf.CursorUp()
	case tea.KeyDown:
		m.buf.CursorDown()
	}
	return nil
}

func (m Model) submit() tea.Cmd {
	content := m.buf.FullText()
	if m.config.OnSubmit != nil {
		return func() tea.Msg { return m.config.OnSubmit(content) }
	}
	return func() tea.Msg { return SubmitMsg{Content: content} }
}

func (m Model) modeChangeCmd(mode, previous engine.Mode) tea.Cmd {
	if m.config.OnModeChange != nil {
		return func() tea.Msg { return m.config.OnModeChange(mode, previous) }
	}
	return func() tea.Msg { return ModeChangeMsg{Mode: mode, Previous: previous} }
}

// Focus gives the component keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus and drops any half-typed composition.
func (m *Model) Blur() {
	m.focused = false
	m.eng.ClearPending()
}

// Focused reports whether the component has focus.
func (m Model) Focused() bool {
	return m.focused
}

// Value returns the full content.
func (m Model) Value() string {
	return m.buf.FullText()
}

// SetValue replaces the content, keeping the current mode.
func (m *Model) SetValue(s string) {
	m.buf.SetText(s)
	m.eng.ClearPending()
}

// Reset clears the content and any pending composition.
func (m *Model) Reset() {
	m.buf.SetText("")
	m.eng.ClearPending()
}

// Mode returns the current editing mode. With vim disabled this is
// always Insert.
func (m Model) Mode() engine.Mode {
	if !m.config.VimEnabled {
		return engine.ModeInsert
	}
	return m.eng.Mode()
}

// CursorPosition returns the current cursor position.
func (m Model) CursorPosition() engine.Position {
	return m.buf.CursorLocation()
}

// PendingDisplay returns the in-progress composition for status display,
// e.g. "2d" while a counted delete awaits its motion.
func (m Model) PendingDisplay() string {
	return m.eng.Pending().String()
}

// Register returns the yank register contents.
func (m Model) Register() string {
	return m.eng.Register()
}

// Engine exposes the underlying engine, mainly for subscribing to mode
// transition events.
func (m Model) Engine() *engine.Engine {
	return m.eng
}

// SetVimEnabled toggles modal editing. Disabling forces Insert mode.
func (m *Model) SetVimEnabled(enabled bool) {
	m.config.VimEnabled = enabled
	if !enabled {
		m.eng.SetMode(engine.ModeInsert)
		m.eng.ClearPending()
	}
}

// VimEnabled reports whether modal editing is on.
func (m Model) VimEnabled() bool {
	return m.config.VimEnabled
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(placeholder string) {
	m.config.Placeholder = placeholder
}

// SetWidth sets the render width in terminal cells. 0 means unbounded.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Close releases the engine's event broker.
func (m Model) Close() {
	m.eng.Close()
}
