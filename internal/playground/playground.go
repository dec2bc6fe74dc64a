// Package playground hosts the interactive demo for the vim input
// widget: the widget itself, a status bar with mode, pending-composition,
// and register read-outs, and a scrollback of submitted lines.
package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/vimkit/internal/config"
	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/input"
)

// maxHistory bounds the submitted-lines scrollback.
const maxHistory = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"})

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"}).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#A6ADC8"})

	historyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"})

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"})

	vimOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"})
)

// ConfigReloadedMsg carries a freshly loaded config after the watcher
// reported a change to the config file.
type ConfigReloadedMsg struct {
	Config config.Config
}

type reloadFailedMsg struct {
	err error
}

// Model holds the playground state.
type Model struct {
	input input.Model
	keys  KeyMap
	cfg   config.Config

	// Mode transitions arrive over the engine's pub/sub broker.
	cancel   context.CancelFunc
	listener *pubsub.ContinuousListener[engine.ModeTransition]

	// Live reload plumbing; both nil when reload is disabled.
	reloads <-chan struct{}
	reload  func() (config.Config, error)

	width     int
	height    int
	showHelp  bool
	quitting  bool
	submitted []string
	lastEvent string
}

// New creates a playground model. reloads and reload may be nil to
// disable live config reload.
func New(cfg config.Config, reloads <-chan struct{}, reload func() (config.Config, error)) Model {
	in := input.New(input.Config{
		VimEnabled:  cfg.UI.VimMode,
		DefaultMode: cfg.UI.StartMode(),
		Placeholder: cfg.UI.Placeholder,
	})
	in.Focus()

	ctx, cancel := context.WithCancel(context.Background())
	listener := pubsub.ListenOn(ctx, in.Engine().Transitions(ctx))

	return Model{
		input:    in,
		keys:     DefaultKeyMap(),
		cfg:      cfg,
		cancel:   cancel,
		listener: listener,
		reloads:  reloads,
		reload:   reload,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listener.Listen()}
	if m.reloads != nil {
		cmds = append(cmds, m.waitForReload())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(msg.Width-6, 10))
		return m, nil

	case input.SubmitMsg:
		if msg.Content != "" {
			m.submitted = append(m.submitted, msg.Content)
			if len(m.submitted) > maxHistory {
				m.submitted = m.submitted[len(m.submitted)-maxHistory:]
			}
			log.Info(log.CatUI, "Submitted content", "length", len(msg.Content))
		}
		m.input.Reset()
		return m, nil

	case input.ModeChangeMsg:
		log.Debug(log.CatUI, "Mode changed", "from", msg.Previous.String(), "to", msg.Mode.String())
		return m, nil

	case pubsub.Event[engine.ModeTransition]:
		m.lastEvent = fmt.Sprintf("mode %s → %s", msg.Payload.From, msg.Payload.To)
		return m, m.listener.Listen()

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.lastEvent = "config reloaded"
		log.Info(log.CatConfig, "Applied reloaded config")
		return m, m.waitForReload()

	case reloadFailedMsg:
		m.lastEvent = "config reload failed"
		log.ErrorErr(log.CatConfig, "Config reload failed", msg.err)
		return m, m.waitForReload()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes control chords to the chrome and everything else
// to the input widget.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cancel()
		m.input.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleVim):
		enabled := !m.input.VimEnabled()
		m.input.SetVimEnabled(enabled)
		m.lastEvent = fmt.Sprintf("vim mode %v", enabled)
		log.Info(log.CatUI, "Toggled vim mode", "enabled", enabled)
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.input.Reset()
		m.lastEvent = "input cleared"
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyConfig carries reloaded settings into the running widget. The
// default mode only affects new sessions, so it is not re-applied here.
func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	m.input.SetVimEnabled(cfg.UI.VimMode)
	m.input.SetPlaceholder(cfg.UI.Placeholder)
}

// waitForReload blocks on the watcher channel and loads the config when
// it fires. The returned command re-arms itself via Update.
func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	reloads, reload := m.reloads, m.reload
	return func() tea.Msg {
		if _, ok := <-reloads; !ok {
			return nil
		}
		if reload == nil {
			return nil
		}
		cfg, err := reload()
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render("vimkit playground"))
	out.WriteString("\n\n")
	out.WriteString(boxStyle.Render(m.input.View()))
	out.WriteString("\n")
	out.WriteString(m.statusBar())
	out.WriteString("\n")

	if history := m.historyView(); history != "" {
		out.WriteString("\n")
		out.WriteString(history)
	}

	out.WriteString("\n")
	out.WriteString(m.footer())
	return out.String()
}

// statusBar renders the mode indicator on the left and cursor, pending
// composition, register, and last event on the right.
func (m Model) statusBar() string {
	left := m.input.ModeIndicator()
	if left == "" {
		left = vimOffStyle.Render("[VIM OFF]")
	}

	pos := m.input.CursorPosition()
	parts := []string{fmt.Sprintf("%d:%d", pos.Row+1, pos.Col+1)}
	if p := m.input.PendingDisplay(); p != "" {
		parts = append(parts, "pending "+p)
	}
	if r := m.input.Register(); r != "" {
		parts = append(parts, "reg "+registerPreview(r))
	}
	if m.lastEvent != "" {
		parts = append(parts, m.lastEvent)
	}
	right := strings.Join(parts, "  ")

	gap := m.width - lipgloss.Width(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + statusStyle.Render(right)
}

// registerPreview flattens and truncates register contents to a short
// single-line tag, wide runes counted by display cells.
func registerPreview(r string) string {
	flat := strings.ReplaceAll(r, "\n", "\\n")
	return "\"" + runewidth.Truncate(flat, 12, "…") + "\""
}

// historyView renders the most recent submitted lines.
func (m Model) historyView() string {
	if len(m.submitted) == 0 {
		return ""
	}

	var out strings.Builder
	out.WriteString(historyTitleStyle.Render("Submitted"))
	out.WriteString("\n")
	for _, s := range m.submitted {
		line := strings.ReplaceAll(s, "\n", " ")
		if m.width > 4 {
			line = runewidth.Truncate(line, m.width-4, "…")
		}
		out.WriteString("  " + statusStyle.Render(line))
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n") + "\n"
}

// footer renders the keybinding help line.
func (m Model) footer() string {
	bindings := m.keys.ShortHelp()
	if m.showHelp {
		bindings = nil
		for _, group := range m.keys.FullHelp() {
			bindings = append(bindings, group...)
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return footerStyle.Render(strings.Join(parts, "  │  "))
}
