package playground

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/config"
)

func newModel(t *testing.T) Model {
	t.Helper()
	return New(config.Defaults(), nil, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_HonorsConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.VimMode = false

	m := New(cfg, nil, nil)
	assert.True(t, m.input.Focused())
	assert.False(t, m.input.VimEnabled())
}

func TestInit_DeliversModeTransitions(t *testing.T) {
	m := newModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	// Escape publishes an Insert to Normal transition on the broker.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		m, _ = update(t, m, msg)
		assert.Equal(t, "mode INSERT → NORMAL", m.lastEvent)
	case <-time.After(2 * time.Second):
		t.Fatal("no mode transition delivered")
	}
}

func TestUpdate_TypingReachesInput(t *testing.T) {
	m := newModel(t)
	m = typeString(t, m, "hello")
	assert.Equal(t, "hello", m.input.Value())
}

func TestUpdate_SubmitAppendsHistory(t *testing.T) {
	m := newModel(t)
	m = typeString(t, m, "hello")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, []string{"hello"}, m.submitted)
	assert.Empty(t, m.input.Value())
}

func TestUpdate_EmptySubmitNotRecorded(t *testing.T) {
	m := newModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Empty(t, m.submitted)
}

func TestUpdate_HistoryBounded(t *testing.T) {
	m := newModel(t)
	for i := 0; i < maxHistory+3; i++ {
		m = typeString(t, m, "x")
		var cmd tea.Cmd
		m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		m, _ = update(t, m, cmd())
	}
	assert.Len(t, m.submitted, maxHistory)
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestUpdate_ToggleVim(t *testing.T) {
	m := newModel(t)
	require.True(t, m.input.VimEnabled())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.False(t, m.input.VimEnabled())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.input.VimEnabled())
}

func TestUpdate_ResetClearsInput(t *testing.T) {
	m := newModel(t)
	m = typeString(t, m, "scratch")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, m.input.Value())
}

func TestUpdate_ConfigReloadApplied(t *testing.T) {
	m := newModel(t)

	cfg := config.Defaults()
	cfg.UI.VimMode = false
	cfg.UI.Placeholder = "reloaded"
	m, _ = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.False(t, m.input.VimEnabled())
	assert.Equal(t, "reloaded", m.cfg.UI.Placeholder)
	assert.Equal(t, "config reloaded", m.lastEvent)
}

func TestWaitForReload_DeliversConfig(t *testing.T) {
	ch := make(chan struct{}, 1)
	cfg := config.Defaults()
	cfg.UI.Placeholder = "from disk"

	m := New(config.Defaults(), ch, func() (config.Config, error) {
		return cfg, nil
	})
	cmd := m.waitForReload()
	require.NotNil(t, cmd)

	ch <- struct{}{}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		reloaded, ok := msg.(ConfigReloadedMsg)
		require.True(t, ok)
		assert.Equal(t, "from disk", reloaded.Config.UI.Placeholder)
	case <-time.After(2 * time.Second):
		t.Fatal("reload command did not complete")
	}
}

func TestView_ShowsChrome(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "vimkit playground")
	assert.Contains(t, view, "1:1")
	assert.Contains(t, view, "ctrl+c: quit")
}

func TestView_StatusShowsRegister(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = typeString(t, m, "word here")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = typeString(t, m, "0yw")

	assert.Contains(t, m.View(), `reg "word "`)
}

func TestRegisterPreview(t *testing.T) {
	assert.Equal(t, `"abc"`, registerPreview("abc"))
	assert.Equal(t, `"a\nb"`, registerPreview("a\nb"))
	assert.Equal(t, `"aaaaaaaaaaa…"`, registerPreview("aaaaaaaaaaaaaaaaaa"))
}
