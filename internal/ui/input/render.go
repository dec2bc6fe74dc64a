package input

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimkit/internal/engine"
)

// ANSI codes for cursor and selection. The cursor uses reverse video;
// the selection uses a dim gray background so the two stay distinct.
const (
	cursorOn     = "\x1b[7m"
	cursorOff    = "\x1b[27m"
	selectionOn  = "\x1b[48;5;238;38;5;255m"
	selectionOff = "\x1b[49;39m"
)

var (
	normalModeColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	insertModeColor  = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	visualModeColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	placeholderColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"}

	placeholderStyle = lipgloss.NewStyle().Foreground(placeholderColor)
)

// View renders the content with cursor and selection. The mode indicator
// is not rendered here; hosts place ModeIndicator in their own chrome.
func (m Model) View() string {
	if m.buf.FullText() == "" {
		return m.renderEmpty()
	}

	lines := make([]string, 0, m.buf.LineCount())
	for row := 0; row < m.buf.LineCount(); row++ {
		rendered := m.renderLine(row)
		if m.width > 0 {
			rendered = truncate.String(rendered, uint(m.width))
		}
		lines = append(lines, rendered)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEmpty() string {
	var out strings.Builder
	if m.focused {
		out.WriteString(cursorOn + " " + cursorOff)
	}
	if m.config.Placeholder != "" {
		out.WriteString(placeholderStyle.Render(m.config.Placeholder))
	}
	if out.Len() == 0 {
		return " "
	}
	s := out.String()
	if m.width > 0 {
		s = truncate.String(s, uint(m.width))
	}
	return s
}

// renderLine renders one row, cluster by cluster, layering the selection
// background and the cursor cell over the raw text.
func (m Model) renderLine(row int) string {
	line := m.buf.DocumentLine(row)
	cur := m.buf.CursorLocation()
	selStart, selEnd, inSel := m.selectionRangeForRow(row)
	cursorHere := m.focused && row == cur.Row

	var out strings.Builder
	col := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, r, _, next := uniseg.StepString(rest, state)
		switch {
		case cursorHere && col == cur.Col:
			out.WriteString(cursorOn + cluster + cursorOff)
		case inSel && col >= selStart && col < selEnd:
			out.WriteString(selectionOn + cluster + selectionOff)
		default:
			out.WriteString(cluster)
		}
		rest, state = r, next
		col++
	}

	// Cursor in the gap position past the last character.
	if cursorHere && cur.Col >= col {
		out.WriteString(cursorOn + " " + cursorOff)
	}
	if out.Len() == 0 {
		return " "
	}
	return out.String()
}

// selectionRangeForRow returns the selected column range on a row, end
// exclusive. The active end is widened one column so the character under
// it reads as selected.
func (m Model) selectionRangeForRow(row int) (startCol, endCol int, inSelection bool) {
	if !m.config.VimEnabled || m.eng.Mode() != engine.ModeVisual || !m.focused {
		return 0, 0, false
	}
	start, end := engine.NormalizeSpan(m.buf.Selection())
	if end.Col < m.buf.LineLength(end.Row) {
		end.Col++
	}
	if row < start.Row || row > end.Row {
		return 0, 0, false
	}

	startCol, endCol = 0, m.buf.LineLength(row)
	if row == start.Row {
		startCol = start.Col
	}
	if row == end.Row {
		endCol = end.Col
	}
	return startCol, endCol, true
}

// ModeIndicator returns a styled mode tag such as "[NORMAL]", or ""
// when vim mode is disabled.
func (m Model) ModeIndicator() string {
	if !m.config.VimEnabled {
		return ""
	}

	var color lipgloss.AdaptiveColor
	switch m.eng.Mode() {
	case engine.ModeNormal:
		color = normalModeColor
	case engine.ModeInsert:
		color = insertModeColor
	case engine.ModeVisual:
		color = visualModeColor
	default:
		color = placeholderColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + m.eng.Mode().String() + "]")
}
