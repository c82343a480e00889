package ui

import (
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var styles = theme.Default()

// View renders the active picker with a status line and a help line pinned
// to the bottom. An open dialog replaces the picker for the frame; the
// picker's state is untouched underneath it.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.dialog != nil {
		body := m.dialog.View(m.width, m.height-1)
		return body + "\n" + m.helpLine(m.dialog.HelpText())
	}
	view := m.views[m.active]
	if view == nil {
		return ""
	}
	body := view.View(m.width, m.height-2)
	lines := []string{body, m.statusLine(), m.helpLine(view.HelpText())}
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return render(styles.Error, clip(m.status, m.width))
}

func (m *Model) helpLine(text string) string {
	return render(styles.Help, clip(text, m.width))
}

// clip truncates without breaking ANSI escape sequences.
func clip(text string, width int) string {
	if width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
