package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

// actionForKey translates a terminal key event into the semantic action the
// router dispatches. Returns nil for keys the application ignores.
//
// Plain j/k are filter characters, so list movement rides on the arrow keys
// and ctrl+j/ctrl+k. q quits and is therefore not typable in filters.
func actionForKey(msg tea.KeyMsg) action.Action {
	switch msg.Type {
	case tea.KeyCtrlC:
		return action.Quit{}
	case tea.KeyEsc:
		return action.Escape{}
	case tea.KeyEnter:
		return action.Enter{}
	case tea.KeyUp, tea.KeyCtrlK:
		return action.MoveUp{}
	case tea.KeyDown, tea.KeyCtrlJ:
		return action.MoveDown{}
	case tea.KeyPgUp:
		return action.PageUp{}
	case tea.KeyPgDown:
		return action.PageDown{}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return action.Backspace{}
	case tea.KeySpace:
		return action.Character{Rune: ' '}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return nil
		}
		r := msg.Runes[0]
		if r == 'q' {
			return action.Quit{}
		}
		if unicode.IsControl(r) {
			return nil
		}
		return action.Character{Rune: r}
	}
	return nil
}
