package ui

import (
	"testing"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

func TestActionForKey(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want action.Action
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, action.Quit{}},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, action.Quit{}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, action.Escape{}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, action.Enter{}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, action.MoveUp{}},
		{"ctrl+k moves up", tea.KeyMsg{Type: tea.KeyCtrlK}, action.MoveUp{}},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, action.MoveDown{}},
		{"ctrl+j moves down", tea.KeyMsg{Type: tea.KeyCtrlJ}, action.MoveDown{}},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, action.PageUp{}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, action.PageDown{}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, action.Backspace{}},
		{"space types", tea.KeyMsg{Type: tea.KeySpace}, action.Character{Rune: ' '}},
		{"plain j is a filter character", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, action.Character{Rune: 'j'}},
		{"plain k is a filter character", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, action.Character{Rune: 'k'}},
		{"alt rune ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, nil},
		{"function keys ignored", tea.KeyMsg{Type: tea.KeyF1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := actionForKey(tc.msg)
			if got != tc.want {
				t.Fatalf("actionForKey = %#v, want %#v", got, tc.want)
			}
		})
	}
}
