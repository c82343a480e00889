package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/format/table"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
	"github.com/atomicstack/tmux-switchboard/internal/tmux"
)

type sessionRow struct {
	session tmux.Session
	label   string
}

// SessionPicker lists tmux sessions. Enter switches, and with an empty
// filter d kills the selection (after confirmation) and n prompts for a new
// session name.
type SessionPicker struct {
	list *fuzzy.List[sessionRow]
}

func newSessionPicker() *SessionPicker {
	return &SessionPicker{
		list: fuzzy.New("sessions",
			func(r sessionRow) string { return r.label },
			func(r sessionRow) string { return r.session.Name },
		),
	}
}

// SetSessions replaces the listing, aligning the name and detail columns.
func (p *SessionPicker) SetSessions(sessions []tmux.Session) {
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		marker := ""
		if s.Current {
			marker = "(current)"
		}
		rows[i] = []string{s.Name, s.Label, marker}
	}
	padded := table.Format(rows, table.AlignLeft, table.AlignLeft, table.AlignLeft)
	items := make([]sessionRow, len(sessions))
	for i, s := range sessions {
		items[i] = sessionRow{session: s, label: padded[i]}
	}
	p.list.SetItems(items)
}

func (p *SessionPicker) HandleAction(act action.Action) (action.Action, error) {
	if c, ok := act.(action.Character); ok && p.list.Query() == "" {
		switch c.Rune {
		case 'd':
			row, ok := p.list.Selected()
			if !ok {
				return action.Render{}, nil
			}
			return action.ShowConfirm{
				Title:    "Kill session",
				Message:  fmt.Sprintf("Kill session %q?", row.session.Name),
				Callback: action.ConfirmCallback{Kind: action.ConfirmKillSession, Name: row.session.Name},
			}, nil
		case 'n':
			return action.ShowInput{Title: "New session name", Callback: action.InputCreateSession}, nil
		}
	}
	if _, ok := act.(action.Enter); ok {
		row, ok := p.list.Selected()
		if !ok {
			return action.Render{}, nil
		}
		return action.SwitchSession{Name: row.session.Name}, nil
	}
	if follow, ok := handleListNav(p.list, act); ok {
		return follow, nil
	}
	return nil, nil
}

func (p *SessionPicker) View(width, height int) string {
	return p.list.View(width, height)
}

func (p *SessionPicker) HelpText() string {
	return "enter: switch  d: kill  n: new  esc: quit"
}
