package ui

import (
	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
)

// pageSize is how many entries PageUp/PageDown jump by.
const pageSize = 10

// Component is the contract between the router and anything it can display.
// HandleAction returns the follow-up action the input produced, or nil when
// the input was not consumed. The router never inspects view internals.
type Component interface {
	HandleAction(act action.Action) (action.Action, error)
	View(width, height int) string
	HelpText() string
}

// handleListNav applies the navigation and filter-editing actions every
// picker shares. The boolean reports whether the action was consumed.
// Escape clears a non-empty query before it means "leave this view".
func handleListNav[T any](l *fuzzy.List[T], act action.Action) (action.Action, bool) {
	switch a := act.(type) {
	case action.MoveUp:
		l.MoveUp()
	case action.MoveDown:
		l.MoveDown()
	case action.PageUp:
		l.PageUp(pageSize)
	case action.PageDown:
		l.PageDown(pageSize)
	case action.Character:
		l.PushRune(a.Rune)
	case action.Backspace:
		l.PopRune()
	case action.Escape:
		if l.Query() != "" {
			l.ClearQuery()
			return action.Render{}, true
		}
		return action.GoBack{}, true
	default:
		return nil, false
	}
	return action.Render{}, true
}
