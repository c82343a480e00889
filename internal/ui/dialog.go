package ui

import (
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/charmbracelet/lipgloss"
)

// InputDialog collects a line of text for a callback. While a dialog is
// open the router routes every action to it and nowhere else; returning nil
// marks an action as ignored.
type InputDialog struct {
	title    string
	callback action.InputCallback
	buffer   []rune
}

func newInputDialog(title string, callback action.InputCallback) *InputDialog {
	return &InputDialog{title: title, callback: callback}
}

// Text returns the accumulated input.
func (d *InputDialog) Text() string {
	return string(d.buffer)
}

func (d *InputDialog) HandleAction(act action.Action) (action.Action, error) {
	switch a := act.(type) {
	case action.Character:
		d.buffer = append(d.buffer, a.Rune)
		return action.Render{}, nil
	case action.Backspace:
		if len(d.buffer) > 0 {
			d.buffer = d.buffer[:len(d.buffer)-1]
		}
		return action.Render{}, nil
	case action.Escape:
		// first escape clears, second cancels
		if len(d.buffer) > 0 {
			d.buffer = nil
			return action.Render{}, nil
		}
		return action.CloseDialog{}, nil
	case action.Enter:
		text := strings.TrimSpace(string(d.buffer))
		if text == "" {
			return action.Render{}, nil
		}
		return d.callback.Resolve(text), nil
	case action.MoveUp, action.MoveDown, action.PageUp, action.PageDown:
		return action.Render{}, nil
	}
	return nil, nil
}

func (d *InputDialog) View(width, height int) string {
	line := render(styles.DialogCursor, "> ") + render(styles.DialogBody, string(d.buffer)+"▏")
	return placeDialog(width, height, d.title, line)
}

func (d *InputDialog) HelpText() string {
	return "enter: accept  esc: cancel"
}

// ConfirmDialog asks a yes/no question. Yes is the default answer; up/down
// toggle, y and n answer immediately.
type ConfirmDialog struct {
	title    string
	message  string
	callback action.ConfirmCallback
	yes      bool
}

func newConfirmDialog(title, message string, callback action.ConfirmCallback) *ConfirmDialog {
	return &ConfirmDialog{title: title, message: message, callback: callback, yes: true}
}

func (d *ConfirmDialog) HandleAction(act action.Action) (action.Action, error) {
	switch a := act.(type) {
	case action.Character:
		switch a.Rune {
		case 'y', 'Y':
			return d.callback.Resolve(), nil
		case 'n', 'N':
			return action.CloseDialog{}, nil
		}
		return action.Render{}, nil
	case action.MoveUp, action.MoveDown:
		d.yes = !d.yes
		return action.Render{}, nil
	case action.Enter:
		if d.yes {
			return d.callback.Resolve(), nil
		}
		return action.CloseDialog{}, nil
	case action.Escape:
		return action.CloseDialog{}, nil
	case action.Backspace, action.PageUp, action.PageDown:
		return action.Render{}, nil
	}
	return nil, nil
}

func (d *ConfirmDialog) View(width, height int) string {
	choice := func(label string, active bool) string {
		if active {
			return render(styles.DialogChoiceActive, "[ "+label+" ]")
		}
		return render(styles.DialogChoice, "  "+label+"  ")
	}
	lines := []string{
		render(styles.DialogBody, d.message),
		"",
		choice("Yes", d.yes) + "  " + choice("No", !d.yes),
	}
	return placeDialog(width, height, d.title, lines...)
}

func (d *ConfirmDialog) HelpText() string {
	return "y/n  enter: accept  esc: cancel"
}

func placeDialog(width, height int, title string, body ...string) string {
	content := render(styles.DialogTitle, title)
	for _, line := range body {
		content += "\n" + line
	}
	box := content
	if styles.DialogBox != nil {
		box = styles.DialogBox.Render(content)
	}
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
