package ui

import (
	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/format/table"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
)

type paletteRow struct {
	command action.PaletteCommand
	label   string
}

// CommandPalette lists the second-level commands. Outside a git repository
// the git-dependent entries are omitted.
type CommandPalette struct {
	list *fuzzy.List[paletteRow]
}

func newCommandPalette(inRepo bool) *CommandPalette {
	commands := action.PaletteCommands()
	if !inRepo {
		commands = action.NonGitPaletteCommands()
	}
	rows := make([][]string, len(commands))
	for i, c := range commands {
		rows[i] = []string{c.DisplayName(), c.Description()}
	}
	padded := table.Format(rows, table.AlignLeft, table.AlignLeft)
	items := make([]paletteRow, len(commands))
	for i, c := range commands {
		items[i] = paletteRow{command: c, label: padded[i]}
	}
	p := &CommandPalette{
		list: fuzzy.New("commands",
			func(r paletteRow) string { return r.label },
			func(r paletteRow) string { return r.command.SearchText() },
		),
	}
	p.list.SetItems(items)
	return p
}

func (p *CommandPalette) HandleAction(act action.Action) (action.Action, error) {
	if _, ok := act.(action.Enter); ok {
		row, ok := p.list.Selected()
		if !ok {
			return action.Render{}, nil
		}
		return action.ExecuteCommand{Command: row.command}, nil
	}
	if follow, ok := handleListNav(p.list, act); ok {
		return follow, nil
	}
	return nil, nil
}

func (p *CommandPalette) View(width, height int) string {
	return p.list.View(width, height)
}

func (p *CommandPalette) HelpText() string {
	return "enter: run  esc: back"
}
