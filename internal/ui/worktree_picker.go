package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/format/table"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
	"github.com/atomicstack/tmux-switchboard/internal/git"
)

type worktreeRow struct {
	worktree git.Worktree
	label    string
}

// WorktreePicker lists git worktrees. Enter switches to the worktree's
// session; with an empty filter d deletes, m merges into main, n prompts for
// a new branch. The main worktree can be neither deleted nor merged.
type WorktreePicker struct {
	list *fuzzy.List[worktreeRow]
	note string
}

func newWorktreePicker() *WorktreePicker {
	return &WorktreePicker{
		list: fuzzy.New("worktrees",
			func(r worktreeRow) string { return r.label },
			func(r worktreeRow) string { return r.worktree.Branch + " " + filepath.Base(r.worktree.Path) },
		),
	}
}

// SetWorktrees replaces the listing, aligning branch, path, and markers.
func (p *WorktreePicker) SetWorktrees(worktrees []git.Worktree) {
	rows := make([][]string, len(worktrees))
	for i, w := range worktrees {
		var markers []string
		if w.IsMain {
			markers = append(markers, "(main)")
		}
		if w.HasChanges {
			markers = append(markers, "(dirty)")
		}
		rows[i] = []string{w.Branch, w.Path, strings.Join(markers, " ")}
	}
	padded := table.Format(rows, table.AlignLeft, table.AlignLeft, table.AlignLeft)
	items := make([]worktreeRow, len(worktrees))
	for i, w := range worktrees {
		items[i] = worktreeRow{worktree: w, label: padded[i]}
	}
	p.list.SetItems(items)
}

func (p *WorktreePicker) HandleAction(act action.Action) (action.Action, error) {
	p.note = ""
	if c, ok := act.(action.Character); ok && p.list.Query() == "" {
		switch c.Rune {
		case 'd':
			row, ok := p.list.Selected()
			if !ok {
				return action.Render{}, nil
			}
			if row.worktree.IsMain {
				p.note = "the main worktree cannot be deleted"
				return action.Render{}, nil
			}
			msg := fmt.Sprintf("Delete worktree %s?", row.worktree.Path)
			if row.worktree.HasChanges {
				msg = fmt.Sprintf("Worktree %s has uncommitted changes. Delete anyway?", row.worktree.Path)
			}
			return action.ShowConfirm{
				Title:    "Delete worktree",
				Message:  msg,
				Callback: action.ConfirmCallback{Kind: action.ConfirmDeleteWorktree, Path: row.worktree.Path},
			}, nil
		case 'm':
			row, ok := p.list.Selected()
			if !ok {
				return action.Render{}, nil
			}
			if row.worktree.IsMain {
				p.note = "the main worktree cannot be merged into itself"
				return action.Render{}, nil
			}
			return action.ShowConfirm{
				Title:    "Merge worktree",
				Message:  fmt.Sprintf("Merge branch %q into main and remove its worktree?", row.worktree.Branch),
				Callback: action.ConfirmCallback{Kind: action.ConfirmMergeWorktree, Path: row.worktree.Path},
			}, nil
		case 'n':
			return action.ShowInput{Title: "New worktree branch", Callback: action.InputCreateWorktree}, nil
		}
	}
	if _, ok := act.(action.Enter); ok {
		row, ok := p.list.Selected()
		if !ok {
			return action.Render{}, nil
		}
		return action.SwitchWorktree{Path: row.worktree.Path}, nil
	}
	if follow, ok := handleListNav(p.list, act); ok {
		return follow, nil
	}
	return nil, nil
}

func (p *WorktreePicker) View(width, height int) string {
	if p.note == "" {
		return p.list.View(width, height)
	}
	return p.list.View(width, height-1) + "\n" + render(styles.Error, p.note)
}

func (p *WorktreePicker) HelpText() string {
	return "enter: switch  d: delete  m: merge  n: new  esc: back"
}
