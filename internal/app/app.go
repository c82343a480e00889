package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tmux-switchboard/internal/git"
	"github.com/atomicstack/tmux-switchboard/internal/nvim"
	"github.com/atomicstack/tmux-switchboard/internal/tmux"
	"github.com/atomicstack/tmux-switchboard/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	RootView   string
	DiffWidth  int
	DiffHeight int
	Verbose    bool
}

// Run wires the collaborators together and executes the Bubble Tea program.
// The working directory comes from the launching tmux pane so the file and
// worktree pickers operate where the user invoked the popup, not where the
// binary happens to run.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	sessions := tmux.NewClient(socketPath)

	workdir, err := sessions.CurrentPath()
	if err != nil {
		workdir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
	}

	var worktrees ui.WorktreeManager
	if repo, openErr := git.Open(workdir); openErr == nil {
		worktrees = repo
	}

	model, err := ui.NewModel(ui.Options{
		Sessions:   sessions,
		Worktrees:  worktrees,
		Editor:     nvim.NewClient(sessions),
		WorkDir:    workdir,
		RootView:   cfg.RootView,
		Width:      cfg.Width,
		Height:     cfg.Height,
		DiffWidth:  cfg.DiffWidth,
		DiffHeight: cfg.DiffHeight,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return model.Err()
}
