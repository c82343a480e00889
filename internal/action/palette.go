package action

// PaletteCommand names an entry reachable from the command palette. The
// router maps each command onto a state transition through a second-level
// table rather than handling it inline.
type PaletteCommand int

const (
	CommandOpenFile PaletteCommand = iota
	CommandNewSession
	CommandKillSession
	CommandListWorktrees
	CommandNewWorktree
	CommandGitDiff
)

// PaletteCommands returns every palette command in display order.
func PaletteCommands() []PaletteCommand {
	return []PaletteCommand{
		CommandOpenFile,
		CommandNewSession,
		CommandKillSession,
		CommandListWorktrees,
		CommandNewWorktree,
		CommandGitDiff,
	}
}

// NonGitPaletteCommands returns the commands available outside a repository.
func NonGitPaletteCommands() []PaletteCommand {
	return []PaletteCommand{
		CommandOpenFile,
		CommandNewSession,
		CommandKillSession,
	}
}

func (c PaletteCommand) DisplayName() string {
	switch c {
	case CommandOpenFile:
		return "Open File"
	case CommandNewSession:
		return "New Session"
	case CommandKillSession:
		return "Kill Session"
	case CommandListWorktrees:
		return "List Worktrees"
	case CommandNewWorktree:
		return "New Worktree"
	case CommandGitDiff:
		return "Git Diff"
	default:
		return "Unknown"
	}
}

func (c PaletteCommand) Description() string {
	switch c {
	case CommandOpenFile:
		return "browse and open a file in nvim"
	case CommandNewSession:
		return "create a new tmux session"
	case CommandKillSession:
		return "kill the current tmux session"
	case CommandListWorktrees:
		return "pick a git worktree"
	case CommandNewWorktree:
		return "create a worktree for a new branch"
	case CommandGitDiff:
		return "show git diff in a popup"
	default:
		return ""
	}
}

// SearchText is the string the palette's fuzzy filter matches against.
func (c PaletteCommand) SearchText() string {
	return c.DisplayName() + " " + c.Description()
}
