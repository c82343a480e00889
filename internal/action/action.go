// Package action defines the closed set of semantic events routed through the
// application dispatcher. Actions are values: each variant carries everything
// needed to execute it, so a dispatched action never references mutable UI
// state. Adding a variant forces every dispatch site to be revisited via the
// exhaustive type switches in internal/ui.
package action

// Action is the sealed union of dispatchable events. Only types in this
// package implement it.
type Action interface {
	isAction()
}

// Control actions.
type (
	// Quit stops the run loop without a further render.
	Quit struct{}
	// GoBack leaves the active view for the session picker.
	GoBack struct{}
	// Render requests a redraw without any state change.
	Render struct{}
)

// Navigation actions.
type (
	MoveUp   struct{}
	MoveDown struct{}
	PageUp   struct{}
	PageDown struct{}
)

// Raw input actions.
type (
	Character struct{ Rune rune }
	Backspace struct{}
	Enter     struct{}
	Escape    struct{}
)

// Session actions.
type (
	SwitchSession struct{ Name string }
	// CreateSession creates and then switches to a session. Path is the
	// start directory; empty means the tmux default.
	CreateSession struct {
		Name string
		Path string
	}
	KillSession struct{ Name string }
)

// File and editor actions.
type (
	OpenFile   struct{ Path string }
	OpenBuffer struct {
		Socket string
		Bufnr  int
	}
)

// Worktree actions.
type (
	SwitchWorktree struct{ Path string }
	CreateWorktree struct{ Branch string }
	DeleteWorktree struct{ Path string }
	MergeWorktree  struct{ Path string }
)

// ExecuteCommand dispatches a palette command to the second-level handler.
type ExecuteCommand struct{ Command PaletteCommand }

// Dialog actions.
type (
	ShowInput struct {
		Title    string
		Callback InputCallback
	}
	ShowConfirm struct {
		Title    string
		Message  string
		Callback ConfirmCallback
	}
	CloseDialog struct{}
)

// View switching actions.
type (
	ShowSessionPicker  struct{}
	ShowCommandPalette struct{}
	ShowFilePicker     struct{}
	ShowWorktreePicker struct{}
	ShowBufferPicker   struct{}
)

// ShowGitDiff runs the external diff viewer in a transient tmux popup.
type ShowGitDiff struct{}

func (Quit) isAction()               {}
func (GoBack) isAction()             {}
func (Render) isAction()             {}
func (MoveUp) isAction()             {}
func (MoveDown) isAction()           {}
func (PageUp) isAction()             {}
func (PageDown) isAction()           {}
func (Character) isAction()          {}
func (Backspace) isAction()          {}
func (Enter) isAction()              {}
func (Escape) isAction()             {}
func (SwitchSession) isAction()      {}
func (CreateSession) isAction()      {}
func (KillSession) isAction()        {}
func (OpenFile) isAction()           {}
func (OpenBuffer) isAction()         {}
func (SwitchWorktree) isAction()     {}
func (CreateWorktree) isAction()     {}
func (DeleteWorktree) isAction()     {}
func (MergeWorktree) isAction()      {}
func (ExecuteCommand) isAction()     {}
func (ShowInput) isAction()          {}
func (ShowConfirm) isAction()        {}
func (CloseDialog) isAction()        {}
func (ShowSessionPicker) isAction()  {}
func (ShowCommandPalette) isAction() {}
func (ShowFilePicker) isAction()     {}
func (ShowWorktreePicker) isAction() {}
func (ShowBufferPicker) isAction()   {}
func (ShowGitDiff) isAction()        {}

// InputCallback identifies what an input dialog's text resolves into.
type InputCallback int

const (
	InputCreateSession InputCallback = iota
	InputCreateWorktree
)

// Resolve converts the accumulated dialog text into the domain action the
// callback stands for.
func (c InputCallback) Resolve(text string) Action {
	switch c {
	case InputCreateWorktree:
		return CreateWorktree{Branch: text}
	default:
		return CreateSession{Name: text}
	}
}

// ConfirmKind enumerates confirmation dialog outcomes.
type ConfirmKind int

const (
	ConfirmKillSession ConfirmKind = iota
	ConfirmDeleteWorktree
	ConfirmMergeWorktree
)

// ConfirmCallback pairs a confirmation kind with the target it applies to.
type ConfirmCallback struct {
	Kind ConfirmKind
	// Name is the session target for ConfirmKillSession.
	Name string
	// Path is the worktree target for the worktree kinds.
	Path string
}

// Resolve returns the domain action produced by answering yes.
func (c ConfirmCallback) Resolve() Action {
	switch c.Kind {
	case ConfirmDeleteWorktree:
		return DeleteWorktree{Path: c.Path}
	case ConfirmMergeWorktree:
		return MergeWorktree{Path: c.Path}
	default:
		return KillSession{Name: c.Name}
	}
}
