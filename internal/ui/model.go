package ui

import (
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/git"
	"github.com/atomicstack/tmux-switchboard/internal/logging/events"
	"github.com/atomicstack/tmux-switchboard/internal/nvim"
	"github.com/atomicstack/tmux-switchboard/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionManager is the slice of the tmux collaborator the router consumes.
type SessionManager interface {
	ListSessions() ([]tmux.Session, error)
	CurrentSession() (string, error)
	SwitchSession(name string) error
	CreateSession(name, path string) error
	KillSession(name string) error
	Popup(shellCmd string, widthPct, heightPct int) error
}

// WorktreeManager is the slice of the git collaborator the router consumes.
type WorktreeManager interface {
	ListWorktrees() ([]git.Worktree, error)
	CreateWorktree(branch string) (string, error)
	DeleteWorktree(path string) error
	MergeToMain(path, branch string) error
}

// Editor is the slice of the nvim collaborator the router consumes.
type Editor interface {
	ListBuffers() (map[string][]nvim.Buffer, error)
	OpenFile(path string) error
	OpenBuffer(socket string, bufnr int) error
}

type viewID string

const (
	viewSessions  viewID = "sessions"
	viewCommands  viewID = "commands"
	viewFiles     viewID = "files"
	viewWorktrees viewID = "worktrees"
	viewBuffers   viewID = "buffers"
)

// ViewIDs returns every addressable root view name.
func ViewIDs() []string {
	return []string{
		string(viewSessions),
		string(viewCommands),
		string(viewFiles),
		string(viewWorktrees),
		string(viewBuffers),
	}
}

// Options configures a Model. Worktrees is nil when the working directory is
// not inside a git repository; the palette and router degrade accordingly.
type Options struct {
	Sessions   SessionManager
	Worktrees  WorktreeManager
	Editor     Editor
	WorkDir    string
	RootView   string
	Width      int
	Height     int
	DiffWidth  int
	DiffHeight int
}

// Model is the Bubble Tea model and the action router. It owns the active
// view, the modal dialog slot, and the collaborator handles; every state
// transition runs through dispatch.
type Model struct {
	sessions  SessionManager
	worktrees WorktreeManager
	editor    Editor
	workdir   string

	views  map[viewID]Component
	active viewID
	dialog Component

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	diffWidth  int
	diffHeight int

	status   string
	quitting bool
	err      error
}

// NewModel builds the router with the session picker live and the root view
// activated. A failure to populate the initial view is fatal; later
// activation refreshes degrade to a status-line message.
func NewModel(opts Options) (*Model, error) {
	m := &Model{
		sessions:   opts.Sessions,
		worktrees:  opts.Worktrees,
		editor:     opts.Editor,
		workdir:    opts.WorkDir,
		views:      map[viewID]Component{},
		diffWidth:  opts.DiffWidth,
		diffHeight: opts.DiffHeight,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	root := viewID(opts.RootView)
	if root == "" {
		root = viewSessions
	}
	if err := m.activate(viewSessions); err != nil {
		return nil, err
	}
	if root != viewSessions {
		if err := m.activate(root); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Err returns the fatal error that ended the run loop, if any.
func (m *Model) Err() error {
	return m.err
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. Key events become actions; the
// dispatch loop runs to quiescence before the next render.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
	case tea.KeyMsg:
		act := actionForKey(msg)
		if act == nil {
			return m, nil
		}
		m.status = ""
		m.dispatch(act)
		if m.err != nil || m.quitting {
			return m, tea.Quit
		}
	}
	return m, nil
}

// dispatch drains an explicit queue of actions. Follow-ups go to the back of
// the queue rather than recursing, and a per-chain type set drops any action
// kind the chain already processed, so a handler that re-produces its own
// kind cannot loop. A failed action that was produced by resolving a dialog
// restores that dialog before the error becomes fatal.
func (m *Model) dispatch(root action.Action) {
	queue := []action.Action{root}
	seen := map[reflect.Type]bool{}
	var resolved Component
	for len(queue) > 0 {
		act := queue[0]
		queue = queue[1:]
		t := reflect.TypeOf(act)
		if seen[t] {
			events.Router.Loop(fmt.Sprintf("%T", act))
			continue
		}
		seen[t] = true
		follow, err := m.handle(act, &resolved)
		if err != nil {
			if resolved != nil {
				m.dialog = resolved
			}
			events.Router.Error(fmt.Sprintf("%T", act), err)
			m.err = err
			return
		}
		if follow == nil {
			continue
		}
		if _, ok := follow.(action.Render); ok {
			continue
		}
		events.Router.FollowUp(fmt.Sprintf("%T", act), fmt.Sprintf("%T", follow))
		queue = append(queue, follow)
	}
}

// handle routes one action. An open dialog receives every action
// exclusively: even actions it ignores are consumed, so quit keys and view
// switches cannot reach past it. Otherwise the global table runs before the
// active view. A dialog that resolves is cleared before its follow-up runs;
// resolved remembers it for error restoration.
func (m *Model) handle(act action.Action, resolved *Component) (action.Action, error) {
	events.Router.Dispatch(fmt.Sprintf("%T", act))
	if m.dialog != nil {
		follow, err := m.dialog.HandleAction(act)
		if err != nil {
			return nil, err
		}
		switch follow.(type) {
		case nil:
			return nil, nil
		case action.Render:
			return follow, nil
		case action.CloseDialog:
			m.dialog = nil
			events.Dialog.Cancel()
			return action.Render{}, nil
		default:
			*resolved = m.dialog
			m.dialog = nil
			events.Dialog.Resolve(fmt.Sprintf("%T", follow))
			return follow, nil
		}
	}
	if follow, handled, err := m.handleGlobal(act); handled {
		return follow, err
	}
	view := m.views[m.active]
	if view == nil {
		return nil, nil
	}
	return view.HandleAction(act)
}

func (m *Model) handleGlobal(act action.Action) (action.Action, bool, error) {
	switch a := act.(type) {
	case action.Quit:
		m.quitting = true
		return nil, true, nil
	case action.Render:
		return nil, true, nil
	case action.GoBack:
		if m.active == viewSessions {
			return action.Quit{}, true, nil
		}
		m.softActivate(viewSessions)
		return action.Render{}, true, nil
	case action.SwitchSession:
		events.Session.Switch(a.Name)
		if err := m.sessions.SwitchSession(a.Name); err != nil {
			return nil, true, err
		}
		return action.Quit{}, true, nil
	case action.CreateSession:
		events.Session.Create(a.Name, a.Path)
		if err := m.sessions.CreateSession(a.Name, a.Path); err != nil {
			return nil, true, err
		}
		return action.SwitchSession{Name: a.Name}, true, nil
	case action.KillSession:
		events.Session.Kill(a.Name)
		if err := m.sessions.KillSession(a.Name); err != nil {
			return nil, true, err
		}
		m.refreshSessions()
		return action.Render{}, true, nil
	case action.OpenFile:
		events.File.Open(a.Path)
		if err := m.editor.OpenFile(a.Path); err != nil {
			m.status = err.Error()
			return action.Render{}, true, nil
		}
		return action.Quit{}, true, nil
	case action.OpenBuffer:
		events.Buffer.Open(a.Socket, a.Bufnr)
		if err := m.editor.OpenBuffer(a.Socket, a.Bufnr); err != nil {
			m.status = err.Error()
			return action.Render{}, true, nil
		}
		return action.Quit{}, true, nil
	case action.SwitchWorktree:
		follow, err := m.switchWorktree(a.Path)
		return follow, true, err
	case action.CreateWorktree:
		if m.worktrees == nil {
			return nil, true, fmt.Errorf("not inside a git repository")
		}
		path, err := m.worktrees.CreateWorktree(a.Branch)
		if err != nil {
			return nil, true, err
		}
		events.Worktree.Create(a.Branch, path)
		return action.SwitchWorktree{Path: path}, true, nil
	case action.DeleteWorktree:
		if m.worktrees == nil {
			return nil, true, fmt.Errorf("not inside a git repository")
		}
		if err := m.worktrees.DeleteWorktree(a.Path); err != nil {
			return nil, true, err
		}
		events.Worktree.Delete(a.Path)
		m.refreshWorktrees()
		return action.Render{}, true, nil
	case action.MergeWorktree:
		follow, err := m.mergeWorktree(a.Path)
		return follow, true, err
	case action.ExecuteCommand:
		follow, err := m.executeCommand(a.Command)
		return follow, true, err
	case action.ShowInput:
		m.dialog = newInputDialog(a.Title, a.Callback)
		events.Dialog.OpenInput(a.Title)
		return action.Render{}, true, nil
	case action.ShowConfirm:
		m.dialog = newConfirmDialog(a.Title, a.Message, a.Callback)
		events.Dialog.OpenConfirm(a.Title)
		return action.Render{}, true, nil
	case action.CloseDialog:
		m.dialog = nil
		return action.Render{}, true, nil
	case action.ShowSessionPicker:
		m.softActivate(viewSessions)
		return action.Render{}, true, nil
	case action.ShowCommandPalette:
		m.softActivate(viewCommands)
		return action.Render{}, true, nil
	case action.ShowFilePicker:
		m.softActivate(viewFiles)
		return action.Render{}, true, nil
	case action.ShowWorktreePicker:
		m.softActivate(viewWorktrees)
		return action.Render{}, true, nil
	case action.ShowBufferPicker:
		m.softActivate(viewBuffers)
		return action.Render{}, true, nil
	case action.ShowGitDiff:
		// the diff popup is cosmetic, its failure never ends the run
		if err := m.sessions.Popup("git diff HEAD | delta", m.diffWidth, m.diffHeight); err != nil {
			m.status = err.Error()
		}
		return action.Render{}, true, nil
	}
	return nil, false, nil
}

// switchWorktree reuses an existing session named after the worktree
// directory or creates one rooted there.
func (m *Model) switchWorktree(path string) (action.Action, error) {
	name := filepath.Base(path)
	events.Worktree.Switch(path)
	sessions, err := m.sessions.ListSessions()
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if s.Name == name {
			return action.SwitchSession{Name: name}, nil
		}
	}
	return action.CreateSession{Name: name, Path: path}, nil
}

// mergeWorktree resolves the branch behind a worktree path and merges it
// into the main checkout.
func (m *Model) mergeWorktree(path string) (action.Action, error) {
	if m.worktrees == nil {
		return nil, fmt.Errorf("not inside a git repository")
	}
	worktrees, err := m.worktrees.ListWorktrees()
	if err != nil {
		return nil, err
	}
	for _, w := range worktrees {
		if w.Path != path {
			continue
		}
		if w.IsMain {
			return nil, fmt.Errorf("refusing to merge the main worktree")
		}
		if err := m.worktrees.MergeToMain(w.Path, w.Branch); err != nil {
			return nil, err
		}
		events.Worktree.Merge(w.Path, w.Branch)
		m.refreshWorktrees()
		return action.Render{}, nil
	}
	return nil, fmt.Errorf("no worktree at %s", path)
}

// executeCommand is the second level of dispatch: each palette command maps
// onto a state transition expressed as another action.
func (m *Model) executeCommand(cmd action.PaletteCommand) (action.Action, error) {
	switch cmd {
	case action.CommandOpenFile:
		return action.ShowFilePicker{}, nil
	case action.CommandNewSession:
		return action.ShowInput{Title: "New session name", Callback: action.InputCreateSession}, nil
	case action.CommandKillSession:
		name, err := m.sessions.CurrentSession()
		if err != nil {
			return nil, err
		}
		return action.ShowConfirm{
			Title:    "Kill session",
			Message:  fmt.Sprintf("Kill session %q?", name),
			Callback: action.ConfirmCallback{Kind: action.ConfirmKillSession, Name: name},
		}, nil
	case action.CommandListWorktrees:
		return action.ShowWorktreePicker{}, nil
	case action.CommandNewWorktree:
		return action.ShowInput{Title: "New worktree branch", Callback: action.InputCreateWorktree}, nil
	case action.CommandGitDiff:
		return action.ShowGitDiff{}, nil
	}
	return action.Render{}, nil
}

// activate makes id the active view, constructing it on first use. The
// session and buffer listings go stale quickly, so those refresh on every
// activation; the rest are built once and retained.
func (m *Model) activate(id viewID) error {
	view, ok := m.views[id]
	if !ok {
		built, err := m.buildView(id)
		if err != nil {
			return err
		}
		m.views[id] = built
		view = built
	}
	switch id {
	case viewSessions:
		sessions, err := m.sessions.ListSessions()
		if err != nil {
			return err
		}
		view.(*SessionPicker).SetSessions(sessions)
		events.Session.Refresh(len(sessions))
	case viewBuffers:
		bySocket, err := m.editor.ListBuffers()
		if err != nil {
			return err
		}
		total := 0
		for _, buffers := range bySocket {
			total += len(buffers)
		}
		view.(*BufferPicker).SetBuffers(bySocket)
		events.Buffer.Refresh(len(bySocket), total)
	}
	m.active = id
	events.Router.ViewChange(string(id))
	return nil
}

// softActivate is activate with refresh failures demoted to the status line.
func (m *Model) softActivate(id viewID) {
	if err := m.activate(id); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) buildView(id viewID) (Component, error) {
	switch id {
	case viewSessions:
		return newSessionPicker(), nil
	case viewCommands:
		return newCommandPalette(m.worktrees != nil), nil
	case viewFiles:
		return newFilePicker(m.workdir)
	case viewWorktrees:
		if m.worktrees == nil {
			return nil, fmt.Errorf("not inside a git repository")
		}
		picker := newWorktreePicker()
		worktrees, err := m.worktrees.ListWorktrees()
		if err != nil {
			return nil, err
		}
		picker.SetWorktrees(worktrees)
		events.Worktree.Refresh(len(worktrees))
		return picker, nil
	case viewBuffers:
		return newBufferPicker(), nil
	}
	return nil, fmt.Errorf("unknown view %q", id)
}

// refreshSessions reloads the session picker after a mutation without
// changing the active view; a listing failure lands on the status line.
func (m *Model) refreshSessions() {
	picker, ok := m.views[viewSessions].(*SessionPicker)
	if !ok {
		return
	}
	sessions, err := m.sessions.ListSessions()
	if err != nil {
		m.status = err.Error()
		return
	}
	picker.SetSessions(sessions)
	events.Session.Refresh(len(sessions))
}

// refreshWorktrees reloads the worktree picker after a mutation; a listing
// failure leaves the stale view in place with a status note.
func (m *Model) refreshWorktrees() {
	picker, ok := m.views[viewWorktrees].(*WorktreePicker)
	if !ok || m.worktrees == nil {
		return
	}
	worktrees, err := m.worktrees.ListWorktrees()
	if err != nil {
		m.status = err.Error()
		return
	}
	picker.SetWorktrees(worktrees)
	events.Worktree.Refresh(len(worktrees))
}
