package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/git"
	"github.com/atomicstack/tmux-switchboard/internal/nvim"
	"github.com/atomicstack/tmux-switchboard/internal/tmux"
)

func testSessions() []tmux.Session {
	return []tmux.Session{
		{Name: "dev", Label: "2 windows (attached)", Current: true, Attached: true, Windows: 2},
		{Name: "scratch", Label: "1 window", Windows: 1},
	}
}

func testWorktrees() []git.Worktree {
	return []git.Worktree{
		{Path: "/src/app", Branch: "main", IsMain: true},
		{Path: "/src/app-feature-x", Branch: "feature/x", HasChanges: true},
		{Path: "/src/app-spike", Branch: "spike"},
	}
}

func TestSessionPickerEnterSwitches(t *testing.T) {
	p := newSessionPicker()
	p.SetSessions(testSessions())

	follow, err := p.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	sw, ok := follow.(action.SwitchSession)
	if !ok || sw.Name != "dev" {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
}

func TestSessionPickerHotkeysNeedEmptyQuery(t *testing.T) {
	p := newSessionPicker()
	p.SetSessions(testSessions())

	follow, _ := p.HandleAction(action.Character{Rune: 'd'})
	confirm, ok := follow.(action.ShowConfirm)
	if !ok || confirm.Callback.Name != "dev" {
		t.Fatalf("d should open a kill confirmation, got %#v", follow)
	}

	// with a query active, d is just another filter character
	p.HandleAction(action.Character{Rune: 's'})
	follow, _ = p.HandleAction(action.Character{Rune: 'd'})
	if _, ok := follow.(action.Render); !ok {
		t.Fatalf("d should filter while a query is active, got %#v", follow)
	}
}

func TestSessionPickerNewSessionHotkey(t *testing.T) {
	p := newSessionPicker()
	p.SetSessions(nil)

	follow, _ := p.HandleAction(action.Character{Rune: 'n'})
	input, ok := follow.(action.ShowInput)
	if !ok || input.Callback != action.InputCreateSession {
		t.Fatalf("n should open the new-session input, got %#v", follow)
	}
	if follow, _ = p.HandleAction(action.Character{Rune: 'd'}); follow == nil {
		t.Fatal("d on an empty list should still be consumed")
	} else if _, ok := follow.(action.Render); !ok {
		t.Fatalf("d on an empty list should be inert, got %#v", follow)
	}
}

func TestSessionPickerEscapeClearsQueryFirst(t *testing.T) {
	p := newSessionPicker()
	p.SetSessions(testSessions())
	p.HandleAction(action.Character{Rune: 's'})

	follow, _ := p.HandleAction(action.Escape{})
	if _, ok := follow.(action.Render); !ok {
		t.Fatalf("escape should clear the query, got %#v", follow)
	}
	follow, _ = p.HandleAction(action.Escape{})
	if _, ok := follow.(action.GoBack); !ok {
		t.Fatalf("escape with an empty query should go back, got %#v", follow)
	}
}

func TestWorktreePickerRejectsMainMutations(t *testing.T) {
	p := newWorktreePicker()
	p.SetWorktrees(testWorktrees())

	follow, _ := p.HandleAction(action.Character{Rune: 'd'})
	if _, ok := follow.(action.Render); !ok || p.note == "" {
		t.Fatalf("deleting main should be rejected with a note, got %#v note=%q", follow, p.note)
	}
	follow, _ = p.HandleAction(action.Character{Rune: 'm'})
	if _, ok := follow.(action.Render); !ok || p.note == "" {
		t.Fatalf("merging main should be rejected with a note, got %#v note=%q", follow, p.note)
	}
}

func TestWorktreePickerDirtyDeleteWarns(t *testing.T) {
	p := newWorktreePicker()
	p.SetWorktrees(testWorktrees())
	p.HandleAction(action.MoveDown{})

	follow, _ := p.HandleAction(action.Character{Rune: 'd'})
	confirm, ok := follow.(action.ShowConfirm)
	if !ok || confirm.Callback.Kind != action.ConfirmDeleteWorktree {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
	if !strings.Contains(confirm.Message, "uncommitted changes") {
		t.Fatalf("dirty worktree deletion should warn, got %q", confirm.Message)
	}
}

func TestWorktreePickerMergeAndEnter(t *testing.T) {
	p := newWorktreePicker()
	p.SetWorktrees(testWorktrees())
	p.HandleAction(action.MoveDown{})
	p.HandleAction(action.MoveDown{})

	follow, _ := p.HandleAction(action.Character{Rune: 'm'})
	confirm, ok := follow.(action.ShowConfirm)
	if !ok || confirm.Callback.Path != "/src/app-spike" {
		t.Fatalf("unexpected merge confirmation %#v", follow)
	}

	follow, _ = p.HandleAction(action.Enter{})
	sw, ok := follow.(action.SwitchWorktree)
	if !ok || sw.Path != "/src/app-spike" {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
}

func TestFilePickerListsAndNavigates(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	p, err := newFilePicker(root)
	if err != nil {
		t.Fatal(err)
	}
	// .. first, then directories, then files; hidden entries skipped
	p.HandleAction(action.MoveDown{})
	follow, err := p.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := follow.(action.Render); !ok {
		t.Fatalf("entering a directory should only redraw, got %#v", follow)
	}
	if p.Dir() != filepath.Join(root, "sub") {
		t.Fatalf("expected to be inside sub, got %q", p.Dir())
	}

	// back to the parent, then open the file
	follow, err = p.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Dir() != root {
		t.Fatalf("expected to be back at the root, got %q", p.Dir())
	}
	p.HandleAction(action.MoveDown{})
	p.HandleAction(action.MoveDown{})
	follow, err = p.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	open, ok := follow.(action.OpenFile)
	if !ok || open.Path != filepath.Join(root, "b.txt") {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
}

func TestFilePickerNavigationClearsQuery(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	p, err := newFilePicker(root)
	if err != nil {
		t.Fatal(err)
	}
	p.HandleAction(action.Character{Rune: 's'})
	if _, err := p.HandleAction(action.Enter{}); err != nil {
		t.Fatal(err)
	}
	if p.Dir() != filepath.Join(root, "sub") {
		t.Fatalf("filtered enter should navigate, got %q", p.Dir())
	}
	if q := p.list.Query(); q != "" {
		t.Fatalf("navigation should clear the query, got %q", q)
	}
}

func TestCommandPaletteFiltersGitCommands(t *testing.T) {
	inRepo := newCommandPalette(true)
	if inRepo.list.Total() != len(action.PaletteCommands()) {
		t.Fatalf("expected the full palette, got %d entries", inRepo.list.Total())
	}
	outside := newCommandPalette(false)
	if outside.list.Total() != len(action.NonGitPaletteCommands()) {
		t.Fatalf("expected the git-free palette, got %d entries", outside.list.Total())
	}

	follow, _ := inRepo.HandleAction(action.Enter{})
	exec, ok := follow.(action.ExecuteCommand)
	if !ok || exec.Command != action.CommandOpenFile {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
}

func TestBufferPickerFlattensSockets(t *testing.T) {
	p := newBufferPicker()
	p.SetBuffers(map[string][]nvim.Buffer{
		"/run/nvim.200.0": {{Bufnr: 1, Name: "/src/b.go"}},
		"/run/nvim.100.0": {{Bufnr: 2, Name: "/src/a.go"}},
	})
	if p.list.Total() != 2 {
		t.Fatalf("expected 2 buffers, got %d", p.list.Total())
	}

	// stable socket order: the 100 socket sorts first
	follow, _ := p.HandleAction(action.Enter{})
	open, ok := follow.(action.OpenBuffer)
	if !ok || open.Socket != "/run/nvim.100.0" || open.Bufnr != 2 {
		t.Fatalf("unexpected follow-up %#v", follow)
	}
}
