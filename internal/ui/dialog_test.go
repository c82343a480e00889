package ui

import (
	"testing"

	"github.com/atomicstack/tmux-switchboard/internal/action"
)

func typeText(t *testing.T, d Component, text string) {
	t.Helper()
	for _, r := range text {
		if _, err := d.HandleAction(action.Character{Rune: r}); err != nil {
			t.Fatalf("typing %q: %v", r, err)
		}
	}
}

func TestInputDialogCollectsAndResolves(t *testing.T) {
	d := newInputDialog("New session name", action.InputCreateSession)
	typeText(t, d, "projx")
	if _, err := d.HandleAction(action.Backspace{}); err != nil {
		t.Fatal(err)
	}
	if d.Text() != "proj" {
		t.Fatalf("unexpected buffer %q", d.Text())
	}

	follow, err := d.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	create, ok := follow.(action.CreateSession)
	if !ok || create.Name != "proj" {
		t.Fatalf("unexpected resolution %#v", follow)
	}
}

func TestInputDialogEnterIgnoresBlankText(t *testing.T) {
	d := newInputDialog("New worktree branch", action.InputCreateWorktree)
	typeText(t, d, "   ")
	follow, err := d.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := follow.(action.Render); !ok {
		t.Fatalf("blank enter should be inert, got %#v", follow)
	}
}

func TestInputDialogEscapeClearsThenCloses(t *testing.T) {
	d := newInputDialog("New session name", action.InputCreateSession)
	typeText(t, d, "abc")

	follow, _ := d.HandleAction(action.Escape{})
	if _, ok := follow.(action.Render); !ok || d.Text() != "" {
		t.Fatalf("first escape should clear, got %#v text=%q", follow, d.Text())
	}
	follow, _ = d.HandleAction(action.Escape{})
	if _, ok := follow.(action.CloseDialog); !ok {
		t.Fatalf("second escape should close, got %#v", follow)
	}
}

func TestInputDialogIgnoresNavigation(t *testing.T) {
	d := newInputDialog("New session name", action.InputCreateSession)
	for _, act := range []action.Action{action.MoveUp{}, action.MoveDown{}, action.PageUp{}, action.PageDown{}} {
		follow, err := d.HandleAction(act)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := follow.(action.Render); !ok {
			t.Fatalf("%T should be consumed without effect, got %#v", act, follow)
		}
	}
	if follow, _ := d.HandleAction(action.Quit{}); follow != nil {
		t.Fatalf("quit should fall through, got %#v", follow)
	}
}

func TestConfirmDialogDefaultsToYes(t *testing.T) {
	cb := action.ConfirmCallback{Kind: action.ConfirmKillSession, Name: "dev"}
	d := newConfirmDialog("Kill session", "Kill session \"dev\"?", cb)

	follow, err := d.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	kill, ok := follow.(action.KillSession)
	if !ok || kill.Name != "dev" {
		t.Fatalf("unexpected resolution %#v", follow)
	}
}

func TestConfirmDialogToggleAndCancel(t *testing.T) {
	cb := action.ConfirmCallback{Kind: action.ConfirmDeleteWorktree, Path: "/src/app-x"}
	d := newConfirmDialog("Delete worktree", "Delete worktree /src/app-x?", cb)

	if _, err := d.HandleAction(action.MoveDown{}); err != nil {
		t.Fatal(err)
	}
	follow, err := d.HandleAction(action.Enter{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := follow.(action.CloseDialog); !ok {
		t.Fatalf("toggled-to-no enter should cancel, got %#v", follow)
	}
}

func TestConfirmDialogShortcutKeys(t *testing.T) {
	cb := action.ConfirmCallback{Kind: action.ConfirmMergeWorktree, Path: "/src/app-x"}
	d := newConfirmDialog("Merge worktree", "Merge?", cb)

	follow, _ := d.HandleAction(action.Character{Rune: 'n'})
	if _, ok := follow.(action.CloseDialog); !ok {
		t.Fatalf("n should cancel, got %#v", follow)
	}

	d = newConfirmDialog("Merge worktree", "Merge?", cb)
	follow, _ = d.HandleAction(action.Character{Rune: 'y'})
	merge, ok := follow.(action.MergeWorktree)
	if !ok || merge.Path != "/src/app-x" {
		t.Fatalf("y should resolve, got %#v", follow)
	}

	d = newConfirmDialog("Merge worktree", "Merge?", cb)
	follow, _ = d.HandleAction(action.Character{Rune: 'x'})
	if _, ok := follow.(action.Render); !ok {
		t.Fatalf("other characters should be swallowed, got %#v", follow)
	}
}
