package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.RootView != "sessions" {
		t.Fatalf("unexpected default root view %q", cfg.App.RootView)
	}
	if cfg.App.DiffWidth != 90 || cfg.App.DiffHeight != 90 {
		t.Fatalf("unexpected default diff size %dx%d", cfg.App.DiffWidth, cfg.App.DiffHeight)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected default viewport %dx%d", cfg.App.Width, cfg.App.Height)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"TMUX_SWITCHBOARD_SOCKET=/env/sock",
		"TMUX_SWITCHBOARD_ROOT=files",
		"TMUX_SWITCHBOARD_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"-socket", "/flag/sock", "-root", "worktrees"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SocketPath != "/flag/sock" {
		t.Fatalf("flag should win over environment, got %q", cfg.App.SocketPath)
	}
	if cfg.App.RootView != "worktrees" {
		t.Fatalf("flag should win over environment, got %q", cfg.App.RootView)
	}
	if !cfg.Logging.Trace {
		t.Fatal("trace environment variable should apply")
	}
}

func TestLoadArgsValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"negative width", []string{"-width", "-1"}, "width must be >= 0"},
		{"negative height", []string{"-height", "-5"}, "height must be >= 0"},
		{"diff width too large", []string{"-diff-width", "150"}, "diff-width must be 1-100"},
		{"diff height zero", []string{"-diff-height", "0"}, "diff-height must be 1-100"},
		{"unknown root view", []string{"-root", "panes"}, "unknown root view"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadArgsRecordsFlagsForTracing(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "120", "-verbose"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["width"] != "120" || cfg.Flags["verbose"] != "true" {
		t.Fatalf("unexpected flag snapshot %v", cfg.Flags)
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("unexpected args copy %v", cfg.Args)
	}
}
