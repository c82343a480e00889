package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/app"
	"github.com/atomicstack/tmux-switchboard/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath = "TMUX_SWITCHBOARD_SOCKET"
	envWidth      = "TMUX_SWITCHBOARD_WIDTH"
	envHeight     = "TMUX_SWITCHBOARD_HEIGHT"
	envRootView   = "TMUX_SWITCHBOARD_ROOT"
	envDiffWidth  = "TMUX_SWITCHBOARD_DIFF_WIDTH"
	envDiffHeight = "TMUX_SWITCHBOARD_DIFF_HEIGHT"
	envVerbose    = "TMUX_SWITCHBOARD_VERBOSE"
	envTrace      = "TMUX_SWITCHBOARD_TRACE"
	envLogFile    = "TMUX_SWITCHBOARD_LOG_FILE"
)

const (
	defaultRootView   = "sessions"
	defaultDiffWidth  = 90
	defaultDiffHeight = 90
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-switchboard", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	rootView := fs.String("root", envOrDefault(env, envRootView, defaultRootView), "picker shown at startup (sessions|commands|files|worktrees|buffers)")
	diffWidth := fs.Int("diff-width", envOrInt(env, envDiffWidth, defaultDiffWidth), "git diff popup width as a percentage of the client")
	diffHeight := fs.Int("diff-height", envOrInt(env, envDiffHeight, defaultDiffHeight), "git diff popup height as a percentage of the client")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *diffWidth < 1 || *diffWidth > 100 {
		return Config{}, fmt.Errorf("diff-width must be 1-100 (got %d)", *diffWidth)
	}
	if *diffHeight < 1 || *diffHeight > 100 {
		return Config{}, fmt.Errorf("diff-height must be 1-100 (got %d)", *diffHeight)
	}
	if !validRootView(*rootView) {
		return Config{}, fmt.Errorf("unknown root view %q (expected one of %s)", *rootView, strings.Join(ui.ViewIDs(), "|"))
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			RootView:   *rootView,
			DiffWidth:  *diffWidth,
			DiffHeight: *diffHeight,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":     *socket,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"root":       *rootView,
			"diffWidth":  strconv.Itoa(*diffWidth),
			"diffHeight": strconv.Itoa(*diffHeight),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func validRootView(name string) bool {
	for _, id := range ui.ViewIDs() {
		if name == id {
			return true
		}
	}
	return false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
