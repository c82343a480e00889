// Package nvim is the editor-integration collaborator. It discovers running
// nvim instances by their server sockets and drives them through the
// --server/--remote command-line interface. Every operation fails softly: an
// unreachable editor yields an empty result, never a fatal error.
package nvim

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/tmux"
)

// Buffer describes one listed buffer of a running nvim instance.
type Buffer struct {
	Bufnr int    `json:"bufnr"`
	Name  string `json:"name"`
}

// DisplayName renders the label shown in the buffer picker.
func (b Buffer) DisplayName() string {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Sprintf("[No Name] #%d", b.Bufnr)
	}
	return b.Name
}

// SearchText is the string the buffer picker's filter matches against.
func (b Buffer) SearchText() string {
	return filepath.Base(b.Name)
}

// listedBuffersExpr asks nvim for its listed buffers as JSON.
const listedBuffersExpr = `json_encode(map(filter(range(1, bufnr("$")), "buflisted(v:val)"), '{"bufnr": v:val, "name": bufname(v:val)}'))`

// Seams for tests: socket discovery and remote invocation.
var (
	discoverSockets = defaultDiscoverSockets

	runRemote = func(socket string, args ...string) (string, error) {
		full := append([]string{"--server", socket}, args...)
		out, err := exec.Command("nvim", full...).Output()
		if err != nil {
			return "", fmt.Errorf("nvim --server %s: %w", socket, err)
		}
		return string(out), nil
	}
)

// Client drives nvim instances reachable from this machine. The tmux client
// provides the fallback when no editor is running.
type Client struct {
	tmux *tmux.Client
}

// NewClient constructs the editor collaborator.
func NewClient(t *tmux.Client) *Client {
	return &Client{tmux: t}
}

// ListBuffers aggregates the listed buffers of every reachable nvim
// instance, keyed by server socket. Unreachable sockets are skipped.
func (c *Client) ListBuffers() (map[string][]Buffer, error) {
	result := make(map[string][]Buffer)
	for _, socket := range discoverSockets() {
		out, err := runRemote(socket, "--remote-expr", listedBuffersExpr)
		if err != nil {
			continue
		}
		var buffers []Buffer
		if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &buffers); err != nil {
			continue
		}
		if len(buffers) > 0 {
			result[socket] = buffers
		}
	}
	return result, nil
}

// OpenFile opens path in the first reachable nvim instance, or in a new
// tmux window running nvim when no instance is reachable.
func (c *Client) OpenFile(path string) error {
	for _, socket := range discoverSockets() {
		if _, err := runRemote(socket, "--remote", path); err == nil {
			return nil
		}
	}
	if c.tmux == nil {
		return nil
	}
	return c.tmux.NewWindow(fmt.Sprintf("nvim %q", path))
}

// OpenBuffer makes bufnr current in the nvim instance behind socket.
func (c *Client) OpenBuffer(socket string, bufnr int) error {
	_, err := runRemote(socket, "--remote-expr", fmt.Sprintf("nvim_set_current_buf(%d)", bufnr))
	return err
}

// defaultDiscoverSockets looks for nvim server sockets in the conventional
// runtime directories ($XDG_RUNTIME_DIR/nvim.*.0, $TMPDIR/nvim.<user>/*/nvim.*.0).
func defaultDiscoverSockets() []string {
	var roots []string
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		roots = append(roots, runtimeDir)
	}
	tmpDir := os.TempDir()
	if entries, err := os.ReadDir(tmpDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() && strings.HasPrefix(entry.Name(), "nvim.") {
				roots = append(roots, filepath.Join(tmpDir, entry.Name()))
			}
		}
	}
	var sockets []string
	for _, root := range roots {
		direct, _ := filepath.Glob(filepath.Join(root, "nvim.*.0"))
		nested, _ := filepath.Glob(filepath.Join(root, "*", "nvim.*.0"))
		sockets = append(sockets, direct...)
		sockets = append(sockets, nested...)
	}
	return sockets
}
