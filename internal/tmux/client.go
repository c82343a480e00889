// Package tmux is the session-manager collaborator: every interaction with
// the tmux server goes through Client. Queries run over a gotmuxcc
// control-mode connection; commands the control client does not cover
// (new-session with a start directory, display-popup) shell out to the tmux
// binary with the same socket.
package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Client talks to one tmux server, addressed by socket path. The zero-value
// socket path means the default server.
type Client struct {
	socketPath string
}

// NewClient binds a client to the given socket path.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// SocketPath returns the socket the client was bound to.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// ListSessions returns every session on the server in server order, with a
// display label built from TMUX_SWITCHBOARD_SESSION_FORMAT when set.
func (c *Client) ListSessions() ([]Session, error) {
	client, err := newTmux(c.socketPath)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	sessions, err := client.ListSessions()
	if err != nil {
		return nil, err
	}
	labels := fetchSessionLabels(client, os.Getenv("TMUX_SWITCHBOARD_SESSION_FORMAT"))
	paths := fetchSessionPaths(client)
	current := currentSessionName(client)
	attached := realAttachedClients(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		label := labels[s.Name]
		if label == "" {
			label = defaultLabelForSession(s)
		}
		out = append(out, Session{
			Name:     s.Name,
			Label:    label,
			Path:     paths[s.Name],
			Attached: len(attached[s.Name]) > 0,
			Current:  s.Name == current,
			Windows:  s.Windows,
		})
	}
	return out, nil
}

// CurrentSession returns the name of the session the launching client is
// attached to.
func (c *Client) CurrentSession() (string, error) {
	client, err := newTmux(c.socketPath)
	if err != nil {
		return "", err
	}
	defer client.Close()
	name := currentSessionName(client)
	if name == "" {
		return "", fmt.Errorf("unable to determine current session")
	}
	return name, nil
}

// CurrentPath returns the working directory of the launching pane.
func (c *Client) CurrentPath() (string, error) {
	client, err := newTmux(c.socketPath)
	if err != nil {
		return "", err
	}
	defer client.Close()
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	path, err := client.DisplayMessage(target, "#{pane_current_path}")
	if err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("unable to determine current path")
	}
	return path, nil
}

// SwitchSession points the launching client at the named session.
func (c *Client) SwitchSession(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("session name required")
	}
	client, err := newTmux(c.socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.SwitchClient(&gotmux.SwitchClientOptions{TargetSession: trimmed})
}

// CreateSession creates a detached session. path, when non-empty, becomes
// the session's start directory; gotmuxcc has no option for that, so the
// path variant shells out.
func (c *Client) CreateSession(name, path string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("session name required")
	}
	if path == "" {
		client, err := newTmux(c.socketPath)
		if err != nil {
			return err
		}
		defer client.Close()
		_, err = client.NewSession(&gotmux.SessionOptions{Name: trimmed})
		return err
	}
	args := append(baseArgs(c.socketPath), "new-session", "-d", "-s", trimmed, "-c", path)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		return fmt.Errorf("new-session %s: %w", trimmed, err)
	}
	return nil
}

// KillSession terminates the named session.
func (c *Client) KillSession(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("session name required")
	}
	client, err := newTmux(c.socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	session, err := client.GetSessionByName(trimmed)
	if err != nil {
		return err
	}
	handle := newSessionHandle(session)
	if handle == nil {
		return fmt.Errorf("session %s not found", trimmed)
	}
	return handle.Kill()
}

// ResolveSocketPath determines the server socket: explicit flag, then the
// TMUX_SWITCHBOARD_SOCKET override, then the socket embedded in $TMUX, then
// the conventional per-user default path.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_SWITCHBOARD_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func fetchSessionLabels(client tmuxClient, envFormat string) map[string]string {
	labelExpr := strings.TrimSpace(envFormat)
	if labelExpr == "" {
		labelExpr = defaultSessionFormat
	}
	lines, err := client.ListSessionsFormat(fmt.Sprintf("#{session_name}\t%s", labelExpr))
	if err != nil {
		return map[string]string{}
	}
	labels := make(map[string]string, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		label := ""
		if len(parts) > 1 {
			label = strings.TrimSpace(parts[1])
		}
		labels[name] = label
	}
	return labels
}

func fetchSessionPaths(client tmuxClient) map[string]string {
	lines, err := client.ListSessionsFormat("#{session_name}\t#{session_path}")
	if err != nil {
		return map[string]string{}
	}
	paths := make(map[string]string, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		paths[parts[0]] = strings.TrimSpace(parts[1])
	}
	return paths
}

func defaultLabelForSession(s *gotmux.Session) string {
	label := fmt.Sprintf("%d window", s.Windows)
	if s.Windows != 1 {
		label += "s"
	}
	if s.Attached > 0 {
		label += " (attached)"
	}
	return label
}

// realAttachedClients maps session names to non-control-mode client names.
// The control-mode connection this package opens would otherwise make every
// inspected session look attached.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && !c.ControlMode && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
