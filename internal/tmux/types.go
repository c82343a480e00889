package tmux

import (
	"os/exec"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session describes one tmux session as shown in the session picker.
type Session struct {
	Name     string
	Label    string
	Path     string
	Attached bool
	Current  bool
	Windows  int
}

const defaultSessionFormat = "#{session_windows} windows#{?session_attached, (attached),}"

// Package-level seams so unit tests can substitute a fake control-mode
// client or capture exec invocations.
var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}

	newSessionHandle = func(s *gotmux.Session) sessionHandle {
		if s == nil {
			return nil
		}
		return &realSessionHandle{session: s}
	}
)

type sessionHandle interface {
	Kill() error
}

type realSessionHandle struct {
	session *gotmux.Session
}

func (h *realSessionHandle) Kill() error {
	return h.session.Kill()
}

// tmuxClient is the slice of the gotmuxcc control-mode API this package
// consumes.
type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListSessionsFormat(string) ([]string, error)
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	GetSessionByName(string) (*gotmux.Session, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	KillServer() error
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}
