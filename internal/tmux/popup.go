package tmux

import (
	"fmt"
	"strings"
)

// Popup runs a shell command inside a transient display-popup sized as a
// percentage of the client. The call blocks until the popup closes.
func (c *Client) Popup(shellCmd string, widthPct, heightPct int) error {
	trimmed := strings.TrimSpace(shellCmd)
	if trimmed == "" {
		return fmt.Errorf("popup command required")
	}
	if widthPct < 1 || widthPct > 100 || heightPct < 1 || heightPct > 100 {
		return fmt.Errorf("popup size must be 1-100%%, got %dx%d", widthPct, heightPct)
	}
	args := append(baseArgs(c.socketPath),
		"display-popup", "-E",
		"-w", fmt.Sprintf("%d%%", widthPct),
		"-h", fmt.Sprintf("%d%%", heightPct),
		trimmed,
	)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		return fmt.Errorf("display-popup: %w", err)
	}
	return nil
}

// NewWindow opens a new window in the current session running shellCmd.
func (c *Client) NewWindow(shellCmd string) error {
	trimmed := strings.TrimSpace(shellCmd)
	if trimmed == "" {
		return fmt.Errorf("window command required")
	}
	args := append(baseArgs(c.socketPath), "new-window", trimmed)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		return fmt.Errorf("new-window: %w", err)
	}
	return nil
}
