// Package git is the version-control collaborator. All operations shell out
// to the git binary; a Client can only be constructed at a path inside a
// repository.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Worktree describes one entry from `git worktree list`.
type Worktree struct {
	Path       string
	Branch     string
	IsMain     bool
	HasChanges bool
}

// runGit is a package-level seam so tests can capture or fake invocations.
var runGit = func(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return string(out), nil
}

// Client runs git operations rooted at one repository.
type Client struct {
	root string
}

// IsRepo reports whether path is inside a git work tree. It never fails:
// any error means "not a repository".
func IsRepo(path string) bool {
	out, err := runGit(path, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// Open binds a client to the repository containing path.
func Open(path string) (*Client, error) {
	out, err := runGit(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s", path)
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return nil, fmt.Errorf("not a git repository: %s", path)
	}
	return &Client{root: root}, nil
}

// Root returns the top-level directory of the current worktree.
func (c *Client) Root() string {
	return c.root
}

// ListWorktrees returns every worktree of the repository. The first entry
// reported by git is the main worktree. Dirty state comes from a
// status --porcelain probe per worktree; a probe failure leaves the flag
// unset rather than failing the listing.
func (c *Client) ListWorktrees() ([]Worktree, error) {
	out, err := runGit(c.root, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	worktrees := parseWorktreeList(out)
	for i := range worktrees {
		status, err := runGit(worktrees[i].Path, "status", "--porcelain")
		if err != nil {
			continue
		}
		worktrees[i].HasChanges = strings.TrimSpace(status) != ""
	}
	return worktrees, nil
}

// parseWorktreeList decodes `git worktree list --porcelain` output: stanzas
// separated by blank lines, each starting with a `worktree <path>` line.
func parseWorktreeList(out string) []Worktree {
	var worktrees []Worktree
	var current *Worktree
	flush := func() {
		if current != nil && current.Path != "" {
			current.IsMain = len(worktrees) == 0
			worktrees = append(worktrees, *current)
		}
		current = nil
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch "):
			if current != nil {
				ref := strings.TrimPrefix(line, "branch ")
				current.Branch = strings.TrimPrefix(ref, "refs/heads/")
			}
		case line == "detached":
			if current != nil {
				current.Branch = "(detached)"
			}
		}
	}
	flush()
	return worktrees
}

// CreateWorktree makes a worktree for a new branch in a sibling directory
// of the main worktree and returns its path. Fails when the branch already
// exists or the target directory is occupied.
func (c *Client) CreateWorktree(branch string) (string, error) {
	trimmed := strings.TrimSpace(branch)
	if trimmed == "" {
		return "", fmt.Errorf("branch name required")
	}
	path := c.worktreePath(trimmed)
	if _, err := runGit(c.root, "worktree", "add", "-b", trimmed, path); err != nil {
		return "", err
	}
	return path, nil
}

// worktreePath derives the checkout directory for a branch: a sibling of
// the main worktree named <repo>-<branch>, with path separators in the
// branch name flattened.
func (c *Client) worktreePath(branch string) string {
	safe := strings.ReplaceAll(branch, "/", "-")
	name := filepath.Base(c.root) + "-" + safe
	return filepath.Join(filepath.Dir(c.root), name)
}

// DeleteWorktree removes the worktree at path, discarding local changes.
func (c *Client) DeleteWorktree(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("worktree path required")
	}
	_, err := runGit(c.root, "worktree", "remove", "--force", trimmed)
	return err
}

// MergeToMain merges the worktree's branch into the main worktree's
// checked-out branch, then removes the worktree and deletes the branch.
// A merge conflict aborts before anything is removed.
func (c *Client) MergeToMain(path, branch string) error {
	if strings.TrimSpace(branch) == "" {
		return fmt.Errorf("branch name required")
	}
	if _, err := runGit(c.root, "merge", branch); err != nil {
		return err
	}
	if err := c.DeleteWorktree(path); err != nil {
		return err
	}
	_, err := runGit(c.root, "branch", "-d", branch)
	return err
}
