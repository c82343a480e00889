package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type WorktreeTracer struct{}

var Worktree = WorktreeTracer{}

func (WorktreeTracer) Switch(path string) {
	logging.Trace("worktree.switch", map[string]interface{}{"path": path})
}

func (WorktreeTracer) Create(branch, path string) {
	logging.Trace("worktree.create", map[string]interface{}{"branch": branch, "path": path})
}

func (WorktreeTracer) Delete(path string) {
	logging.Trace("worktree.delete", map[string]interface{}{"path": path})
}

func (WorktreeTracer) Merge(path, branch string) {
	logging.Trace("worktree.merge", map[string]interface{}{"path": path, "branch": branch})
}

func (WorktreeTracer) Refresh(count int) {
	logging.Trace("worktree.refresh", map[string]interface{}{"count": count})
}
