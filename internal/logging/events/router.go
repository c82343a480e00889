package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type RouterTracer struct{}

var Router = RouterTracer{}

func (RouterTracer) Dispatch(kind string) {
	logging.Trace("router.dispatch", map[string]interface{}{"action": kind})
}

func (RouterTracer) FollowUp(from, to string) {
	logging.Trace("router.followup", map[string]interface{}{"from": from, "to": to})
}

// Loop records a follow-up action dropped by the same-kind re-production
// guard.
func (RouterTracer) Loop(kind string) {
	logging.Trace("router.loop_guard", map[string]interface{}{"action": kind})
}

func (RouterTracer) ViewChange(view string) {
	logging.Trace("router.view", map[string]interface{}{"view": view})
}

func (RouterTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("router.error", map[string]interface{}{"action": kind, "error": err.Error()})
}
