// Package events provides typed tracer façades over the shared trace log so
// call sites stay terse and event names stay consistent.
package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) Fatal(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.fatal", map[string]interface{}{"error": err.Error()})
}
