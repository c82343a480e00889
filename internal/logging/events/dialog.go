package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type DialogTracer struct{}

var Dialog = DialogTracer{}

func (DialogTracer) OpenInput(title string) {
	logging.Trace("dialog.input.open", map[string]interface{}{"title": title})
}

func (DialogTracer) OpenConfirm(title string) {
	logging.Trace("dialog.confirm.open", map[string]interface{}{"title": title})
}

func (DialogTracer) Resolve(kind string) {
	logging.Trace("dialog.resolve", map[string]interface{}{"action": kind})
}

func (DialogTracer) Cancel() {
	logging.Trace("dialog.cancel", nil)
}
