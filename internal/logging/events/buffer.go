package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type BufferTracer struct{}

var Buffer = BufferTracer{}

func (BufferTracer) Open(socket string, bufnr int) {
	logging.Trace("buffer.open", map[string]interface{}{"socket": socket, "bufnr": bufnr})
}

func (BufferTracer) Refresh(sockets, buffers int) {
	logging.Trace("buffer.refresh", map[string]interface{}{"sockets": sockets, "buffers": buffers})
}
