package events

import "github.com/atomicstack/tmux-switchboard/internal/logging"

type FileTracer struct{}

var File = FileTracer{}

func (FileTracer) Open(path string) {
	logging.Trace("file.open", map[string]interface{}{"path": path})
}

func (FileTracer) Navigate(dir string) {
	logging.Trace("file.navigate", map[string]interface{}{"dir": dir})
}
