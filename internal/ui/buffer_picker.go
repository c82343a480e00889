package ui

import (
	"path/filepath"
	"sort"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/format/table"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
	"github.com/atomicstack/tmux-switchboard/internal/nvim"
)

type bufferRow struct {
	socket string
	buffer nvim.Buffer
	label  string
}

// BufferPicker lists the buffers of every reachable nvim instance. Enter
// focuses the buffer in its owning editor.
type BufferPicker struct {
	list *fuzzy.List[bufferRow]
}

func newBufferPicker() *BufferPicker {
	return &BufferPicker{
		list: fuzzy.New("buffers",
			func(r bufferRow) string { return r.label },
			func(r bufferRow) string { return r.buffer.SearchText() },
		),
	}
}

// SetBuffers flattens the per-socket listing in stable socket order.
func (p *BufferPicker) SetBuffers(bySocket map[string][]nvim.Buffer) {
	sockets := make([]string, 0, len(bySocket))
	for socket := range bySocket {
		sockets = append(sockets, socket)
	}
	sort.Strings(sockets)
	var flat []bufferRow
	var rows [][]string
	for _, socket := range sockets {
		for _, buf := range bySocket[socket] {
			flat = append(flat, bufferRow{socket: socket, buffer: buf})
			rows = append(rows, []string{buf.DisplayName(), filepath.Base(socket)})
		}
	}
	padded := table.Format(rows, table.AlignLeft, table.AlignLeft)
	for i := range flat {
		flat[i].label = padded[i]
	}
	p.list.SetItems(flat)
}

func (p *BufferPicker) HandleAction(act action.Action) (action.Action, error) {
	if _, ok := act.(action.Enter); ok {
		row, ok := p.list.Selected()
		if !ok {
			return action.Render{}, nil
		}
		return action.OpenBuffer{Socket: row.socket, Bufnr: row.buffer.Bufnr}, nil
	}
	if follow, ok := handleListNav(p.list, act); ok {
		return follow, nil
	}
	return nil, nil
}

func (p *BufferPicker) View(width, height int) string {
	return p.list.View(width, height)
}

func (p *BufferPicker) HelpText() string {
	return "enter: open  esc: back"
}
