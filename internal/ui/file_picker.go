package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/action"
	"github.com/atomicstack/tmux-switchboard/internal/fuzzy"
	"github.com/atomicstack/tmux-switchboard/internal/logging/events"
)

type fileEntry struct {
	name string
	path string
	dir  bool
}

// FilePicker browses the filesystem one directory at a time. Directories
// sort first, hidden entries are skipped, and ".." leads to the parent.
// Entering a directory clears the filter so the new listing starts unfiltered.
type FilePicker struct {
	dir  string
	list *fuzzy.List[fileEntry]
}

func newFilePicker(dir string) (*FilePicker, error) {
	p := &FilePicker{
		list: fuzzy.New(dir,
			func(e fileEntry) string {
				if e.dir {
					return e.name + "/"
				}
				return e.name
			},
			func(e fileEntry) string { return e.name },
		),
	}
	if err := p.load(dir); err != nil {
		return nil, err
	}
	return p, nil
}

// Dir returns the directory the picker currently lists.
func (p *FilePicker) Dir() string {
	return p.dir
}

func (p *FilePicker) load(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var dirs, files []fileEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		e := fileEntry{name: name, path: filepath.Join(dir, name), dir: entry.IsDir()}
		if e.dir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	items := make([]fileEntry, 0, len(dirs)+len(files)+1)
	if parent := filepath.Dir(dir); parent != dir {
		items = append(items, fileEntry{name: "..", path: parent, dir: true})
	}
	items = append(items, dirs...)
	items = append(items, files...)
	p.dir = dir
	p.list.SetTitle(displayDir(dir))
	p.list.ClearQuery()
	p.list.SetItems(items)
	return nil
}

func (p *FilePicker) HandleAction(act action.Action) (action.Action, error) {
	if _, ok := act.(action.Enter); ok {
		entry, ok := p.list.Selected()
		if !ok {
			return action.Render{}, nil
		}
		if entry.dir {
			if err := p.load(entry.path); err != nil {
				return nil, err
			}
			events.File.Navigate(entry.path)
			return action.Render{}, nil
		}
		return action.OpenFile{Path: entry.path}, nil
	}
	if follow, ok := handleListNav(p.list, act); ok {
		return follow, nil
	}
	return nil, nil
}

func (p *FilePicker) View(width, height int) string {
	return p.list.View(width, height)
}

func (p *FilePicker) HelpText() string {
	return "enter: open  esc: back"
}

// displayDir abbreviates the home directory prefix for the picker heading.
func displayDir(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+string(filepath.Separator)) {
		return "~" + dir[len(home):]
	}
	return dir
}
