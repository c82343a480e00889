// Package fuzzy implements the incremental filterable list every picker is
// built on. The list owns the full item collection, the query, the derived
// match indices, and a selection cursor that is always valid for the current
// filtered view.
package fuzzy

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-switchboard/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var styles = theme.Default()

// List is an ordered, fuzzy-filterable, cursor-navigable collection. Items
// are never mutated, only replaced wholesale via SetItems. An item is
// retained by a non-empty query iff the query is a case-insensitive
// subsequence of the item's search text; retained items keep their insertion
// order. There is deliberately no scoring or ranking: re-ordering matches
// would make the displayed list jump around as the query grows.
type List[T any] struct {
	title   string
	display func(T) string
	search  func(T) string

	full    []T
	query   []rune
	matched []int // indices into full, insertion order
	cursor  int   // index into matched; -1 when matched is empty
	offset  int   // viewport offset into matched
}

// New constructs an empty list. display produces the rendered label for an
// item and search the text the filter runs against.
func New[T any](title string, display, search func(T) string) *List[T] {
	return &List[T]{
		title:   title,
		display: display,
		search:  search,
		cursor:  -1,
	}
}

// SetTitle replaces the heading rendered above the list.
func (l *List[T]) SetTitle(title string) {
	l.title = title
}

// SetItems replaces the backing collection, re-filters against the current
// query, and resets the cursor to the first match (or none when empty).
func (l *List[T]) SetItems(items []T) {
	l.full = append([]T(nil), items...)
	l.applyFilter()
	l.resetCursor()
}

// PushRune appends one character to the query. Character-driven filtering
// always resets the selection to the top match; this is a UX policy, not an
// artifact.
func (l *List[T]) PushRune(r rune) {
	l.query = append(l.query, r)
	l.applyFilter()
	l.resetCursor()
}

// PopRune removes the last query character. Like every query edit it resets
// the cursor, even when the query was already empty.
func (l *List[T]) PopRune() {
	if len(l.query) > 0 {
		l.query = l.query[:len(l.query)-1]
	}
	l.applyFilter()
	l.resetCursor()
}

// ClearQuery empties the query so every item is retained again. The cursor
// resets unconditionally, matching the other query edits.
func (l *List[T]) ClearQuery() {
	l.query = nil
	l.applyFilter()
	l.resetCursor()
}

// Query returns the current filter text.
func (l *List[T]) Query() string {
	return string(l.query)
}

// Len returns the number of items in the filtered view.
func (l *List[T]) Len() int {
	return len(l.matched)
}

// Total returns the size of the unfiltered collection.
func (l *List[T]) Total() int {
	return len(l.full)
}

// Cursor returns the selection index within the filtered view, or -1 when
// the filtered view is empty.
func (l *List[T]) Cursor() int {
	return l.cursor
}

// Selected returns the item under the cursor in the filtered view.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l.cursor < 0 || l.cursor >= len(l.matched) {
		return zero, false
	}
	return l.full[l.matched[l.cursor]], true
}

// MoveUp moves the cursor one entry up. No wraparound.
func (l *List[T]) MoveUp() {
	l.moveBy(-1)
}

// MoveDown moves the cursor one entry down. No wraparound.
func (l *List[T]) MoveDown() {
	l.moveBy(1)
}

// PageUp moves the cursor up by n entries, clamped to the first.
func (l *List[T]) PageUp(n int) {
	l.moveBy(-n)
}

// PageDown moves the cursor down by n entries, clamped to the last.
func (l *List[T]) PageDown(n int) {
	l.moveBy(n)
}

func (l *List[T]) moveBy(delta int) {
	if len(l.matched) == 0 {
		l.cursor = -1
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.matched) {
		l.cursor = len(l.matched) - 1
	}
}

// applyFilter recomputes matched from the query as typed: spaces are query
// characters like any other.
func (l *List[T]) applyFilter() {
	query := string(l.query)
	l.matched = l.matched[:0]
	for i, item := range l.full {
		if query == "" || fuzzy.MatchNormalizedFold(query, l.search(item)) {
			l.matched = append(l.matched, i)
		}
	}
}

func (l *List[T]) resetCursor() {
	if len(l.matched) == 0 {
		l.cursor = -1
		l.offset = 0
		return
	}
	l.cursor = 0
	l.offset = 0
}

// ensureVisible adjusts the viewport offset so the cursor stays on screen.
func (l *List[T]) ensureVisible(maxVisible int) {
	if len(l.matched) == 0 || maxVisible <= 0 {
		l.offset = 0
		return
	}
	maxOffset := len(l.matched) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
	if l.cursor >= 0 && l.cursor < l.offset {
		l.offset = l.cursor
	}
	if upper := l.offset + maxVisible - 1; l.cursor > upper {
		l.offset = l.cursor - maxVisible + 1
		if l.offset > maxOffset {
			l.offset = maxOffset
		}
	}
}

// View renders the title, the visible slice of filtered entries with the
// selected entry marked, and the query prompt line.
func (l *List[T]) View(width, height int) string {
	lines := make([]string, 0, height)
	title := l.title
	if len(l.matched) != len(l.full) {
		title = fmt.Sprintf("%s (%d/%d)", l.title, len(l.matched), len(l.full))
	}
	lines = append(lines, render(styles.Header, truncateText(title, width)))

	maxVisible := height - 2 // title + prompt line
	if maxVisible < 1 {
		maxVisible = 1
	}
	l.ensureVisible(maxVisible)
	if len(l.matched) == 0 {
		msg := "(no entries)"
		if len(l.query) > 0 {
			msg = fmt.Sprintf("No matches for %q", string(l.query))
		}
		lines = append(lines, render(styles.Info, truncateText(msg, width)))
	} else {
		end := l.offset + maxVisible
		if end > len(l.matched) {
			end = len(l.matched)
		}
		for i := l.offset; i < end; i++ {
			lines = append(lines, l.itemLine(i, width))
		}
	}
	lines = append(lines, l.promptLine(width))
	return strings.Join(lines, "\n")
}

func (l *List[T]) itemLine(idx, width int) string {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == l.cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	label := l.display(l.full[l.matched[idx]])
	text := " " + label
	if width > 1 {
		text = truncateText(text, width-1)
		if pad := width - 1 - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return render(indicatorStyle, indicator) + render(lineStyle, text)
}

func (l *List[T]) promptLine(width int) string {
	prompt := render(styles.FilterPrompt, "» ")
	if len(l.query) == 0 {
		return prompt + render(styles.FilterPlaceholder, truncateText("(type to filter)", width-2))
	}
	return prompt + render(styles.Filter, truncateText(string(l.query), width-2))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
