// Package table pads multi-column labels so picker rows line up without a
// full table widget.
package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads every cell to the widest entry of its column and joins the
// columns with a two-space gap. Columns beyond the alignments list are
// left-aligned. Trailing whitespace is trimmed from each row so the result
// embeds cleanly in a styled line.
func Format(rows [][]string, alignments ...Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			pad := strings.Repeat(" ", widths[c]-len([]rune(cell)))
			if alignmentFor(alignments, c) == AlignRight {
				cells[c] = pad + cell
			} else {
				cells[c] = cell + pad
			}
		}
		out[i] = strings.TrimRight(strings.Join(cells, columnGap), " ")
	}
	return out
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func alignmentFor(alignments []Alignment, column int) Alignment {
	if column < len(alignments) {
		return alignments[column]
	}
	return AlignLeft
}
