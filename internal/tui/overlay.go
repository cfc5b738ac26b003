package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/eshop/internal/shell"
)

// layer is a rendered block drawn over the shell at a cell position.
type layer struct {
	block    string
	col, row int
}

// drawerLayer pins the temporary drawer to the left edge of the body.
func drawerLayer(nav string) layer {
	return layer{block: nav}
}

// menuLayer drops the menu just below the top bar, right-aligned under the
// more button. Unknown anchors centre it.
func (a *App) menuLayer(anchor shell.Anchor, menu string) layer {
	w := blockWidth(menu)
	col := max(0, (a.width-w)/2)
	if anchor == anchorMore {
		col = max(0, a.width-w-1)
	}
	return layer{block: menu, col: col, row: 1}
}

// compose stamps layers onto base in order. Rows outside base or past height
// are dropped; every touched row is padded to width.
func compose(base string, width, height int, layers ...layer) string {
	canvas := rows(base)
	for _, l := range layers {
		blockRows := rows(l.block)
		w := blockWidth(l.block)
		for i, line := range blockRows {
			r := l.row + i
			if r < 0 || r >= len(canvas) || r >= height {
				continue
			}
			canvas[r] = stampRow(canvas[r], fitWidth(line, w), l.col, width)
		}
	}
	return strings.Join(canvas, "\n")
}

// stampRow replaces the cells of row starting at col with cell.
func stampRow(row, cell string, col, width int) string {
	row = fitWidth(row, width)
	head := ansi.Truncate(row, col, "")
	head = fitWidth(head, col)
	end := col + ansi.StringWidth(cell)
	if width <= 0 {
		return head + cell
	}
	tail := ansi.TruncateLeft(row, end, "")
	if gap := width - end - ansi.StringWidth(tail); gap > 0 {
		tail = strings.Repeat(" ", gap) + tail
	}
	return head + cell + tail
}

// rows splits rendered output into lines, never returning an empty slice.
func rows(s string) []string {
	return strings.Split(s, "\n")
}

func blockWidth(s string) int {
	w := 0
	for _, line := range rows(s) {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// fitWidth pads s with spaces up to width cells. Wider strings are returned
// unchanged.
func fitWidth(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
