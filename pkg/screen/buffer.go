// Package screen provides the cell surface widgets paint into: a Buffer
// of styled grapheme clusters, clipped Window views over it, a Cursor
// for writing styled text, and a Screen tying a buffer to a backend.
//
// There is no dirty tracking: a frame starts from a blank buffer, the
// widget tree repaints everything visible, and Present flushes every
// cell. Layout reacts to resizes for free because nothing is cached.
package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/backend"
)

// Cell is one screen cell. Content holds a single grapheme cluster; a
// cluster wider than one column occupies its leading cell, and the
// cells it shadows hold empty Content.
type Cell struct {
	Content string
	Style   backend.Style
}

// Width returns the cluster's width in columns (0 for shadow cells).
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Content)
}

// Buffer is a dense grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer filled with blanks in the default style.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{
		cells:  make([]Cell, w*h),
		width:  w,
		height: h,
	}
	b.Reset(backend.DefaultStyle())
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Reset blanks every cell with the given style.
func (b *Buffer) Reset(style backend.Style) {
	blank := Cell{Content: " ", Style: style}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Content: " "}
	}
	return b.cells[y*b.width+x]
}

// Set writes one grapheme cluster at (x, y). A two-column cluster also
// claims the cell to its right; if either position currently holds half
// of another wide cluster, the orphaned half is blanked so no torn
// clusters remain. A wide cluster that does not fit at the right edge
// is replaced by a blank.
func (b *Buffer) Set(x, y int, cluster string, style backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	w := runewidth.StringWidth(cluster)
	if w > 1 && x+1 >= b.width {
		cluster = " "
		w = 1
	}

	b.clearTorn(x, y)
	idx := y*b.width + x
	b.cells[idx] = Cell{Content: cluster, Style: style}

	if w > 1 {
		b.clearTorn(x+1, y)
		b.cells[idx+1] = Cell{Content: "", Style: style}
	}
}

// clearTorn repairs the other half of any wide cluster occupying (x, y).
func (b *Buffer) clearTorn(x, y int) {
	idx := y*b.width + x
	c := b.cells[idx]
	switch {
	case c.Content == "" && x > 0:
		// Shadow cell: blank the wide head to the left.
		b.cells[idx-1].Content = " "
	case c.Width() > 1 && x+1 < b.width:
		// Wide head: blank its shadow to the right.
		b.cells[idx+1].Content = " "
	}
}

// Fill sets every cell of r (clipped to the buffer) to the cluster.
func (b *Buffer) Fill(r Rect, cluster string, style backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, cluster, style)
		}
	}
}

// Row renders row y as text, for assertions and debugging.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteString(b.cells[y*b.width+x].Content)
	}
	return sb.String()
}

// String renders the whole buffer, one line per row.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
