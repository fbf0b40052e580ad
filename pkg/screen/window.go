package screen

import "github.com/odvcencio/tessera/pkg/backend"

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles (empty if disjoint).
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Window is a clipped rectangular view into a Buffer. Windows are
// values: sub-dividing or restyling never affects the parent, and a
// window can never write outside the bounds it was given.
type Window struct {
	buf  *Buffer
	rect Rect
	def  backend.Style
}

// NewWindow returns a window covering the whole buffer.
func NewWindow(buf *Buffer) Window {
	w, h := buf.Size()
	return Window{
		buf:  buf,
		rect: Rect{Width: w, Height: h},
		def:  backend.DefaultStyle(),
	}
}

// Size returns the window dimensions.
func (w Window) Size() (width, height int) {
	return w.rect.Width, w.rect.Height
}

// Sub returns a child window for r (window-relative), clipped so it
// cannot exceed this window's bounds. The default style is inherited.
func (w Window) Sub(r Rect) Window {
	abs := Rect{X: w.rect.X + r.X, Y: w.rect.Y + r.Y, Width: r.Width, Height: r.Height}
	return Window{buf: w.buf, rect: abs.Intersect(w.rect), def: w.def}
}

// WithDefaultStyle returns the same window with a new default style.
func (w Window) WithDefaultStyle(s backend.Style) Window {
	w.def = s
	return w
}

// DefaultStyle returns the style blanks and fresh cursors start from.
func (w Window) DefaultStyle() backend.Style {
	return w.def
}

// SetCell writes one grapheme cluster at window-relative (x, y).
// Writes outside the window are dropped.
func (w Window) SetCell(x, y int, cluster string, style backend.Style) {
	if x < 0 || x >= w.rect.Width || y < 0 || y >= w.rect.Height {
		return
	}
	w.buf.Set(w.rect.X+x, w.rect.Y+y, cluster, style)
}

// CellAt reads the cell at window-relative (x, y).
func (w Window) CellAt(x, y int) Cell {
	if x < 0 || x >= w.rect.Width || y < 0 || y >= w.rect.Height {
		return Cell{Content: " "}
	}
	return w.buf.Get(w.rect.X+x, w.rect.Y+y)
}

// Fill sets every cell to the cluster in the given style.
func (w Window) Fill(cluster string, style backend.Style) {
	w.buf.Fill(w.rect, cluster, style)
}

// Clear blanks the window with its default style.
func (w Window) Clear() {
	w.Fill(" ", w.def)
}
