package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/tessera/pkg/backend"
)

const tabWidth = 4

// Cursor writes styled text into a window, one grapheme cluster per
// column step. The position may move outside the window; writes there
// are clipped but the position keeps advancing so multi-part writes
// stay aligned.
type Cursor struct {
	win   Window
	x, y  int
	style backend.Style
	wrap  bool
}

// NewCursor returns a cursor at the window origin using the window's
// default style.
func NewCursor(win Window) *Cursor {
	return &Cursor{win: win, style: win.DefaultStyle()}
}

// SetPosition moves the cursor to window-relative (x, y).
func (c *Cursor) SetPosition(x, y int) {
	c.x, c.y = x, y
}

// Position returns the current window-relative position.
func (c *Cursor) Position() (x, y int) {
	return c.x, c.y
}

// SetStyle changes the style for subsequent writes.
func (c *Cursor) SetStyle(s backend.Style) {
	c.style = s
}

// Style returns the current writing style.
func (c *Cursor) Style() backend.Style {
	return c.style
}

// SetWrapping controls whether writes wrap at the right window edge.
// Without wrapping, text past the edge is clipped.
func (c *Cursor) SetWrapping(on bool) {
	c.wrap = on
}

// WriteString writes s cluster by cluster. '\n' moves to the start of
// the next line; '\t' advances to the next tab stop.
func (c *Cursor) WriteString(s string) {
	width, _ := c.win.Size()

	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)

		switch cluster {
		case "\n", "\r\n":
			c.newline()
			continue
		case "\r":
			continue
		case "\t":
			next := (c.x/tabWidth + 1) * tabWidth
			for c.x < next {
				c.put(" ", 1, width)
			}
			continue
		}

		cw := runewidth.StringWidth(cluster)
		if cw == 0 {
			continue
		}
		c.put(cluster, cw, width)
	}
}

// WriteStyled writes s in the given style without changing the
// cursor's own style.
func (c *Cursor) WriteStyled(s string, style backend.Style) {
	saved := c.style
	c.style = style
	c.WriteString(s)
	c.style = saved
}

// Write implements io.Writer. It never fails; clipping is silent.
func (c *Cursor) Write(p []byte) (int, error) {
	c.WriteString(string(p))
	return len(p), nil
}

func (c *Cursor) put(cluster string, cw, width int) {
	if c.wrap && c.x+cw > width && c.x > 0 {
		c.newline()
	}
	c.win.SetCell(c.x, c.y, cluster, c.style)
	c.x += cw
}

func (c *Cursor) newline() {
	c.x = 0
	c.y++
}
