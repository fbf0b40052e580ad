package widget

import "github.com/odvcencio/tessera/pkg/screen"

// Centered draws its content centered inside the allocated window,
// optionally capping how large the content may grow. Odd leftover
// space lands on the right and bottom.
type Centered struct {
	content Widget
	maxW    int
	maxH    int
}

// NewCentered wraps content with no size cap.
func NewCentered(content Widget) *Centered {
	return &Centered{content: content, maxW: Unbounded, maxH: Unbounded}
}

// SetMaxSize caps the content extent per axis. Values below 1 leave
// the axis uncapped.
func (c *Centered) SetMaxSize(w, h int) *Centered {
	c.maxW = Unbounded
	if w >= 1 {
		c.maxW = w
	}
	c.maxH = Unbounded
	if h >= 1 {
		c.maxH = h
	}
	return c
}

func (c *Centered) SpaceDemand() Demand2D {
	d := c.content.SpaceDemand()
	return Demand2D{
		Width:  capDemand(d.Width, c.maxW),
		Height: capDemand(d.Height, c.maxH),
	}
}

func capDemand(d Demand, limit int) Demand {
	return Demand{Min: min(d.Min, limit), Max: min(d.Max, limit)}
}

func (c *Centered) Draw(win screen.Window, hints RenderingHints) {
	w, h := win.Size()
	d := c.content.SpaceDemand()
	cw := innerExtent(w, c.maxW, d.Width)
	ch := innerExtent(h, c.maxH, d.Height)
	sub := win.Sub(screen.Rect{X: (w - cw) / 2, Y: (h - ch) / 2, Width: cw, Height: ch})
	sub.Clear()
	c.content.Draw(sub, hints)
}

// innerExtent sizes one axis of the content: as much as demanded and
// allowed, never more than allocated.
func innerExtent(allocated, limit int, d Demand) int {
	e := min(allocated, limit, d.Max)
	if e < d.Min {
		e = min(d.Min, allocated)
	}
	return e
}
