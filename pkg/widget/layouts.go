package widget

import (
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
)

type sepKind int

const (
	sepNone sepKind = iota
	sepDraw
	sepAlternating
)

// SeparatingStyle controls what a layout puts between its children.
type SeparatingStyle struct {
	kind sepKind
	sep  string
	alt  backend.Style
}

// SepNone packs children with no gap. This is the zero value.
func SepNone() SeparatingStyle {
	return SeparatingStyle{kind: sepNone}
}

// SepDraw reserves a gap between children and paints sep into it. In
// a horizontal layout the gap is as wide as sep and sep is drawn on
// every row; in a vertical layout the gap is one row and sep repeats
// across it.
func SepDraw(sep string) SeparatingStyle {
	return SeparatingStyle{kind: sepDraw, sep: sep}
}

// SepAlternating leaves no gap and instead gives every second child
// window the given default style, as for zebra striping.
func SepAlternating(style backend.Style) SeparatingStyle {
	return SeparatingStyle{kind: sepAlternating, alt: style}
}

func (s SeparatingStyle) hgap() int {
	if s.kind == sepDraw {
		return screen.TextWidth(s.sep)
	}
	return 0
}

func (s SeparatingStyle) vgap() int {
	if s.kind == sepDraw {
		return 1
	}
	return 0
}

type layoutChild struct {
	w      Widget
	weight float64
}

// HLayout arranges children left to right. Widths come from
// LayoutLinearly over the children's width demands; every child gets
// the full layout height.
type HLayout struct {
	children []layoutChild
	sep      SeparatingStyle
}

// NewHLayout returns an empty horizontal layout.
func NewHLayout() *HLayout {
	return &HLayout{}
}

// Widget appends a child with weight 1.
func (l *HLayout) Widget(w Widget) *HLayout {
	return l.WeightedWidget(w, 1)
}

// WeightedWidget appends a child with an explicit surplus weight.
func (l *HLayout) WeightedWidget(w Widget, weight float64) *HLayout {
	l.children = append(l.children, layoutChild{w: w, weight: weight})
	return l
}

// WithSeparator sets the separating style between children.
func (l *HLayout) WithSeparator(s SeparatingStyle) *HLayout {
	l.sep = s
	return l
}

func (l *HLayout) SpaceDemand() Demand2D {
	var width, height Demand
	for _, c := range l.children {
		d := c.w.SpaceDemand()
		width = AddDemand(width, d.Width)
		height = MaxDemand(height, d.Height)
	}
	if n := len(l.children); n > 1 {
		width = AddDemand(width, Exact(l.sep.hgap()*(n-1)))
	}
	return Demand2D{Width: width, Height: height}
}

func (l *HLayout) Draw(win screen.Window, hints RenderingHints) {
	if len(l.children) == 0 {
		return
	}
	w, h := win.Size()
	demands := make([]Demand, len(l.children))
	weights := make([]float64, len(l.children))
	for i, c := range l.children {
		demands[i] = c.w.SpaceDemand().Width
		weights[i] = c.weight
	}
	widths := LayoutLinearly(w, l.sep.hgap(), demands, weights)

	x := 0
	for i, c := range l.children {
		if i > 0 {
			if l.sep.kind == sepDraw {
				drawColumnSeparator(win, x, l.sep.sep)
			}
			x += l.sep.hgap()
		}
		sub := win.Sub(screen.Rect{X: x, Y: 0, Width: widths[i], Height: h})
		if l.sep.kind == sepAlternating && i%2 == 1 {
			sub = sub.WithDefaultStyle(l.sep.alt)
		}
		sub.Clear()
		c.w.Draw(sub, hints)
		x += widths[i]
	}
}

// VLayout arranges children top to bottom, the vertical counterpart
// of HLayout.
type VLayout struct {
	children []layoutChild
	sep      SeparatingStyle
}

// NewVLayout returns an empty vertical layout.
func NewVLayout() *VLayout {
	return &VLayout{}
}

// Widget appends a child with weight 1.
func (l *VLayout) Widget(w Widget) *VLayout {
	return l.WeightedWidget(w, 1)
}

// WeightedWidget appends a child with an explicit surplus weight.
func (l *VLayout) WeightedWidget(w Widget, weight float64) *VLayout {
	l.children = append(l.children, layoutChild{w: w, weight: weight})
	return l
}

// WithSeparator sets the separating style between children.
func (l *VLayout) WithSeparator(s SeparatingStyle) *VLayout {
	l.sep = s
	return l
}

func (l *VLayout) SpaceDemand() Demand2D {
	var width, height Demand
	for _, c := range l.children {
		d := c.w.SpaceDemand()
		width = MaxDemand(width, d.Width)
		height = AddDemand(height, d.Height)
	}
	if n := len(l.children); n > 1 {
		height = AddDemand(height, Exact(l.sep.vgap()*(n-1)))
	}
	return Demand2D{Width: width, Height: height}
}

func (l *VLayout) Draw(win screen.Window, hints RenderingHints) {
	if len(l.children) == 0 {
		return
	}
	w, h := win.Size()
	demands := make([]Demand, len(l.children))
	weights := make([]float64, len(l.children))
	for i, c := range l.children {
		demands[i] = c.w.SpaceDemand().Height
		weights[i] = c.weight
	}
	heights := LayoutLinearly(h, l.sep.vgap(), demands, weights)

	y := 0
	for i, c := range l.children {
		if i > 0 {
			if l.sep.kind == sepDraw {
				drawRowSeparator(win, y, l.sep.sep)
			}
			y += l.sep.vgap()
		}
		sub := win.Sub(screen.Rect{X: 0, Y: y, Width: w, Height: heights[i]})
		if l.sep.kind == sepAlternating && i%2 == 1 {
			sub = sub.WithDefaultStyle(l.sep.alt)
		}
		sub.Clear()
		c.w.Draw(sub, hints)
		y += heights[i]
	}
}

func drawColumnSeparator(win screen.Window, x int, sep string) {
	_, h := win.Size()
	cur := screen.NewCursor(win)
	for y := 0; y < h; y++ {
		cur.SetPosition(x, y)
		cur.WriteString(sep)
	}
}

func drawRowSeparator(win screen.Window, y int, sep string) {
	sw := screen.TextWidth(sep)
	if sw <= 0 {
		return
	}
	w, _ := win.Size()
	cur := screen.NewCursor(win)
	cur.SetPosition(0, y)
	for x := 0; x < w; x += sw {
		cur.WriteString(sep)
	}
}
