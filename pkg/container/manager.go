package container

import (
	"fmt"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// Separators selects how a Manager renders the boundaries between panes.
type Separators int

const (
	// SeparatorsNone lays panes out edge to edge with no gap.
	SeparatorsNone Separators = iota
	// SeparatorsLines reserves a one-cell gap between siblings and fills
	// it with box-drawing lines, thickened around the active pane.
	SeparatorsLines
)

// Manager owns a set of containers, arranges the ones named by the
// current layout tree, and routes input to the active pane. The zero
// value is not usable; construct with NewManager.
type Manager[K comparable] struct {
	containers map[K]Container
	layout     Node[K]
	active     K
	hasActive  bool
	separators Separators
	sepStyle   backend.Style
	lastRects  []paneRect[K]
}

// paneRect is the drawn position of one leaf, kept from the last frame
// so focus movement can reason about geometry.
type paneRect[K comparable] struct {
	index K
	rect  screen.Rect
}

type layoutResult[K comparable] struct {
	panes []paneRect[K]
	seps  []sepLine
}

// sepLine is one run of separator cells. A vertical line stands between
// side-by-side panes, a horizontal one between stacked panes.
type sepLine struct {
	vertical bool
	x, y     int
	length   int
}

// NewManager returns an empty manager with no layout, no active pane
// and separators disabled.
func NewManager[K comparable]() *Manager[K] {
	return &Manager[K]{
		containers: make(map[K]Container),
		sepStyle:   backend.DefaultStyle(),
	}
}

// SetSeparators switches between gapless layout and drawn separator
// lines. The choice takes effect on the next Draw.
func (m *Manager[K]) SetSeparators(mode Separators) {
	m.separators = mode
}

// SetSeparatorStyle sets the style separator lines are drawn in.
func (m *Manager[K]) SetSeparatorStyle(s backend.Style) {
	m.sepStyle = s
}

// AddContainer registers c under index. Registering an index twice
// fails with DuplicateIndex; the first registration stays.
func (m *Manager[K]) AddContainer(index K, c Container) error {
	if _, ok := m.containers[index]; ok {
		return &Error{Kind: DuplicateIndex, Index: fmt.Sprint(index), Detail: "container already registered"}
	}
	m.containers[index] = c
	return nil
}

// RemoveContainer unregisters the container under index. Removing the
// active pane clears the active state. Layouts referencing the index
// stay valid; the leaf draws blank until a new container is registered.
func (m *Manager[K]) RemoveContainer(index K) error {
	if _, ok := m.containers[index]; !ok {
		return &Error{Kind: NoSuchIndex, Index: fmt.Sprint(index), Detail: "container not registered"}
	}
	delete(m.containers, index)
	if m.hasActive && m.active == index {
		m.hasActive = false
	}
	return nil
}

// SetLayout replaces the layout tree. The tree is rejected with
// MalformedLayout, leaving the previous layout in place, when it
// contains a nil node, a split with no children, or the same pane index
// on two leaves. An active pane that is absent from the new tree loses
// its active state.
func (m *Manager[K]) SetLayout(root Node[K]) error {
	if detail := validateTree(root, make(map[K]bool)); detail != "" {
		return &Error{Kind: MalformedLayout, Detail: detail}
	}
	m.layout = root
	if m.hasActive && !m.onLeaf(m.active) {
		m.hasActive = false
	}
	return nil
}

// SetActive gives the pane under index the keyboard. The index must be
// a leaf of the current layout, otherwise NoSuchIndex is returned and
// the active pane is unchanged.
func (m *Manager[K]) SetActive(index K) error {
	if !m.onLeaf(index) {
		return &Error{Kind: NoSuchIndex, Index: fmt.Sprint(index), Detail: "not a pane of the current layout"}
	}
	m.active = index
	m.hasActive = true
	return nil
}

// Active returns the index of the active pane, if any.
func (m *Manager[K]) Active() (K, bool) {
	if !m.hasActive {
		var zero K
		return zero, false
	}
	return m.active, true
}

func (m *Manager[K]) onLeaf(index K) bool {
	if m.layout == nil {
		return false
	}
	for _, k := range collectLeaves[K](m.layout, nil) {
		if k == index {
			return true
		}
	}
	return false
}

// Dispatch offers in to the active pane's container and reports whether
// it was consumed. Without an active, registered pane the input is left
// for later handlers.
func (m *Manager[K]) Dispatch(in input.Input) bool {
	if !m.hasActive {
		return false
	}
	c, ok := m.containers[m.active]
	if !ok {
		return false
	}
	return c.HandleInput(in)
}

// Draw lays the current tree out over win and draws every pane. Leaves
// without a registered container stay blank and demand no space. Only
// the active pane sees hints with Active set.
func (m *Manager[K]) Draw(win screen.Window, hints widget.RenderingHints) {
	w, h := win.Size()
	var res layoutResult[K]
	if m.layout != nil {
		m.layoutNode(m.layout, screen.Rect{Width: w, Height: h}, &res)
	}
	m.lastRects = res.panes

	for _, pr := range res.panes {
		sub := win.Sub(pr.rect)
		sub.Clear()
		c, ok := m.containers[pr.index]
		if !ok {
			continue
		}
		childHints := hints
		childHints.Active = hints.Active && m.hasActive && pr.index == m.active
		c.Widget().Draw(sub, childHints)
	}

	if m.separators == SeparatorsLines && len(res.seps) > 0 {
		m.paintSeparators(win, res.seps)
	}
}

// Render draws one frame onto scr and flushes it. Flush errors are
// wrapped as OutputFailure.
func (m *Manager[K]) Render(scr *screen.Screen) error {
	m.Draw(scr.RootWindow(), widget.RenderingHints{Active: true})
	if err := scr.Present(); err != nil {
		return &Error{Kind: OutputFailure, Detail: "flushing frame", Err: err}
	}
	return nil
}

func (m *Manager[K]) layoutNode(n Node[K], rect screen.Rect, res *layoutResult[K]) {
	switch t := n.(type) {
	case leaf[K]:
		res.panes = append(res.panes, paneRect[K]{index: t.index, rect: rect})
	case split[K]:
		m.layoutSplit(t, rect, res)
	}
}

func (m *Manager[K]) layoutSplit(t split[K], rect screen.Rect, res *layoutResult[K]) {
	demands := make([]widget.Demand, len(t.panes))
	weights := make([]float64, len(t.panes))
	for i, p := range t.panes {
		d := m.demandNode(p.node)
		if t.vertical {
			demands[i] = d.Height
		} else {
			demands[i] = d.Width
		}
		weights[i] = p.weight
	}

	gap := 0
	if m.separators == SeparatorsLines {
		gap = 1
	}
	length := rect.Width
	if t.vertical {
		length = rect.Height
	}
	sizes := widget.LayoutLinearly(length, gap, demands, weights)

	pos := rect.X
	end := rect.X + rect.Width
	if t.vertical {
		pos = rect.Y
		end = rect.Y + rect.Height
	}
	for i, pane := range t.panes {
		var childRect screen.Rect
		if t.vertical {
			childRect = screen.Rect{X: rect.X, Y: pos, Width: rect.Width, Height: sizes[i]}
		} else {
			childRect = screen.Rect{X: pos, Y: rect.Y, Width: sizes[i], Height: rect.Height}
		}
		m.layoutNode(pane.node, childRect, res)
		pos += sizes[i]
		if gap == 1 && pos < end {
			if t.vertical {
				res.seps = append(res.seps, sepLine{vertical: false, x: rect.X, y: pos, length: rect.Width})
			} else {
				res.seps = append(res.seps, sepLine{vertical: true, x: pos, y: rect.Y, length: rect.Height})
			}
			pos++
		}
	}
}

// demandNode folds pane demands along the split axes. Unregistered
// leaves demand nothing, so their slots collapse until a container
// arrives.
func (m *Manager[K]) demandNode(n Node[K]) widget.Demand2D {
	switch t := n.(type) {
	case leaf[K]:
		if c, ok := m.containers[t.index]; ok {
			return c.Widget().SpaceDemand()
		}
		return widget.Demand2D{}
	case split[K]:
		var d widget.Demand2D
		for i, p := range t.panes {
			cd := m.demandNode(p.node)
			if i == 0 {
				d = cd
				continue
			}
			if t.vertical {
				d.Height = widget.AddDemand(d.Height, cd.Height)
				d.Width = widget.MaxDemand(d.Width, cd.Width)
			} else {
				d.Width = widget.AddDemand(d.Width, cd.Width)
				d.Height = widget.MaxDemand(d.Height, cd.Height)
			}
		}
		if m.separators == SeparatorsLines && len(t.panes) > 1 {
			gaps := widget.Exact(len(t.panes) - 1)
			if t.vertical {
				d.Height = widget.AddDemand(d.Height, gaps)
			} else {
				d.Width = widget.AddDemand(d.Width, gaps)
			}
		}
		return d
	}
	return widget.Demand2D{}
}

// paintSeparators converts separator runs into merged box-drawing cells.
// Each run also stubs one cell past either end so that meeting lines
// form junction characters. Segments bordering the active pane are drawn
// thick.
func (m *Manager[K]) paintSeparators(win screen.Window, seps []sepLine) {
	var activeRect screen.Rect
	haveRect := false
	if m.hasActive {
		for _, pr := range m.lastRects {
			if pr.index == m.active {
				activeRect = pr.rect
				haveRect = true
				break
			}
		}
	}
	weigh := func(x, y int, s segment) lineType {
		if haveRect && nearActive(activeRect, x, y, s) {
			return lineThick
		}
		return lineThin
	}

	canvas := newLineCanvas()
	for _, sep := range seps {
		if sep.vertical {
			canvas.put(sep.x, sep.y-1, segDown, weigh(sep.x, sep.y-1, segDown))
			for y := sep.y; y < sep.y+sep.length; y++ {
				canvas.put(sep.x, y, segUp, weigh(sep.x, y, segUp))
				canvas.put(sep.x, y, segDown, weigh(sep.x, y, segDown))
			}
			canvas.put(sep.x, sep.y+sep.length, segUp, weigh(sep.x, sep.y+sep.length, segUp))
		} else {
			canvas.put(sep.x-1, sep.y, segRight, weigh(sep.x-1, sep.y, segRight))
			for x := sep.x; x < sep.x+sep.length; x++ {
				canvas.put(x, sep.y, segRight, weigh(x, sep.y, segRight))
				canvas.put(x, sep.y, segLeft, weigh(x, sep.y, segLeft))
			}
			canvas.put(sep.x+sep.length, sep.y, segLeft, weigh(sep.x+sep.length, sep.y, segLeft))
		}
	}
	canvas.paint(win, m.sepStyle)
}

// nearActive reports whether a separator segment at (x, y) runs along
// the border of rect. Segments pointing away from the rect do not count,
// which keeps the far arms of corner junctions thin.
func nearActive(rect screen.Rect, x, y int, s segment) bool {
	xl := rect.X - 1
	xr := rect.X + rect.Width
	yl := rect.Y - 1
	yr := rect.Y + rect.Height

	onLeft := x == xl
	onRight := x == xr
	onTop := y == yl
	onBottom := y == yr

	if (onRight && s == segRight) || (onLeft && s == segLeft) ||
		(onTop && s == segUp) || (onBottom && s == segDown) {
		return false
	}
	return ((onLeft || onRight) && yl <= y && y <= yr) ||
		((onTop || onBottom) && xl <= x && x <= xr)
}
