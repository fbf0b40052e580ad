package container

import "github.com/odvcencio/tessera/pkg/input"

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// FocusUp moves the active pane to the neighbor above, if one touches
// the active pane's top edge. It reports whether the focus moved.
func (m *Manager[K]) FocusUp() bool {
	return m.focus(dirUp)
}

// FocusDown moves the active pane to the neighbor below.
func (m *Manager[K]) FocusDown() bool {
	return m.focus(dirDown)
}

// FocusLeft moves the active pane to the neighbor on the left.
func (m *Manager[K]) FocusLeft() bool {
	return m.focus(dirLeft)
}

// FocusRight moves the active pane to the neighbor on the right.
func (m *Manager[K]) FocusRight() bool {
	return m.focus(dirRight)
}

// focus walks the pane geometry of the last drawn frame. A pane is a
// candidate when its facing edge touches the active pane's edge, either
// directly or across a one-cell separator gap. Among candidates the one
// sharing the longest perpendicular edge run wins; ties keep the first
// in layout order. Before the first Draw there is no geometry and no
// movement.
func (m *Manager[K]) focus(d direction) bool {
	if !m.hasActive {
		return false
	}
	var active paneRect[K]
	found := false
	for _, pr := range m.lastRects {
		if pr.index == m.active {
			active = pr
			found = true
			break
		}
	}
	if !found {
		return false
	}

	bestOverlap := -1
	var best K
	for _, pr := range m.lastRects {
		if pr.index == m.active {
			continue
		}
		gap, overlap := edgeRelation(d, active, pr)
		if gap < 0 || gap > 1 {
			continue
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = pr.index
		}
	}
	if bestOverlap < 0 {
		return false
	}
	m.active = best
	return true
}

// edgeRelation returns the distance between the facing edges of the two
// panes along d, and the length of their perpendicular overlap.
func edgeRelation[K comparable](d direction, active, other paneRect[K]) (gap, overlap int) {
	a, o := active.rect, other.rect
	switch d {
	case dirUp:
		gap = a.Y - (o.Y + o.Height)
	case dirDown:
		gap = o.Y - (a.Y + a.Height)
	case dirLeft:
		gap = a.X - (o.X + o.Width)
	case dirRight:
		gap = o.X - (a.X + a.Width)
	}
	if d == dirUp || d == dirDown {
		overlap = min(a.X+a.Width, o.X+o.Width) - max(a.X, o.X)
	} else {
		overlap = min(a.Y+a.Height, o.Y+o.Height) - max(a.Y, o.Y)
	}
	if overlap < 0 {
		overlap = 0
	}
	return gap, overlap
}

// focusNavigator adapts focus movement to the navigation operations, so
// pane switching can be bound to keys like any other directional widget.
type focusNavigator[K comparable] struct {
	m *Manager[K]
}

// Navigator exposes the manager's focus movement as an input.Navigatable.
func (m *Manager[K]) Navigator() input.Navigatable {
	return focusNavigator[K]{m: m}
}

func (n focusNavigator[K]) MoveUp() bool    { return n.m.FocusUp() }
func (n focusNavigator[K]) MoveDown() bool  { return n.m.FocusDown() }
func (n focusNavigator[K]) MoveLeft() bool  { return n.m.FocusLeft() }
func (n focusNavigator[K]) MoveRight() bool { return n.m.FocusRight() }
