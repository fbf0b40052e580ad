// Package container arranges independent UI panes in a splittable tree,
// tracks which pane owns the keyboard, and turns pane geometry into
// directional focus movement.
//
// Panes are identified by an application-chosen comparable key. The
// Manager keeps the pane registry and the layout tree separate: a layout
// may reference panes that are not registered yet (they draw blank), and
// registered panes may sit outside the current layout (they stay idle).
package container

import (
	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/widget"
)

// Container is one pane behind a layout leaf. Widget is consulted every
// frame, so implementations may return different widgets over time.
type Container interface {
	Widget() widget.Widget
	HandleInput(input.Input) bool
}

// Node is one position in a layout tree: either a leaf naming a pane or
// a split holding weighted children. Build nodes with Leaf, HSplit and
// VSplit; the zero interface value is not a valid node.
type Node[K comparable] interface {
	node()
}

type leaf[K comparable] struct {
	index K
}

type split[K comparable] struct {
	vertical bool
	panes    []Pane[K]
}

func (leaf[K]) node()  {}
func (split[K]) node() {}

// Pane is a child slot of a split, pairing a subtree with the weight
// used when surplus space is distributed along the split axis.
type Pane[K comparable] struct {
	node   Node[K]
	weight float64
}

// Weighted wraps a subtree with an explicit layout weight. Weight zero
// keeps the subtree at its minimum size while siblings grow.
func Weighted[K comparable](n Node[K], weight float64) Pane[K] {
	return Pane[K]{node: n, weight: weight}
}

// Leaf returns a node that displays the pane registered under index.
func Leaf[K comparable](index K) Node[K] {
	return leaf[K]{index: index}
}

// HSplit arranges its children side by side, left to right.
func HSplit[K comparable](panes ...Pane[K]) Node[K] {
	return split[K]{vertical: false, panes: panes}
}

// VSplit arranges its children top to bottom.
func VSplit[K comparable](panes ...Pane[K]) Node[K] {
	return split[K]{vertical: true, panes: panes}
}

// validateTree checks the structural rules a layout must satisfy: no nil
// nodes, no empty splits, and no pane index appearing on two leaves. It
// returns an empty string when the tree is well formed.
func validateTree[K comparable](n Node[K], seen map[K]bool) string {
	switch t := n.(type) {
	case nil:
		return "nil node"
	case leaf[K]:
		if seen[t.index] {
			return "pane appears on more than one leaf"
		}
		seen[t.index] = true
	case split[K]:
		if len(t.panes) == 0 {
			return "split with no children"
		}
		for _, p := range t.panes {
			if detail := validateTree(p.node, seen); detail != "" {
				return detail
			}
		}
	}
	return ""
}

// collectLeaves appends every pane index in the tree in declaration
// order.
func collectLeaves[K comparable](n Node[K], out []K) []K {
	switch t := n.(type) {
	case leaf[K]:
		out = append(out, t.index)
	case split[K]:
		for _, p := range t.panes {
			out = collectLeaves(p.node, out)
		}
	}
	return out
}
