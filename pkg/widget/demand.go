// Package widget defines the composition contract of the toolkit: a
// widget reports a per-axis space demand and paints itself into the
// window the layout engine allocates. Layout is recomputed from
// demands on every frame; nothing is cached between frames.
package widget

import "math"

// Unbounded marks a demand with no upper limit.
const Unbounded = math.MaxInt

// Demand is a per-axis size constraint: at least Min cells, at most
// Max. Constructors keep 0 ≤ Min ≤ Max.
type Demand struct {
	Min int
	Max int
}

// Exact demands precisely n cells.
func Exact(n int) Demand {
	n = max(n, 0)
	return Demand{Min: n, Max: n}
}

// AtLeast demands n cells with no upper limit.
func AtLeast(n int) Demand {
	return Demand{Min: max(n, 0), Max: Unbounded}
}

// FromTo demands between lo and hi cells.
func FromTo(lo, hi int) Demand {
	lo = max(lo, 0)
	return Demand{Min: lo, Max: max(hi, lo)}
}

// Bounded reports whether the demand has an upper limit.
func (d Demand) Bounded() bool {
	return d.Max != Unbounded
}

// AddDemand combines demands along the layout axis.
func AddDemand(a, b Demand) Demand {
	sum := Demand{Min: a.Min + b.Min, Max: Unbounded}
	if a.Bounded() && b.Bounded() {
		sum.Max = a.Max + b.Max
	}
	return sum
}

// MaxDemand combines demands across the layout axis: every child gets
// the same extent, so it must satisfy the largest minimum. Growth stays
// useful as long as any child can use it.
func MaxDemand(a, b Demand) Demand {
	return Demand{Min: max(a.Min, b.Min), Max: max(a.Max, b.Max)}
}

// Demand2D pairs the independent per-axis demands.
type Demand2D struct {
	Width  Demand
	Height Demand
}
