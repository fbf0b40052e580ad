package screen

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
)

func TestWindowSubClipsToParent(t *testing.T) {
	buf := NewBuffer(10, 10)
	win := NewWindow(buf).Sub(Rect{X: 2, Y: 2, Width: 4, Height: 4})

	// A child reaching past the parent is clipped, never extended.
	sub := win.Sub(Rect{X: 2, Y: 2, Width: 100, Height: 100})
	w, h := sub.Size()
	if w != 2 || h != 2 {
		t.Errorf("expected 2x2, got %dx%d", w, h)
	}

	sub.Fill("#", backend.DefaultStyle())
	if buf.Get(4, 4).Content != "#" || buf.Get(5, 5).Content != "#" {
		t.Errorf("sub fill missing:\n%s", buf.String())
	}
	if buf.Get(6, 6).Content == "#" {
		t.Errorf("sub fill escaped the parent:\n%s", buf.String())
	}
}

func TestWindowSetCellTranslatesAndClips(t *testing.T) {
	buf := NewBuffer(6, 3)
	win := NewWindow(buf).Sub(Rect{X: 3, Y: 1, Width: 2, Height: 2})

	win.SetCell(0, 0, "a", backend.DefaultStyle())
	win.SetCell(1, 1, "b", backend.DefaultStyle())
	win.SetCell(2, 0, "x", backend.DefaultStyle()) // outside, dropped
	win.SetCell(-1, 0, "x", backend.DefaultStyle())

	if buf.Get(3, 1).Content != "a" {
		t.Errorf("translated write missing")
	}
	if buf.Get(4, 2).Content != "b" {
		t.Errorf("translated write missing")
	}
	for x := 0; x < 6; x++ {
		if buf.Get(x, 0).Content == "x" {
			t.Errorf("clipped write leaked")
		}
	}
}

func TestWindowDefaultStyle(t *testing.T) {
	buf := NewBuffer(2, 1)
	hl := backend.DefaultStyle().Reverse(true)
	win := NewWindow(buf).WithDefaultStyle(hl)

	win.Clear()
	if buf.Get(0, 0).Style != hl {
		t.Errorf("clear did not use the window default style")
	}

	// Sub-windows inherit the default.
	if win.Sub(Rect{Width: 1, Height: 1}).DefaultStyle() != hl {
		t.Errorf("sub window lost the default style")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := Rect{X: 2, Y: 2, Width: 4, Height: 4}

	got := a.Intersect(b)
	if got != (Rect{X: 2, Y: 2, Width: 2, Height: 2}) {
		t.Errorf("intersect = %+v", got)
	}

	if !a.Intersect(Rect{X: 9, Y: 9, Width: 1, Height: 1}).Empty() {
		t.Errorf("disjoint rects must intersect empty")
	}
}
