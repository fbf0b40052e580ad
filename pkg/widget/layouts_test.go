package widget

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
)

// fillWidget paints every cell of its window with one cluster.
type fillWidget struct {
	demand Demand2D
	fill   string
}

func (f fillWidget) SpaceDemand() Demand2D {
	return f.demand
}

func (f fillWidget) Draw(win screen.Window, _ RenderingHints) {
	win.Fill(f.fill, win.DefaultStyle())
}

func fill(fill string, w, h Demand) fillWidget {
	return fillWidget{demand: Demand2D{Width: w, Height: h}, fill: fill}
}

func expectBuffer(t *testing.T, buf *screen.Buffer, want string) {
	t.Helper()
	if got := buf.String(); got != want {
		t.Errorf("expected buffer\n%q\ngot\n%q", want, got)
	}
}

func TestHLayoutDraw(t *testing.T) {
	l := NewHLayout().
		Widget(fill("a", Exact(2), AtLeast(1))).
		Widget(fill("b", AtLeast(1), AtLeast(1)))

	buf := screen.NewBuffer(6, 2)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aabbbb\naabbbb")
}

func TestHLayoutWeights(t *testing.T) {
	l := NewHLayout().
		WeightedWidget(fill("a", AtLeast(0), AtLeast(1)), 1).
		WeightedWidget(fill("b", AtLeast(0), AtLeast(1)), 2)

	buf := screen.NewBuffer(30, 1)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	row := buf.Row(0)
	if row != "aaaaaaaaaabbbbbbbbbbbbbbbbbbbb" {
		t.Errorf("expected 10 a cells and 20 b cells, got %q", row)
	}
}

func TestHLayoutSeparator(t *testing.T) {
	l := NewHLayout().
		Widget(fill("a", AtLeast(1), AtLeast(1))).
		Widget(fill("b", AtLeast(1), AtLeast(1))).
		WithSeparator(SepDraw("|"))

	buf := screen.NewBuffer(7, 2)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aaa|bbb\naaa|bbb")
}

func TestHLayoutCappedChildrenLeaveBlank(t *testing.T) {
	l := NewHLayout().
		Widget(fill("a", Exact(2), AtLeast(1))).
		Widget(fill("b", Exact(2), AtLeast(1))).
		WithSeparator(SepDraw("|"))

	buf := screen.NewBuffer(7, 1)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aa|bb  ")
}

func TestVLayoutDraw(t *testing.T) {
	l := NewVLayout().
		Widget(fill("a", AtLeast(1), Exact(1))).
		Widget(fill("b", AtLeast(1), AtLeast(1)))

	buf := screen.NewBuffer(4, 3)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aaaa\nbbbb\nbbbb")
}

func TestVLayoutSeparator(t *testing.T) {
	l := NewVLayout().
		Widget(fill("a", AtLeast(1), AtLeast(1))).
		Widget(fill("b", AtLeast(1), AtLeast(1))).
		WithSeparator(SepDraw("-"))

	buf := screen.NewBuffer(4, 3)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aaaa\n----\nbbbb")
}

func TestHLayoutAlternatingStyle(t *testing.T) {
	alt := backend.DefaultStyle().Background(backend.ColorBlue)
	l := NewHLayout().
		Widget(fill("a", Exact(1), AtLeast(1))).
		Widget(fill("b", Exact(1), AtLeast(1))).
		Widget(fill("c", Exact(1), AtLeast(1))).
		WithSeparator(SepAlternating(alt))

	buf := screen.NewBuffer(3, 1)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	if got := buf.Get(0, 0).Style; got != backend.DefaultStyle() {
		t.Errorf("expected first child in default style, got %v", got)
	}
	if got := buf.Get(1, 0).Style; got != alt {
		t.Errorf("expected second child in alternate style, got %v", got)
	}
	if got := buf.Get(2, 0).Style; got != backend.DefaultStyle() {
		t.Errorf("expected third child in default style, got %v", got)
	}
}

func TestHLayoutSpaceDemand(t *testing.T) {
	l := NewHLayout().
		Widget(fill("a", Exact(2), Exact(1))).
		Widget(fill("b", FromTo(1, 3), FromTo(2, 4))).
		WithSeparator(SepDraw("|"))

	d := l.SpaceDemand()
	if d.Width != (Demand{Min: 4, Max: 6}) {
		t.Errorf("expected width demand {4 6}, got %v", d.Width)
	}
	if d.Height != (Demand{Min: 2, Max: 4}) {
		t.Errorf("expected height demand {2 4}, got %v", d.Height)
	}
}

func TestVLayoutSpaceDemand(t *testing.T) {
	l := NewVLayout().
		Widget(fill("a", AtLeast(3), Exact(1))).
		Widget(fill("b", Exact(2), Exact(2)))

	d := l.SpaceDemand()
	if d.Width != (Demand{Min: 3, Max: Unbounded}) {
		t.Errorf("expected width demand {3 unbounded}, got %v", d.Width)
	}
	if d.Height != (Demand{Min: 3, Max: 3}) {
		t.Errorf("expected height demand {3 3}, got %v", d.Height)
	}
}

func TestEmptyLayoutsAreInert(t *testing.T) {
	buf := screen.NewBuffer(3, 1)
	win := screen.NewWindow(buf)
	win.SetCell(0, 0, "x", backend.DefaultStyle())

	NewHLayout().Draw(win, RenderingHints{})
	NewVLayout().Draw(win, RenderingHints{})

	if d := NewHLayout().SpaceDemand(); d != (Demand2D{}) {
		t.Errorf("expected zero demand, got %v", d)
	}
	if got := buf.Row(0); got != "x  " {
		t.Errorf("expected untouched buffer, got %q", got)
	}
}

func TestNestedLayouts(t *testing.T) {
	inner := NewVLayout().
		Widget(fill("a", AtLeast(1), AtLeast(1))).
		Widget(fill("b", AtLeast(1), AtLeast(1)))
	l := NewHLayout().
		Widget(inner).
		Widget(fill("c", AtLeast(1), AtLeast(1)))

	buf := screen.NewBuffer(4, 2)
	l.Draw(screen.NewWindow(buf), RenderingHints{})

	expectBuffer(t, buf, "aacc\nbbcc")
}
