package widgets

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

func TestLineLabel(t *testing.T) {
	l := NewLineLabel("hi 世界")

	d := l.SpaceDemand()
	if d.Width != widget.Exact(7) || d.Height != widget.Exact(1) {
		t.Errorf("expected demand 7x1, got %v", d)
	}

	buf := screen.NewBuffer(8, 1)
	l.Draw(screen.NewWindow(buf), widget.RenderingHints{})
	if got := buf.Row(0); got != "hi 世界 " {
		t.Errorf("expected %q, got %q", "hi 世界 ", got)
	}
}

func TestLineLabelClipped(t *testing.T) {
	l := NewLineLabel("abcdef")

	buf := screen.NewBuffer(3, 1)
	l.Draw(screen.NewWindow(buf), widget.RenderingHints{})
	if got := buf.Row(0); got != "abc" {
		t.Errorf("expected clipped text, got %q", got)
	}
}

func TestLineLabelStyle(t *testing.T) {
	l := NewLineLabel("x")
	l.SetStyle(backend.DefaultStyle().Bold(true))

	buf := screen.NewBuffer(2, 1)
	l.Draw(screen.NewWindow(buf), widget.RenderingHints{})
	if buf.Get(0, 0).Style.Attributes()&backend.AttrBold == 0 {
		t.Error("expected the label drawn in its own style")
	}
}
