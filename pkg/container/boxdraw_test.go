package container

import (
	"strings"
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

func TestLineCellRunes(t *testing.T) {
	cases := []struct {
		name string
		cell lineCell
		want rune
	}{
		{"empty", 0, ' '},
		{"thin vertical", lineCell(0).with(segUp, lineThin).with(segDown, lineThin), '│'},
		{"thin horizontal", lineCell(0).with(segRight, lineThin).with(segLeft, lineThin), '─'},
		{"thin cross", lineCell(0).
			with(segUp, lineThin).with(segDown, lineThin).
			with(segRight, lineThin).with(segLeft, lineThin), '┼'},
		{"thick vertical", lineCell(0).with(segUp, lineThick).with(segDown, lineThick), '┃'},
		{"thick horizontal", lineCell(0).with(segRight, lineThick).with(segLeft, lineThick), '━'},
		{"up stub", lineCell(0).with(segUp, lineThin), '╵'},
		{"corner hugging upper left", lineCell(0).
			with(segUp, lineThick).with(segLeft, lineThick).
			with(segDown, lineThin).with(segRight, lineThin), '╃'},
		{"upgrade keeps latest weight", lineCell(0).with(segUp, lineThin).with(segUp, lineThick), '╹'},
	}
	for _, tc := range cases {
		if got := tc.cell.rune(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
	if cellRunes[0b11] != '╳' {
		t.Errorf("reserved weight should map to the invalid marker")
	}
}

func TestLineCanvasMergesJunctions(t *testing.T) {
	buf := screen.NewBuffer(5, 5)
	win := screen.NewWindow(buf)

	canvas := newLineCanvas()
	// A horizontal run across row 2 and a vertical run down column 2
	// ending on that row: the shared cell must become a tee.
	for x := 0; x < 5; x++ {
		canvas.put(x, 2, segRight, lineThin)
		canvas.put(x, 2, segLeft, lineThin)
	}
	for y := 0; y < 2; y++ {
		canvas.put(2, y, segUp, lineThin)
		canvas.put(2, y, segDown, lineThin)
	}
	canvas.put(2, 2, segUp, lineThin)
	canvas.paint(win, backend.DefaultStyle())

	if got := buf.Get(2, 2).Content; got != "┴" {
		t.Errorf("expected tee at the junction, got %q", got)
	}
	if got := buf.Get(0, 2).Content; got != "─" {
		t.Errorf("expected plain horizontal line, got %q", got)
	}
	if got := buf.Get(2, 0).Content; got != "│" {
		t.Errorf("expected plain vertical line, got %q", got)
	}
}

func TestManagerSeparatorLines(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	m.SetSeparators(SeparatorsLines)

	buf := drawManager(m, 5, 5)
	expectBuffer(t, buf, strings.Join([]string{
		"aa│bb",
		"aa│bb",
		"──┼──",
		"cc│dd",
		"cc│dd",
	}, "\n"))
}

func TestManagerSeparatorThickensAroundActive(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	m.SetSeparators(SeparatorsLines)
	setActive(t, m, "a")

	buf := drawManager(m, 5, 5)
	expectBuffer(t, buf, strings.Join([]string{
		"aa┃bb",
		"aa┃bb",
		"━━╃──",
		"cc│dd",
		"cc│dd",
	}, "\n"))
}

func TestManagerSeparatorAfterUnusedSpace(t *testing.T) {
	m := NewManager[string]()
	a := addPane(t, m, "a")
	b := addPane(t, m, "b")
	a.demand.Width = widget.Exact(2)
	b.demand.Width = widget.Exact(2)
	setLayout(t, m, HSplit(
		Weighted[string](Leaf("a"), 1),
		Weighted[string](Leaf("b"), 1),
	))
	m.SetSeparators(SeparatorsLines)

	// Both panes cap at two cells, so a second separator marks the edge
	// of the leftover space.
	buf := drawManager(m, 7, 2)
	expectBuffer(t, buf, "aa│bb│ \naa│bb│ ")
}

func TestManagerSeparatorStyle(t *testing.T) {
	m := NewManager[string]()
	addPane(t, m, "a")
	addPane(t, m, "b")
	setLayout(t, m, VSplit(
		Weighted[string](Leaf("a"), 1),
		Weighted[string](Leaf("b"), 1),
	))
	m.SetSeparators(SeparatorsLines)
	m.SetSeparatorStyle(backend.DefaultStyle().Foreground(backend.ColorBlue))

	buf := drawManager(m, 3, 3)
	expectBuffer(t, buf, "aaa\n───\nbbb")
	if fg, _, _ := buf.Get(1, 1).Style.Decompose(); fg != backend.ColorBlue {
		t.Errorf("separator cells should use the configured style")
	}
}
