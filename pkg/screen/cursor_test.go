package screen

import (
	"fmt"
	"testing"

	"github.com/odvcencio/tessera/pkg/backend"
)

func TestCursorWriteString(t *testing.T) {
	buf := NewBuffer(6, 2)
	c := NewCursor(NewWindow(buf))

	c.WriteString("ab\ncd")

	if buf.Row(0) != "ab    " {
		t.Errorf("row 0 = %q", buf.Row(0))
	}
	if buf.Row(1) != "cd    " {
		t.Errorf("row 1 = %q", buf.Row(1))
	}
	if x, y := c.Position(); x != 2 || y != 1 {
		t.Errorf("position = (%d,%d)", x, y)
	}
}

func TestCursorClipsWithoutWrapping(t *testing.T) {
	buf := NewBuffer(3, 1)
	c := NewCursor(NewWindow(buf))

	c.WriteString("abcdef")

	if buf.Row(0) != "abc" {
		t.Errorf("row = %q", buf.Row(0))
	}
	// Position advances past the edge so later writes stay aligned.
	if x, _ := c.Position(); x != 6 {
		t.Errorf("x = %d", x)
	}
}

func TestCursorWrapping(t *testing.T) {
	buf := NewBuffer(3, 3)
	c := NewCursor(NewWindow(buf))
	c.SetWrapping(true)

	c.WriteString("abcdefg")

	if buf.Row(0) != "abc" || buf.Row(1) != "def" || buf.Row(2) != "g  " {
		t.Errorf("wrapped output:\n%s", buf.String())
	}
}

func TestCursorWrappingKeepsWideClusterWhole(t *testing.T) {
	buf := NewBuffer(3, 2)
	c := NewCursor(NewWindow(buf))
	c.SetWrapping(true)

	// The wide cluster does not fit in the single remaining column
	// and must wrap as a unit.
	c.WriteString("ab世")

	if buf.Row(0) != "ab " {
		t.Errorf("row 0 = %q", buf.Row(0))
	}
	if buf.Row(1) != "世 " {
		t.Errorf("row 1 = %q", buf.Row(1))
	}
}

func TestCursorTab(t *testing.T) {
	buf := NewBuffer(10, 1)
	c := NewCursor(NewWindow(buf))

	c.WriteString("a\tb")

	if buf.Row(0) != "a   b     " {
		t.Errorf("row = %q", buf.Row(0))
	}
}

func TestCursorStyles(t *testing.T) {
	buf := NewBuffer(4, 1)
	win := NewWindow(buf).WithDefaultStyle(backend.DefaultStyle().Dim(true))
	c := NewCursor(win)

	c.WriteString("a")
	if buf.Get(0, 0).Style.Attributes()&backend.AttrDim == 0 {
		t.Errorf("cursor did not pick up the window default style")
	}

	bold := backend.DefaultStyle().Bold(true)
	c.WriteStyled("b", bold)
	if buf.Get(1, 0).Style != bold {
		t.Errorf("WriteStyled ignored the style")
	}

	c.WriteString("c")
	if buf.Get(2, 0).Style.Attributes()&backend.AttrBold != 0 {
		t.Errorf("WriteStyled leaked into the cursor style")
	}
}

func TestCursorIsAWriter(t *testing.T) {
	buf := NewBuffer(8, 1)
	c := NewCursor(NewWindow(buf))

	n, err := fmt.Fprintf(c, "%d%%", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d", n)
	}
	if buf.Row(0) != "42%     " {
		t.Errorf("row = %q", buf.Row(0))
	}
}
