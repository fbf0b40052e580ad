package widgets

import (
	"io"
	"strings"

	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// LogViewer accumulates appended text and displays the tail, wrapping
// long lines. New content keeps the view pinned to the newest line
// until the user scrolls back, which freezes the view on the chosen
// line; scrolling past the newest line resumes following.
//
// It implements io.Writer, so it can serve directly as a log sink.
type LogViewer struct {
	lines  []string
	scroll int // bottom visible line, or -1 while following the tail
}

var (
	_ widget.Widget    = (*LogViewer)(nil)
	_ input.Scrollable = (*LogViewer)(nil)
	_ io.Writer        = (*LogViewer)(nil)
)

// NewLogViewer returns an empty viewer following the tail.
func NewLogViewer() *LogViewer {
	return &LogViewer{lines: []string{""}, scroll: -1}
}

// Write appends text, splitting lines on '\n'. It never fails.
func (l *LogViewer) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\r\n", "\n")
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		l.lines[len(l.lines)-1] += s[:i]
		l.lines = append(l.lines, "")
		s = s[i+1:]
	}
	l.lines[len(l.lines)-1] += s
	return len(p), nil
}

// LineCount returns the number of lines, counting the one still being
// appended to.
func (l *LogViewer) LineCount() int {
	return len(l.lines)
}

// Following reports whether the view is pinned to the newest line.
func (l *LogViewer) Following() bool {
	return l.scroll == -1
}

// ScrollBackwards freezes the view one line up.
func (l *LogViewer) ScrollBackwards() bool {
	bottom := l.scroll
	if bottom == -1 {
		bottom = len(l.lines) - 1
	}
	if bottom == 0 {
		return false
	}
	l.scroll = bottom - 1
	return true
}

// ScrollForwards moves one line down, resuming tail follow at the end.
func (l *LogViewer) ScrollForwards() bool {
	if l.scroll == -1 {
		return false
	}
	l.scroll++
	if l.scroll >= len(l.lines)-1 {
		l.scroll = -1
	}
	return true
}

// ScrollToBeginning freezes the view on the first line.
func (l *LogViewer) ScrollToBeginning() bool {
	if l.scroll == 0 {
		return false
	}
	l.scroll = 0
	return true
}

// ScrollToEnd resumes following the tail.
func (l *LogViewer) ScrollToEnd() bool {
	if l.scroll == -1 {
		return false
	}
	l.scroll = -1
	return true
}

func (l *LogViewer) SpaceDemand() widget.Demand2D {
	return widget.Demand2D{
		Width:  widget.AtLeast(1),
		Height: widget.AtLeast(1),
	}
}

// Draw renders upward from the bottom visible line, so the newest
// content hugs the bottom edge like terminal output.
func (l *LogViewer) Draw(win screen.Window, _ widget.RenderingHints) {
	w, h := win.Size()
	if w == 0 || h == 0 {
		return
	}

	bottom := l.scroll
	if bottom == -1 || bottom >= len(l.lines) {
		bottom = len(l.lines) - 1
	}

	cur := screen.NewCursor(win)
	y := h
	for i := bottom; i >= 0 && y > 0; i-- {
		rows := wrapLine(l.lines[i], w)
		for j := len(rows) - 1; j >= 0 && y > 0; j-- {
			y--
			cur.SetPosition(0, y)
			cur.WriteString(rows[j])
		}
	}
}

// wrapLine splits s into rows no wider than w, breaking between
// grapheme clusters. An empty line still yields one row.
func wrapLine(s string, w int) []string {
	if s == "" {
		return []string{""}
	}
	var rows []string
	var row strings.Builder
	rw := 0
	for _, c := range screen.Clusters(s) {
		cw := screen.TextWidth(c)
		if rw+cw > w && rw > 0 {
			rows = append(rows, row.String())
			row.Reset()
			rw = 0
		}
		row.WriteString(c)
		rw += cw
	}
	return append(rows, row.String())
}
