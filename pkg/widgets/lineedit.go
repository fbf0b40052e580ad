package widgets

import (
	"unicode"

	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// LineEdit is a single-line text editor. The cursor position is a
// byte offset into the UTF-8 text and always sits on a grapheme
// cluster boundary; movement and deletion work on whole clusters.
// When the text outgrows the window, the view shifts just enough to
// keep the cursor visible.
type LineEdit struct {
	text   string
	cursor int
	scroll int
}

var (
	_ widget.Widget  = (*LineEdit)(nil)
	_ input.Editable = (*LineEdit)(nil)
)

// NewLineEdit returns an empty editor.
func NewLineEdit() *LineEdit {
	return &LineEdit{}
}

// Text returns the edited text.
func (l *LineEdit) Text() string {
	return l.text
}

// SetText replaces the text, clamping the cursor into range.
func (l *LineEdit) SetText(text string) {
	l.text = text
	l.SetCursorPos(l.cursor)
}

// CursorPos returns the cursor's byte offset.
func (l *LineEdit) CursorPos() int {
	return l.cursor
}

// SetCursorPos clamps p into range and snaps it back to the start of
// the grapheme cluster it falls into.
func (l *LineEdit) SetCursorPos(p int) {
	if p <= 0 {
		l.cursor = 0
		return
	}
	if p >= len(l.text) {
		l.cursor = len(l.text)
		return
	}
	boundary := 0
	for _, c := range screen.Clusters(l.text) {
		next := boundary + len(c)
		if next > p {
			break
		}
		boundary = next
	}
	l.cursor = boundary
}

// WriteRune inserts r at the cursor. Control characters are rejected
// so the line stays single-line.
func (l *LineEdit) WriteRune(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	s := string(r)
	l.text = l.text[:l.cursor] + s + l.text[l.cursor:]
	l.cursor += len(s)
	return true
}

// CursorLeft moves back one cluster.
func (l *LineEdit) CursorLeft() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor = l.prevBoundary(l.cursor)
	return true
}

// CursorRight moves forward one cluster.
func (l *LineEdit) CursorRight() bool {
	if l.cursor >= len(l.text) {
		return false
	}
	l.cursor += len(screen.Clusters(l.text[l.cursor:])[0])
	return true
}

// CursorHome moves to the start of the line.
func (l *LineEdit) CursorHome() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor = 0
	return true
}

// CursorEnd moves past the last cluster.
func (l *LineEdit) CursorEnd() bool {
	if l.cursor == len(l.text) {
		return false
	}
	l.cursor = len(l.text)
	return true
}

// DeleteForward removes the cluster under the cursor.
func (l *LineEdit) DeleteForward() bool {
	if l.cursor >= len(l.text) {
		return false
	}
	first := screen.Clusters(l.text[l.cursor:])[0]
	l.text = l.text[:l.cursor] + l.text[l.cursor+len(first):]
	return true
}

// DeleteBackward removes the cluster before the cursor.
func (l *LineEdit) DeleteBackward() bool {
	if l.cursor == 0 {
		return false
	}
	b := l.prevBoundary(l.cursor)
	l.text = l.text[:b] + l.text[l.cursor:]
	l.cursor = b
	return true
}

// prevBoundary returns the start of the cluster ending at boundary p.
func (l *LineEdit) prevBoundary(p int) int {
	cs := screen.Clusters(l.text[:p])
	b := 0
	for _, c := range cs[:len(cs)-1] {
		b += len(c)
	}
	return b
}

func (l *LineEdit) SpaceDemand() widget.Demand2D {
	return widget.Demand2D{
		Width:  widget.AtLeast(1),
		Height: widget.Exact(1),
	}
}

func (l *LineEdit) Draw(win screen.Window, hints widget.RenderingHints) {
	w, h := win.Size()
	if w == 0 || h == 0 {
		return
	}

	cs := screen.Clusters(l.text)
	// One extra slot for the cursor resting past the last cluster.
	widths := make([]int, len(cs)+1)
	for i, c := range cs {
		widths[i] = screen.TextWidth(c)
	}
	widths[len(cs)] = 1

	cursorIdx := len(cs)
	off := 0
	for i, c := range cs {
		if off == l.cursor {
			cursorIdx = i
			break
		}
		off += len(c)
	}

	l.adjustScroll(widths, cursorIdx, w)

	x := 0
	for i := l.scroll; i < len(cs) && x < w; i++ {
		st := win.DefaultStyle()
		if hints.Active && i == cursorIdx {
			st = st.Reverse(true)
		}
		win.SetCell(x, 0, cs[i], st)
		x += widths[i]
	}
	if hints.Active && cursorIdx == len(cs) && x < w {
		win.SetCell(x, 0, " ", win.DefaultStyle().Reverse(true))
	}
}

// adjustScroll shifts the view by the minimum needed to keep the
// cursor visible, pulling it back left when the tail would fit.
func (l *LineEdit) adjustScroll(widths []int, cursorIdx, w int) {
	if l.scroll > cursorIdx {
		l.scroll = cursorIdx
	}
	for l.scroll > 0 && spanWidth(widths, l.scroll-1, len(widths)-1) <= w {
		l.scroll--
	}
	for l.scroll < cursorIdx && spanWidth(widths, l.scroll, cursorIdx) > w {
		l.scroll++
	}
}

// spanWidth sums widths[from..to] inclusive.
func spanWidth(widths []int, from, to int) int {
	total := 0
	for i := from; i <= to; i++ {
		total += widths[i]
	}
	return total
}
