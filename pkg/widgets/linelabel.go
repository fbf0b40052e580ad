// Package widgets provides the built-in widget set: labels, a line
// editor, a prompt with history, a log viewer and a generic table.
package widgets

import (
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// LineLabel displays one line of text at its natural width.
type LineLabel struct {
	text   string
	style  backend.Style
	styled bool
}

// NewLineLabel returns a label showing text.
func NewLineLabel(text string) *LineLabel {
	return &LineLabel{text: text}
}

// SetText replaces the label text.
func (l *LineLabel) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *LineLabel) Text() string {
	return l.text
}

// SetStyle gives the label its own style instead of the window default.
func (l *LineLabel) SetStyle(s backend.Style) {
	l.style = s
	l.styled = true
}

func (l *LineLabel) SpaceDemand() widget.Demand2D {
	return widget.Demand2D{
		Width:  widget.Exact(screen.TextWidth(l.text)),
		Height: widget.Exact(1),
	}
}

func (l *LineLabel) Draw(win screen.Window, _ widget.RenderingHints) {
	cur := screen.NewCursor(win)
	if l.styled {
		cur.SetStyle(l.style)
	}
	cur.WriteString(l.text)
}
