package widgets

import (
	"strings"
	"unicode"

	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// PromptLine is a LineEdit behind a prompt, with entry history and
// incremental history search.
//
// Scrolling recalls a copy of a history entry into the editor;
// editing applies to the copy, moving to another entry discards it,
// and scrolling past the newest entry restores the line that was
// being typed. During a search, typed characters extend the pattern
// instead of the line, and any cursor movement leaves the search
// keeping the recalled line.
type PromptLine struct {
	prompt string
	edit   *LineEdit

	history    []string
	scroll     int // history index, or -1 while editing a fresh line
	inProgress string

	searching bool
	pattern   string
}

var (
	_ widget.Widget    = (*PromptLine)(nil)
	_ input.Editable   = (*PromptLine)(nil)
	_ input.Scrollable = (*PromptLine)(nil)
)

// NewPromptLine returns an empty prompt line.
func NewPromptLine(prompt string) *PromptLine {
	return &PromptLine{prompt: prompt, edit: NewLineEdit(), scroll: -1}
}

// SetPrompt replaces the prompt text.
func (p *PromptLine) SetPrompt(prompt string) {
	p.prompt = prompt
}

// Text returns the current line.
func (p *PromptLine) Text() string {
	return p.edit.Text()
}

// History returns a copy of the entry history, oldest first.
func (p *PromptLine) History() []string {
	return append([]string(nil), p.history...)
}

// Finish returns the current line, appends it to the history unless
// it is empty or repeats the newest entry, and resets the editor.
func (p *PromptLine) Finish() string {
	line := p.edit.Text()
	if line != "" && (len(p.history) == 0 || p.history[len(p.history)-1] != line) {
		p.history = append(p.history, line)
	}
	p.edit.SetText("")
	p.edit.SetCursorPos(0)
	p.scroll = -1
	p.inProgress = ""
	p.exitSearch()
	return line
}

// WriteRune types into the line, or extends the search pattern while
// a search is active.
func (p *PromptLine) WriteRune(r rune) bool {
	if p.searching {
		if !unicode.IsPrint(r) {
			return false
		}
		p.pattern += string(r)
		p.searchFromNewest()
		return true
	}
	return p.edit.WriteRune(r)
}

// DeleteBackward deletes before the cursor. While searching it pops
// the last pattern rune instead, and leaves the search once the
// pattern is empty.
func (p *PromptLine) DeleteBackward() bool {
	if p.searching {
		if p.pattern == "" {
			p.exitSearch()
			return true
		}
		rs := []rune(p.pattern)
		p.pattern = string(rs[:len(rs)-1])
		return true
	}
	return p.edit.DeleteBackward()
}

func (p *PromptLine) CursorLeft() bool {
	exited := p.leaveSearch()
	return p.edit.CursorLeft() || exited
}

func (p *PromptLine) CursorRight() bool {
	exited := p.leaveSearch()
	return p.edit.CursorRight() || exited
}

func (p *PromptLine) CursorHome() bool {
	exited := p.leaveSearch()
	return p.edit.CursorHome() || exited
}

func (p *PromptLine) CursorEnd() bool {
	exited := p.leaveSearch()
	return p.edit.CursorEnd() || exited
}

func (p *PromptLine) DeleteForward() bool {
	exited := p.leaveSearch()
	return p.edit.DeleteForward() || exited
}

// ScrollBackwards recalls the next older history entry.
func (p *PromptLine) ScrollBackwards() bool {
	exited := p.leaveSearch()
	if len(p.history) == 0 {
		return exited
	}
	switch {
	case p.scroll == -1:
		p.inProgress = p.edit.Text()
		p.scroll = len(p.history) - 1
	case p.scroll > 0:
		p.scroll--
	default:
		return exited
	}
	p.recall(p.history[p.scroll])
	return true
}

// ScrollForwards recalls the next newer entry, restoring the line in
// progress past the newest one.
func (p *PromptLine) ScrollForwards() bool {
	exited := p.leaveSearch()
	switch {
	case p.scroll == -1:
		return exited
	case p.scroll < len(p.history)-1:
		p.scroll++
		p.recall(p.history[p.scroll])
	default:
		p.scroll = -1
		p.recall(p.inProgress)
	}
	return true
}

// ScrollToBeginning recalls the oldest entry.
func (p *PromptLine) ScrollToBeginning() bool {
	exited := p.leaveSearch()
	if len(p.history) == 0 || p.scroll == 0 {
		return exited
	}
	if p.scroll == -1 {
		p.inProgress = p.edit.Text()
	}
	p.scroll = 0
	p.recall(p.history[0])
	return true
}

// ScrollToEnd returns to the line in progress.
func (p *PromptLine) ScrollToEnd() bool {
	exited := p.leaveSearch()
	if p.scroll == -1 {
		return exited
	}
	p.scroll = -1
	p.recall(p.inProgress)
	return true
}

// SearchBackwards enters incremental search and recalls the nearest
// older entry containing the pattern. An empty pattern matches
// nothing but still arms the search.
func (p *PromptLine) SearchBackwards() bool {
	p.searching = true
	if p.pattern == "" {
		return false
	}
	from := len(p.history)
	if p.scroll != -1 {
		from = p.scroll
	}
	for i := from - 1; i >= 0; i-- {
		if strings.Contains(p.history[i], p.pattern) {
			p.moveTo(i)
			return true
		}
	}
	return false
}

// SearchForwards recalls the nearest newer entry containing the
// pattern.
func (p *PromptLine) SearchForwards() bool {
	p.searching = true
	if p.pattern == "" || p.scroll == -1 {
		return false
	}
	for i := p.scroll + 1; i < len(p.history); i++ {
		if strings.Contains(p.history[i], p.pattern) {
			p.moveTo(i)
			return true
		}
	}
	return false
}

// Searching reports whether an incremental search is active.
func (p *PromptLine) Searching() bool {
	return p.searching
}

func (p *PromptLine) searchFromNewest() {
	for i := len(p.history) - 1; i >= 0; i-- {
		if strings.Contains(p.history[i], p.pattern) {
			p.moveTo(i)
			return
		}
	}
}

func (p *PromptLine) moveTo(i int) {
	if p.scroll == -1 {
		p.inProgress = p.edit.Text()
	}
	p.scroll = i
	p.recall(p.history[i])
}

func (p *PromptLine) recall(line string) {
	p.edit.SetText(line)
	p.edit.CursorEnd()
}

func (p *PromptLine) exitSearch() {
	p.searching = false
	p.pattern = ""
}

// leaveSearch exits an active search and reports whether one was
// active, so callers can count the exit as a handled input.
func (p *PromptLine) leaveSearch() bool {
	was := p.searching
	p.exitSearch()
	return was
}

func (p *PromptLine) promptText() string {
	if p.searching {
		return "(search '" + p.pattern + "') "
	}
	return p.prompt
}

func (p *PromptLine) SpaceDemand() widget.Demand2D {
	return widget.Demand2D{
		Width:  widget.AtLeast(screen.TextWidth(p.promptText()) + 1),
		Height: widget.Exact(1),
	}
}

func (p *PromptLine) Draw(win screen.Window, hints widget.RenderingHints) {
	w, h := win.Size()
	if w == 0 || h == 0 {
		return
	}
	prompt := p.promptText()
	screen.NewCursor(win).WriteString(prompt)
	pw := screen.TextWidth(prompt)
	p.edit.Draw(win.Sub(screen.Rect{X: pw, Y: 0, Width: w - pw, Height: 1}), hints)
}
