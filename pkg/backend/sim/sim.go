// Package sim provides an in-memory backend for tests.
//
// It renders through tcell's simulation screen so cell handling matches
// the production driver, but owns event delivery itself: tests inject
// terminal events and they come back out of PollEvent in order. Flush
// failures can be injected to exercise output-error paths.
package sim

import (
	"strings"
	"sync"
	"testing"

	tcellv2 "github.com/gdamore/tcell/v2"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/backend/tcell"
	"github.com/odvcencio/tessera/pkg/terminal"
)

// Backend is a testable backend over a simulated terminal.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen

	mu      sync.Mutex
	events  chan terminal.Event
	showErr error
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		events:  make(chan terminal.Event, 128),
	}
}

// Show flushes to the simulated screen, or fails with the injected error.
func (s *Backend) Show() error {
	s.mu.Lock()
	err := s.showErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Backend.Show()
}

// FailShows makes every subsequent Show return err until called with nil.
func (s *Backend) FailShows(err error) {
	s.mu.Lock()
	s.showErr = err
	s.mu.Unlock()
}

// PollEvent returns the next injected event, blocking until one arrives.
func (s *Backend) PollEvent() terminal.Event {
	return <-s.events
}

// PostEvent queues an event for PollEvent.
func (s *Backend) PostEvent(ev terminal.Event) error {
	s.events <- ev
	return nil
}

// Resize changes the simulated screen size without emitting an event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
}

// InjectKey queues a key event.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	s.events <- terminal.KeyEvent{Key: key, Rune: r}
}

// InjectKeyRune queues a plain character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString queues one keypress per rune of str.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectEvent queues an arbitrary event.
func (s *Backend) InjectEvent(ev terminal.Event) {
	s.events <- ev
}

// InjectResize resizes the simulated screen and queues the resize event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	s.events <- terminal.ResizeEvent{Width: width, Height: height}
}

// Capture returns the flushed screen contents, one line per row.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	var lines []string

	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; {
			mainc, comb, _, cw := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if cw < 1 {
				cw = 1
			}
			x += cw
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of a single flushed cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, c, tcStyle, _ := s.screen.GetContent(x, y)
	return m, c, convertTcellStyle(tcStyle)
}

// ContainsText reports whether text appears anywhere on the screen.
func (s *Backend) ContainsText(text string) bool {
	for _, line := range strings.Split(s.Capture(), "\n") {
		if strings.Contains(line, text) {
			return true
		}
	}
	return false
}

// ExpectScreen fails the test with a unified diff when the flushed
// screen does not match want. Lines of want are compared after
// right-trimming so padding does not obscure the intent.
func (s *Backend) ExpectScreen(t *testing.T, want string) {
	t.Helper()

	got := s.Capture()
	if trimLines(got) == trimLines(want) {
		return
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(trimLines(want)),
		B:        difflib.SplitLines(trimLines(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("screen mismatch:\n%s", diff)
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
