package screen

import (
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/terminal"
)

// Screen owns a backend and the buffer flushed to it. One Screen
// drives one terminal for the life of the application.
type Screen struct {
	b   backend.Backend
	buf *Buffer
}

// New creates a screen over the given backend.
func New(b backend.Backend) *Screen {
	w, h := b.Size()
	return &Screen{b: b, buf: NewBuffer(w, h)}
}

// Init initializes the backend and hides the hardware cursor; widgets
// draw their own cursors as styled cells.
func (s *Screen) Init() error {
	if err := s.b.Init(); err != nil {
		return err
	}
	s.b.HideCursor()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.b.Fini()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (w, h int) {
	return s.b.Size()
}

// RootWindow starts a frame: the buffer is sized to the terminal and
// blanked, and a window over all of it is returned.
func (s *Screen) RootWindow() Window {
	w, h := s.b.Size()
	if bw, bh := s.buf.Size(); bw != w || bh != h {
		s.buf = NewBuffer(w, h)
	} else {
		s.buf.Reset(backend.DefaultStyle())
	}
	return NewWindow(s.buf)
}

// Present flushes the whole buffer to the backend. Shadow cells of
// wide clusters are skipped; the backend accounts for them itself.
func (s *Screen) Present() error {
	w, h := s.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.buf.Get(x, y)
			if cell.Content == "" {
				continue
			}
			runes := []rune(cell.Content)
			mainc := runes[0]
			var comb []rune
			if len(runes) > 1 {
				comb = runes[1:]
			}
			s.b.SetContent(x, y, mainc, comb, cell.Style)
		}
	}
	return s.b.Show()
}

// PollEvent blocks for the next input event.
func (s *Screen) PollEvent() terminal.Event {
	return s.b.PollEvent()
}

// Beep emits the terminal bell.
func (s *Screen) Beep() {
	s.b.Beep()
}
