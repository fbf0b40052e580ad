// Package tcell implements backend.Backend on github.com/gdamore/tcell.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/terminal"
)

// Backend drives a real terminal through a tcell.Screen.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste accumulator
	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a backend for the process's terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen. The simulation backend
// uses this to reuse the cell pipeline against a fake screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the screen and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent stages a cell.
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show flushes staged cells to the terminal. tcell performs the write
// on a background flow and reports failures by terminating the event
// stream rather than here, so Show itself always succeeds.
func (b *Backend) Show() error {
	b.screen.Show()
	return nil
}

// Clear erases staged content.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// SetCursor places and shows the hardware cursor.
func (b *Backend) SetCursor(x, y int) {
	b.screen.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent blocks until an event is available, translating tcell
// events into terminal events. Bracketed paste sequences are folded
// into a single PasteEvent.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return terminal.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event ahead of terminal input. Only events with
// a tcell representation can be posted; others are dropped.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep emits the terminal bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full repaint.
func (b *Backend) Sync() {
	b.screen.Sync()
}

func convertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrStrikeThrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventInterrupt:
		return terminal.RefreshEvent{}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: convertMouseButton(e.Buttons()),
			Action: convertMouseAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	default:
		return nil
	}
}

// convertKey normalizes a tcell key event. Ctrl-modified letters come
// out as KeyRune with Ctrl set and the lowercase letter in Rune, so
// bindings can match any Ctrl+letter without a per-letter constant.
func convertKey(e *tcell.EventKey) terminal.Event {
	ke := terminal.KeyEvent{
		Alt:   e.Modifiers()&tcell.ModAlt != 0,
		Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
		Shift: e.Modifiers()&tcell.ModShift != 0,
	}

	switch k := e.Key(); k {
	case tcell.KeyRune:
		ke.Key = terminal.KeyRune
		ke.Rune = e.Rune()
	case tcell.KeyUp:
		ke.Key = terminal.KeyUp
	case tcell.KeyDown:
		ke.Key = terminal.KeyDown
	case tcell.KeyRight:
		ke.Key = terminal.KeyRight
	case tcell.KeyLeft:
		ke.Key = terminal.KeyLeft
	case tcell.KeyPgUp:
		ke.Key = terminal.KeyPageUp
	case tcell.KeyPgDn:
		ke.Key = terminal.KeyPageDown
	case tcell.KeyHome:
		ke.Key = terminal.KeyHome
	case tcell.KeyEnd:
		ke.Key = terminal.KeyEnd
	case tcell.KeyInsert:
		ke.Key = terminal.KeyInsert
	case tcell.KeyDelete:
		ke.Key = terminal.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ke.Key = terminal.KeyBackspace
	case tcell.KeyTab:
		ke.Key = terminal.KeyTab
	case tcell.KeyEnter:
		ke.Key = terminal.KeyEnter
	case tcell.KeyEscape:
		ke.Key = terminal.KeyEscape
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			ke.Key = terminal.KeyF1 + terminal.Key(k-tcell.KeyF1)
			break
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			ke.Key = terminal.KeyRune
			ke.Rune = 'a' + rune(k-tcell.KeyCtrlA)
			ke.Ctrl = true
			break
		}
		return nil
	}

	return ke
}

func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func convertMouseAction(buttons tcell.ButtonMask) terminal.MouseAction {
	if buttons == tcell.ButtonNone {
		return terminal.MouseRelease
	}
	return terminal.MousePress
}

func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.RefreshEvent:
		return tcell.NewEventInterrupt(nil)
	default:
		return nil
	}
}

var _ backend.Backend = (*Backend)(nil)
