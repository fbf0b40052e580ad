// Package terminal defines the input event types delivered by backends.
package terminal

// Event represents a single decoded terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a key press. Printable keys and Ctrl-modified
// letters arrive as KeyRune with the letter in Rune; special keys use
// the dedicated Key constants.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseEvent) eventMarker() {}

// PasteEvent carries the full text of a bracketed paste.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// RefreshEvent asks the application loop to redraw. It carries no
// payload; external feeders post it through Backend.PostEvent when
// state changed outside the input stream.
type RefreshEvent struct{}

func (RefreshEvent) eventMarker() {}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// Key represents special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character, possibly with modifiers
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Rune is shorthand for the event produced by typing a plain character.
func Rune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Ctrl is shorthand for the event produced by a Ctrl-modified letter.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Ctrl: true}
}

// Press is shorthand for a special-key event without modifiers.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
