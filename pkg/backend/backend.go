// Package backend abstracts the terminal driver a Screen renders to.
//
// Implementations decode raw terminal input into terminal.Event values
// and accept styled cell writes. The toolkit core never talks to a
// concrete terminal library directly; it goes through this interface so
// tests can swap in the simulation driver.
package backend

import "github.com/odvcencio/tessera/pkg/terminal"

// Backend is a terminal driver.
//
// All methods except PostEvent must be called from the goroutine that
// drives the application loop. PostEvent is safe to call from any
// goroutine; that is the supported way to wake a loop blocked in
// PollEvent.
type Backend interface {
	// Init puts the terminal into the state the driver needs
	// (raw mode, alternate screen). It must be matched by Fini.
	Init() error

	// Fini restores the terminal.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// SetContent stages one cell: a main rune, optional combining
	// runes, and a style. Wide runes occupy the following cell as
	// well; callers must not write into that shadow cell.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes staged content to the terminal. A failure to
	// write is returned so callers can abort the frame and retry.
	Show() error

	// Clear erases all staged content.
	Clear()

	// SetCursor places and shows the hardware cursor.
	SetCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks until the next input event. It returns nil
	// once the backend is finalized.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue ahead of terminal
	// input. Drivers may reject event types they cannot represent.
	PostEvent(ev terminal.Event) error

	// Beep emits the terminal bell.
	Beep()

	// Sync forces a full repaint on the next Show, discarding any
	// assumptions about current terminal contents.
	Sync()
}
