package input

import (
	"unicode"

	"github.com/odvcencio/tessera/pkg/terminal"
)

func matches(in Input, events []terminal.Event) bool {
	for _, ev := range events {
		if in.Event == ev {
			return true
		}
	}
	return false
}

// Scrollable is content with a movable viewport. Operations report
// whether the view actually moved, so bound events fall through to
// later handlers once an end is reached.
type Scrollable interface {
	ScrollBackwards() bool
	ScrollForwards() bool
	ScrollToBeginning() bool
	ScrollToEnd() bool
}

// ScrollBehavior maps events to the operations of a Scrollable.
// PageUp and PageDown come bound; jumps to the beginning or end start
// unbound.
type ScrollBehavior struct {
	scrollable Scrollable
	forwards   []terminal.Event
	backwards  []terminal.Event
	begin      []terminal.Event
	end        []terminal.Event
}

func NewScrollBehavior(s Scrollable) *ScrollBehavior {
	return &ScrollBehavior{
		scrollable: s,
		forwards:   []terminal.Event{terminal.Press(terminal.KeyPageDown)},
		backwards:  []terminal.Event{terminal.Press(terminal.KeyPageUp)},
	}
}

// ForwardsOn replaces the events that scroll towards the end.
func (b *ScrollBehavior) ForwardsOn(events ...terminal.Event) *ScrollBehavior {
	b.forwards = events
	return b
}

// BackwardsOn replaces the events that scroll towards the beginning.
func (b *ScrollBehavior) BackwardsOn(events ...terminal.Event) *ScrollBehavior {
	b.backwards = events
	return b
}

// ToBeginningOn replaces the events that jump to the beginning.
func (b *ScrollBehavior) ToBeginningOn(events ...terminal.Event) *ScrollBehavior {
	b.begin = events
	return b
}

// ToEndOn replaces the events that jump to the end.
func (b *ScrollBehavior) ToEndOn(events ...terminal.Event) *ScrollBehavior {
	b.end = events
	return b
}

func (b *ScrollBehavior) HandleInput(in Input) bool {
	switch {
	case matches(in, b.backwards):
		return b.scrollable.ScrollBackwards()
	case matches(in, b.forwards):
		return b.scrollable.ScrollForwards()
	case matches(in, b.begin):
		return b.scrollable.ScrollToBeginning()
	case matches(in, b.end):
		return b.scrollable.ScrollToEnd()
	}
	return false
}

// Writable accepts typed text one rune at a time.
type Writable interface {
	WriteRune(r rune) bool
}

// WriteBehavior feeds printable input into a Writable: plain character
// keys without Ctrl or Alt, and pasted text rune by rune. Unprintable
// runes in a paste are dropped.
type WriteBehavior struct {
	writable Writable
}

func NewWriteBehavior(w Writable) *WriteBehavior {
	return &WriteBehavior{writable: w}
}

func (b *WriteBehavior) HandleInput(in Input) bool {
	switch ev := in.Event.(type) {
	case terminal.KeyEvent:
		if ev.Key != terminal.KeyRune || ev.Ctrl || ev.Alt || !unicode.IsPrint(ev.Rune) {
			return false
		}
		return b.writable.WriteRune(ev.Rune)
	case terminal.PasteEvent:
		wrote := false
		for _, r := range ev.Text {
			if unicode.IsPrint(r) && b.writable.WriteRune(r) {
				wrote = true
			}
		}
		return wrote
	}
	return false
}

// Editable is a Writable with cursor movement and deletion.
type Editable interface {
	Writable
	CursorLeft() bool
	CursorRight() bool
	CursorHome() bool
	CursorEnd() bool
	DeleteForward() bool
	DeleteBackward() bool
}

// EditBehavior binds the usual editing keys to an Editable and types
// everything else printable into it. Arrow keys, Home, End, Delete
// and Backspace come bound; each set can be replaced.
type EditBehavior struct {
	editable    Editable
	write       *WriteBehavior
	left        []terminal.Event
	right       []terminal.Event
	home        []terminal.Event
	end         []terminal.Event
	delForward  []terminal.Event
	delBackward []terminal.Event
}

func NewEditBehavior(e Editable) *EditBehavior {
	return &EditBehavior{
		editable:    e,
		write:       NewWriteBehavior(e),
		left:        []terminal.Event{terminal.Press(terminal.KeyLeft)},
		right:       []terminal.Event{terminal.Press(terminal.KeyRight)},
		home:        []terminal.Event{terminal.Press(terminal.KeyHome)},
		end:         []terminal.Event{terminal.Press(terminal.KeyEnd)},
		delForward:  []terminal.Event{terminal.Press(terminal.KeyDelete)},
		delBackward: []terminal.Event{terminal.Press(terminal.KeyBackspace)},
	}
}

// LeftOn replaces the events that move the cursor left.
func (b *EditBehavior) LeftOn(events ...terminal.Event) *EditBehavior {
	b.left = events
	return b
}

// RightOn replaces the events that move the cursor right.
func (b *EditBehavior) RightOn(events ...terminal.Event) *EditBehavior {
	b.right = events
	return b
}

// HomeOn replaces the events that move the cursor to the start.
func (b *EditBehavior) HomeOn(events ...terminal.Event) *EditBehavior {
	b.home = events
	return b
}

// EndOn replaces the events that move the cursor past the last cluster.
func (b *EditBehavior) EndOn(events ...terminal.Event) *EditBehavior {
	b.end = events
	return b
}

// DeleteForwardOn replaces the events that delete under the cursor.
func (b *EditBehavior) DeleteForwardOn(events ...terminal.Event) *EditBehavior {
	b.delForward = events
	return b
}

// DeleteBackwardOn replaces the events that delete before the cursor.
func (b *EditBehavior) DeleteBackwardOn(events ...terminal.Event) *EditBehavior {
	b.delBackward = events
	return b
}

func (b *EditBehavior) HandleInput(in Input) bool {
	switch {
	case matches(in, b.left):
		return b.editable.CursorLeft()
	case matches(in, b.right):
		return b.editable.CursorRight()
	case matches(in, b.home):
		return b.editable.CursorHome()
	case matches(in, b.end):
		return b.editable.CursorEnd()
	case matches(in, b.delForward):
		return b.editable.DeleteForward()
	case matches(in, b.delBackward):
		return b.editable.DeleteBackward()
	}
	return b.write.HandleInput(in)
}

// Navigatable is a widget with a movable selection. Operations report
// whether the selection actually moved.
type Navigatable interface {
	MoveUp() bool
	MoveDown() bool
	MoveLeft() bool
	MoveRight() bool
}

// NavigateBehavior binds events to the operations of a Navigatable.
// The arrow keys come bound; each set can be replaced.
type NavigateBehavior struct {
	navigatable Navigatable
	up          []terminal.Event
	down        []terminal.Event
	left        []terminal.Event
	right       []terminal.Event
}

func NewNavigateBehavior(n Navigatable) *NavigateBehavior {
	return &NavigateBehavior{
		navigatable: n,
		up:          []terminal.Event{terminal.Press(terminal.KeyUp)},
		down:        []terminal.Event{terminal.Press(terminal.KeyDown)},
		left:        []terminal.Event{terminal.Press(terminal.KeyLeft)},
		right:       []terminal.Event{terminal.Press(terminal.KeyRight)},
	}
}

// UpOn replaces the events that move the selection up.
func (b *NavigateBehavior) UpOn(events ...terminal.Event) *NavigateBehavior {
	b.up = events
	return b
}

// DownOn replaces the events that move the selection down.
func (b *NavigateBehavior) DownOn(events ...terminal.Event) *NavigateBehavior {
	b.down = events
	return b
}

// LeftOn replaces the events that move the selection left.
func (b *NavigateBehavior) LeftOn(events ...terminal.Event) *NavigateBehavior {
	b.left = events
	return b
}

// RightOn replaces the events that move the selection right.
func (b *NavigateBehavior) RightOn(events ...terminal.Event) *NavigateBehavior {
	b.right = events
	return b
}

func (b *NavigateBehavior) HandleInput(in Input) bool {
	switch {
	case matches(in, b.up):
		return b.navigatable.MoveUp()
	case matches(in, b.down):
		return b.navigatable.MoveDown()
	case matches(in, b.left):
		return b.navigatable.MoveLeft()
	case matches(in, b.right):
		return b.navigatable.MoveRight()
	}
	return false
}
