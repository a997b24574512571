package platform

// EventKind is the kind of an input event.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_NONE         = EventKind(0) // none
	EVENT_CLOSE        = EventKind(1) // close
	EVENT_RESIZE       = EventKind(2) // resize
	EVENT_POINTER_MOVE = EventKind(3) // move
	EVENT_SCROLL       = EventKind(4) // scroll
	EVENT_PRESS        = EventKind(5) // press
	EVENT_RELEASE      = EventKind(6) // release
)

// Event is a single input event. Only the fields implied by Kind are set.
type Event struct {
	Kind EventKind

	Width, Height int // EVENT_RESIZE
	X, Y          int // EVENT_POINTER_MOVE
	Delta         int // EVENT_SCROLL, positive scrolls down.

	Key   KeyCode // EVENT_PRESS, EVENT_RELEASE
	Ctrl  bool
	Shift bool
}

// Close creates a window close event.
func Close() Event {
	return Event{Kind: EVENT_CLOSE}
}

// Resize creates a window resize event.
func Resize(width, height int) Event {
	return Event{Kind: EVENT_RESIZE, Width: width, Height: height}
}

// PointerMove creates a pointer move event.
func PointerMove(x, y int) Event {
	return Event{Kind: EVENT_POINTER_MOVE, X: x, Y: y}
}

// Scroll creates a wheel scroll event.
func Scroll(delta int) Event {
	return Event{Kind: EVENT_SCROLL, Delta: delta}
}

// Press creates a key or button press event.
func Press(key KeyCode, ctrl, shift bool) Event {
	return Event{Kind: EVENT_PRESS, Key: key, Ctrl: ctrl, Shift: shift}
}

// Release creates a key or button release event.
func Release(key KeyCode, ctrl, shift bool) Event {
	return Event{Kind: EVENT_RELEASE, Key: key, Ctrl: ctrl, Shift: shift}
}
