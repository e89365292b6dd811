package platform

import "errors"

// ErrNotInstalled is returned when a device event source is requested before
// the device was installed.
var ErrNotInstalled = errors.New("device not installed")

// Backend opens a native display library.
type Backend interface {
	Name() string
	// Init initializes the native library and returns its core context.
	Init() (Core, error)
}

// Core is the initialized native library. It owns the input devices and
// creates displays and event queues.
type Core interface {
	CreateDisplay(width, height int) (Display, error)
	CreateEventQueue() (Queue, error)

	InstallMouse() error
	InstallKeyboard() error
	MouseEventSource() (*EventSource, error)
	KeyboardEventSource() (*EventSource, error)

	// FlipDisplay presents the current frame.
	FlipDisplay()

	GrabMouse(d Display) error
	UngrabMouse() error

	Close() error
}

// Display is a native window.
type Display interface {
	EventSource() *EventSource

	Width() int
	Height() int

	SetWindowTitle(title string)
	WindowPosition() (x, y int)
	SetWindowPosition(x, y int)

	Close() error
}

// Queue buffers events from the sources registered with it.
type Queue interface {
	RegisterEventSource(src *EventSource)
	UnregisterEventSource(src *EventSource)

	// WaitForEvent blocks until an event is available. It may return NoEvent
	// on a spurious wakeup or when the queue is closed.
	WaitForEvent() Event
	// WaitForEventTimed blocks at most secs seconds and returns NoEvent if
	// nothing arrived.
	WaitForEventTimed(secs float64) Event
	// GetNextEvent returns the next event or NoEvent without blocking.
	GetNextEvent() Event
	// Closed reports whether Close has been called. A closed queue only
	// returns NoEvent.
	Closed() bool

	Close() error
}

// PointerWarper is implemented by displays that can move the pointer. A warp
// is reported as a MouseWarped event from the mouse source.
type PointerWarper interface {
	WarpPointer(x, y int) error
}
