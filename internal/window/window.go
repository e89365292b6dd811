// Package window defines the backend-neutral window contract that
// applications program against.
package window

import (
	"time"

	"github.com/1broseidon/nativewin/internal/input"
)

// Size is a width and height in pixels (or cells, for terminal backends).
type Size struct {
	Width  int
	Height int
}

// Position is a window position in screen coordinates.
type Position struct {
	X int
	Y int
}

// Window is the minimal contract every backend window implements.
type Window interface {
	SetShouldClose(value bool)
	ShouldClose() bool

	Size() Size
	// DrawSize is the size of the drawable area.
	DrawSize() Size
	SwapBuffers()

	// WaitEvent blocks until an event is available.
	WaitEvent() (input.Input, error)
	// WaitEventTimeout blocks at most timeout; it returns a nil input if
	// nothing arrived.
	WaitEventTimeout(timeout time.Duration) (input.Input, error)
	// PollEvent never blocks; it returns a nil input if nothing is pending.
	PollEvent() (input.Input, error)
}

// AdvancedWindow adds the optional window operations.
type AdvancedWindow interface {
	Window

	Title() string
	SetTitle(value string)
	ExitOnEsc() bool
	SetExitOnEsc(value bool)
	SetCaptureCursor(value bool)

	Show()
	Hide()

	Position() (Position, bool)
	SetPosition(value Position)
}

// BuildFunc builds a window from settings.
type BuildFunc func(s Settings) (AdvancedWindow, error)
