// Package input defines the backend-neutral input events produced by windows.
package input

import "fmt"

// Input is one generic input event. The set of implementations is closed:
// ButtonArgs, Move, Text, Resize, Cursor and Close.
type Input interface {
	isInput()
}

// ButtonState tells whether a button went down or up.
type ButtonState int

const (
	Press ButtonState = iota
	Release
)

func (s ButtonState) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

// Button is either a Key or a MouseButton.
type Button interface {
	isButton()
	String() string
}

// ButtonArgs is a keyboard or mouse button transition.
type ButtonArgs struct {
	State  ButtonState
	Button Button
	// Scancode is nil when the backend reports none.
	Scancode *int32
}

// Move is a pointer motion.
type Move struct {
	Motion Motion
}

// Text is text entered by the user.
type Text string

// Resize reports the new window size.
type Resize struct {
	Width  int
	Height int
}

// Cursor reports the pointer entering (true) or leaving (false) the window.
type Cursor struct {
	Entered bool
}

// Close reports a request to close the window.
type Close struct{}

func (ButtonArgs) isInput() {}
func (Move) isInput()       {}
func (Text) isInput()       {}
func (Resize) isInput()     {}
func (Cursor) isInput()     {}
func (Close) isInput()      {}

// Motion is either MouseRelative or MouseCursor.
type Motion interface {
	isMotion()
}

// MouseRelative is a relative pointer delta.
type MouseRelative struct {
	DX, DY float64
}

// MouseCursor is an absolute pointer position in window coordinates.
type MouseCursor struct {
	X, Y float64
}

func (MouseRelative) isMotion() {}
func (MouseCursor) isMotion()   {}

// PressOf returns a press of b without scancode.
func PressOf(b Button) ButtonArgs {
	return ButtonArgs{State: Press, Button: b}
}

// ReleaseOf returns a release of b without scancode.
func ReleaseOf(b Button) ButtonArgs {
	return ButtonArgs{State: Release, Button: b}
}

// Describe returns a short human readable form of an input, used in logs.
func Describe(in Input) string {
	switch t := in.(type) {
	case ButtonArgs:
		return fmt.Sprintf("button %v %v", t.State, t.Button)
	case Move:
		switch m := t.Motion.(type) {
		case MouseRelative:
			return fmt.Sprintf("move relative %g,%g", m.DX, m.DY)
		case MouseCursor:
			return fmt.Sprintf("move cursor %g,%g", m.X, m.Y)
		}
		return "move"
	case Text:
		return fmt.Sprintf("text %q", string(t))
	case Resize:
		return fmt.Sprintf("resize %dx%d", t.Width, t.Height)
	case Cursor:
		if t.Entered {
			return "cursor entered"
		}
		return "cursor left"
	case Close:
		return "close"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", in)
	}
}
