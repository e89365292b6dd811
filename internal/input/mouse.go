package input

import "fmt"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
)

func (MouseButton) isButton() {}

func (b MouseButton) String() string {
	switch b {
	case MouseUnknown:
		return "MouseUnknown"
	case MouseLeft:
		return "MouseLeft"
	case MouseRight:
		return "MouseRight"
	case MouseMiddle:
		return "MouseMiddle"
	case MouseX1:
		return "MouseX1"
	case MouseX2:
		return "MouseX2"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}
