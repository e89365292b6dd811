package nativewindow

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported matches every *UnsupportedError.
	ErrUnsupported = errors.New("unsupported input")
	// ErrNoEvent is returned when the NoEvent marker reaches translation.
	ErrNoEvent = errors.New("received no event")
	// ErrNotImplemented is the panic value of operations the backend lacks.
	ErrNotImplemented = errors.New("not implemented")
	// ErrClosed is returned by event reads after Close.
	ErrClosed = errors.New("window closed")
)

// UnsupportedKind classifies backend input that has no generic translation.
type UnsupportedKind int

const (
	KindJoystick UnsupportedKind = iota
	KindTimer
	KindKeyCode
	KindMouseButton
)

func (k UnsupportedKind) String() string {
	switch k {
	case KindJoystick:
		return "joystick events"
	case KindTimer:
		return "timer events"
	case KindKeyCode:
		return "key code"
	case KindMouseButton:
		return "mouse button"
	default:
		return fmt.Sprintf("UnsupportedKind(%d)", int(k))
	}
}

// UnsupportedError reports backend input the window does not translate.
type UnsupportedError struct {
	Kind   UnsupportedKind
	Detail string
}

func (e *UnsupportedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v not supported", e.Kind)
	}
	return fmt.Sprintf("unknown %v: %s", e.Kind, e.Detail)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
