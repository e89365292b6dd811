package nativewindow

import (
	"fmt"

	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/platform"
)

// Translate converts one raw event into a generic input. Joystick and timer
// events, gamepad key codes and unknown mouse masks yield an
// *UnsupportedError. NoEvent yields ErrNoEvent; callers filter it first.
func Translate(ev platform.Event) (input.Input, error) {
	switch t := ev.(type) {
	case platform.DisplayClose:
		return input.Close{}, nil
	case platform.DisplayResize:
		return input.Resize{Width: t.Width, Height: t.Height}, nil

	case platform.KeyDown:
		k, err := translateKey(t.Keycode)
		if err != nil {
			return nil, err
		}
		return input.PressOf(k), nil
	case platform.KeyUp:
		k, err := translateKey(t.Keycode)
		if err != nil {
			return nil, err
		}
		return input.ReleaseOf(k), nil
	case platform.KeyChar:
		return input.Text(string(t.Unichar)), nil

	case platform.MouseAxes:
		return input.Move{Motion: input.MouseRelative{DX: float64(t.DX), DY: float64(t.DY)}}, nil
	case platform.MouseButtonDown:
		b, err := translateMouseButton(t.Buttons)
		if err != nil {
			return nil, err
		}
		return input.PressOf(b), nil
	case platform.MouseButtonUp:
		b, err := translateMouseButton(t.Buttons)
		if err != nil {
			return nil, err
		}
		return input.ReleaseOf(b), nil
	case platform.MouseWarped:
		return input.Move{Motion: input.MouseCursor{X: float64(t.X), Y: float64(t.Y)}}, nil
	case platform.MouseEnterDisplay:
		return input.Cursor{Entered: true}, nil
	case platform.MouseLeaveDisplay:
		return input.Cursor{Entered: false}, nil

	case platform.JoystickAxes, platform.JoystickButtonDown,
		platform.JoystickButtonUp, platform.JoystickConfiguration:
		return nil, &UnsupportedError{Kind: KindJoystick}
	case platform.TimerTick:
		return nil, &UnsupportedError{Kind: KindTimer}

	case platform.NoEvent, nil:
		return nil, ErrNoEvent
	default:
		return nil, fmt.Errorf("unhandled event %T", ev)
	}
}
