package platform

// Event is one raw event read from a Queue. The set of implementations is
// closed and mirrors what the native library can report, including kinds the
// window adapter does not support (joystick, timer).
type Event interface {
	isEvent()
}

// NoEvent marks that nothing was pending.
type NoEvent struct{}

type DisplayClose struct{}

type DisplayResize struct {
	X, Y          int
	Width, Height int
}

type KeyDown struct {
	Keycode KeyCode
}

type KeyUp struct {
	Keycode KeyCode
}

// KeyChar is a character typed, including auto-repeats.
type KeyChar struct {
	Keycode KeyCode
	Unichar rune
	Repeat  bool
}

// MouseAxes is pointer motion; DX/DY are relative to the previous position.
type MouseAxes struct {
	X, Y   int
	DX, DY int
	// wheel
	Z, DZ int
}

// MouseButtonDown reports a button press. Buttons is a mask where bit 0 is
// the primary button, bit 1 the secondary and bit 2 the middle one.
type MouseButtonDown struct {
	X, Y    int
	Buttons uint32
}

type MouseButtonUp struct {
	X, Y    int
	Buttons uint32
}

// MouseWarped is reported after the pointer was moved programmatically.
type MouseWarped struct {
	X, Y   int
	DX, DY int
}

type MouseEnterDisplay struct {
	X, Y int
}

type MouseLeaveDisplay struct {
	X, Y int
}

type JoystickAxes struct {
	Stick, Axis int
	Pos         float32
}

type JoystickButtonDown struct {
	Button int
}

type JoystickButtonUp struct {
	Button int
}

type JoystickConfiguration struct{}

type TimerTick struct {
	Count int64
}

func (NoEvent) isEvent()               {}
func (DisplayClose) isEvent()          {}
func (DisplayResize) isEvent()         {}
func (KeyDown) isEvent()               {}
func (KeyUp) isEvent()                 {}
func (KeyChar) isEvent()               {}
func (MouseAxes) isEvent()             {}
func (MouseButtonDown) isEvent()       {}
func (MouseButtonUp) isEvent()         {}
func (MouseWarped) isEvent()           {}
func (MouseEnterDisplay) isEvent()     {}
func (MouseLeaveDisplay) isEvent()     {}
func (JoystickAxes) isEvent()          {}
func (JoystickButtonDown) isEvent()    {}
func (JoystickButtonUp) isEvent()      {}
func (JoystickConfiguration) isEvent() {}
func (TimerTick) isEvent()             {}

// IsNoEvent reports whether ev is the NoEvent marker (or nil).
func IsNoEvent(ev Event) bool {
	if ev == nil {
		return true
	}
	_, ok := ev.(NoEvent)
	return ok
}

// Mouse button masks.
const (
	ButtonPrimary   uint32 = 1 << 0
	ButtonSecondary uint32 = 1 << 1
	ButtonMiddle    uint32 = 1 << 2
)
