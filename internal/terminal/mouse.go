package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/1broseidon/nativewin/internal/platform"
)

var buttonMasks = []struct {
	tcell tcell.ButtonMask
	mask  uint32
}{
	{tcell.Button1, platform.ButtonPrimary},
	{tcell.Button2, platform.ButtonSecondary},
	{tcell.Button3, platform.ButtonMiddle},
}

// mouseState turns tcell's snapshot mouse events into transitions. Each
// tcell event carries the full button state; wheel bits are one-shot.
type mouseState struct {
	seen    bool
	x, y    int
	z       int
	buttons tcell.ButtonMask
}

func (m *mouseState) update(x, y int, buttons tcell.ButtonMask) []platform.Event {
	var events []platform.Event

	if !m.seen || x != m.x || y != m.y {
		dx, dy := x-m.x, y-m.y
		if !m.seen {
			dx, dy = 0, 0
		}
		m.seen = true
		m.x, m.y = x, y
		events = append(events, platform.MouseAxes{X: x, Y: y, DX: dx, DY: dy, Z: m.z})
	}

	dz := 0
	if buttons&tcell.WheelUp != 0 {
		dz++
	}
	if buttons&tcell.WheelDown != 0 {
		dz--
	}
	if dz != 0 {
		m.z += dz
		events = append(events, platform.MouseAxes{X: x, Y: y, Z: m.z, DZ: dz})
	}

	for _, b := range buttonMasks {
		was := m.buttons&b.tcell != 0
		is := buttons&b.tcell != 0
		switch {
		case is && !was:
			events = append(events, platform.MouseButtonDown{X: x, Y: y, Buttons: b.mask})
		case was && !is:
			events = append(events, platform.MouseButtonUp{X: x, Y: y, Buttons: b.mask})
		}
	}
	m.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return events
}
