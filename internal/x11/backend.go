// Package x11 is the X11 display backend. Each display is a top-level X
// window; one goroutine per connection reads X events and emits them on the
// display, mouse and keyboard event sources.
package x11

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/nativewin/internal/platform"
)

// Backend opens displays on the X server named by $DISPLAY.
type Backend struct {
	// Center places new displays in the middle of the monitor under the
	// pointer instead of leaving placement to the window manager.
	Center bool
	Logger *slog.Logger
}

var _ platform.Backend = (*Backend)(nil)

func (b *Backend) Name() string { return "x11" }

func (b *Backend) Init() (platform.Core, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	conn, err := NewConnection()
	if err != nil {
		return nil, err
	}
	return &Core{
		conn:     conn,
		center:   b.Center,
		logger:   logger,
		mouse:    platform.NewEventSource("mouse"),
		keyboard: platform.NewEventSource("keyboard"),
		displays: map[xproto.Window]*Display{},
		down:     map[xproto.Keycode]bool{},
		done:     make(chan struct{}),
	}, nil
}

type Core struct {
	conn     *Connection
	center   bool
	logger   *slog.Logger
	mouse    *platform.EventSource
	keyboard *platform.EventSource

	mu                sync.Mutex
	displays          map[xproto.Window]*Display
	mouseInstalled    bool
	keyboardInstalled bool

	// reader goroutine state
	down  map[xproto.Keycode]bool
	wheel int

	readOnce sync.Once
	done     chan struct{}
}

var _ platform.Core = (*Core)(nil)

func (c *Core) CreateDisplay(width, height int) (platform.Display, error) {
	d, err := newDisplay(c, width, height)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.displays[d.win.Id] = d
	c.mu.Unlock()

	c.readOnce.Do(func() {
		go func() {
			defer close(c.done)
			c.conn.readEvents(c.logger, c.handle)
		}()
	})
	return d, nil
}

func (c *Core) CreateEventQueue() (platform.Queue, error) {
	return platform.NewEventQueue(), nil
}

func (c *Core) InstallMouse() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseInstalled = true
	return nil
}

func (c *Core) InstallKeyboard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyboardInstalled = true
	return nil
}

func (c *Core) MouseEventSource() (*platform.EventSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mouseInstalled {
		return nil, fmt.Errorf("mouse: %w", platform.ErrNotInstalled)
	}
	return c.mouse, nil
}

func (c *Core) KeyboardEventSource() (*platform.EventSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.keyboardInstalled {
		return nil, fmt.Errorf("keyboard: %w", platform.ErrNotInstalled)
	}
	return c.keyboard, nil
}

// FlipDisplay flushes pending requests; displays have no back buffer.
func (c *Core) FlipDisplay() {
	c.conn.XUtil.Sync()
}

func (c *Core) GrabMouse(d platform.Display) error {
	disp, ok := d.(*Display)
	if !ok {
		return fmt.Errorf("cannot grab mouse for %T", d)
	}
	mask := uint16(xproto.EventMaskPointerMotion | xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease)
	reply, err := xproto.GrabPointer(
		c.conn.XUtil.Conn(), true, disp.win.Id, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		disp.win.Id, xproto.CursorNone, xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("failed to grab pointer: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("failed to grab pointer: status %d", reply.Status)
	}
	return nil
}

func (c *Core) UngrabMouse() error {
	return xproto.UngrabPointerChecked(c.conn.XUtil.Conn(), xproto.TimeCurrentTime).Check()
}

// Close disconnects from the X server and waits for the reader to stop.
func (c *Core) Close() error {
	c.conn.Close()
	// no reader runs if no display was created
	c.readOnce.Do(func() { close(c.done) })
	<-c.done
	return nil
}

func (c *Core) display(win xproto.Window) *Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displays[win]
}

func (c *Core) forget(win xproto.Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.displays, win)
}

// handle runs on the reader goroutine.
func (c *Core) handle(ev xgb.Event) {
	xu := c.conn.XUtil
	switch t := ev.(type) {
	case xproto.MappingNotifyEvent:
		c.conn.refreshKeyboardMapping()

	case xproto.ConfigureNotifyEvent:
		if d := c.display(t.Window); d != nil {
			d.configure(int(t.Width), int(t.Height))
		}
	case xproto.ClientMessageEvent:
		d := c.display(t.Window)
		if d != nil && icccm.IsDeleteProtocol(xu, xevent.ClientMessageEvent{ClientMessageEvent: &t}) {
			d.src.Emit(platform.DisplayClose{})
		}

	case xproto.KeyPressEvent:
		if c.display(t.Event) == nil {
			return
		}
		code := keyCodeForKeysym(keybind.KeysymGet(xu, t.Detail, 0))
		repeat := c.down[t.Detail]
		c.down[t.Detail] = true
		if !repeat {
			c.keyboard.Emit(platform.KeyDown{Keycode: code})
		}
		if r, ok := typedRune(keybind.LookupString(xu, t.State, t.Detail)); ok {
			c.keyboard.Emit(platform.KeyChar{Keycode: code, Unichar: r, Repeat: repeat})
		}
	case xproto.KeyReleaseEvent:
		if c.display(t.Event) == nil {
			return
		}
		delete(c.down, t.Detail)
		code := keyCodeForKeysym(keybind.KeysymGet(xu, t.Detail, 0))
		c.keyboard.Emit(platform.KeyUp{Keycode: code})

	case xproto.ButtonPressEvent:
		if c.display(t.Event) == nil {
			return
		}
		x, y := int(t.EventX), int(t.EventY)
		if mask, ok := buttonMask(t.Detail); ok {
			c.mouse.Emit(platform.MouseButtonDown{X: x, Y: y, Buttons: mask})
		} else if dz := wheelDelta(t.Detail); dz != 0 {
			c.wheel += dz
			c.mouse.Emit(platform.MouseAxes{X: x, Y: y, Z: c.wheel, DZ: dz})
		}
	case xproto.ButtonReleaseEvent:
		if c.display(t.Event) == nil {
			return
		}
		if mask, ok := buttonMask(t.Detail); ok {
			c.mouse.Emit(platform.MouseButtonUp{X: int(t.EventX), Y: int(t.EventY), Buttons: mask})
		}
	case xproto.MotionNotifyEvent:
		if d := c.display(t.Event); d != nil {
			x, y := int(t.EventX), int(t.EventY)
			dx, dy := d.movePointer(x, y)
			c.mouse.Emit(platform.MouseAxes{X: x, Y: y, DX: dx, DY: dy, Z: c.wheel})
		}
	case xproto.EnterNotifyEvent:
		if d := c.display(t.Event); d != nil {
			x, y := int(t.EventX), int(t.EventY)
			d.movePointer(x, y)
			c.mouse.Emit(platform.MouseEnterDisplay{X: x, Y: y})
		}
	case xproto.LeaveNotifyEvent:
		if c.display(t.Event) != nil {
			c.mouse.Emit(platform.MouseLeaveDisplay{X: int(t.EventX), Y: int(t.EventY)})
		}
	}
}
