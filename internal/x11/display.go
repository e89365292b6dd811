package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/nativewin/internal/platform"
)

const displayEventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow

// Display is a mapped top-level X window.
type Display struct {
	core *Core
	win  *xwindow.Window
	src  *platform.EventSource

	mu            sync.Mutex
	width, height int
	pointerX      int
	pointerY      int
}

var (
	_ platform.Display       = (*Display)(nil)
	_ platform.PointerWarper = (*Display)(nil)
)

func newDisplay(c *Core, width, height int) (*Display, error) {
	xu := c.conn.XUtil
	win, err := xwindow.Generate(xu)
	if err != nil {
		return nil, fmt.Errorf("failed to generate window id: %w", err)
	}
	// mask/values order is defined by the protocol
	err = win.CreateChecked(c.conn.Root, 0, 0, width, height,
		xproto.CwBackPixel|xproto.CwEventMask,
		xu.Screen().BlackPixel, displayEventMask)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if err := icccm.WmProtocolsSet(xu, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}
	if c.center {
		if mon, err := c.conn.PointerMonitor(); err == nil {
			x, y := centerIn(mon, width, height)
			win.Move(x, y)
		} else {
			c.logger.Debug("failed to find monitor", "error", err)
		}
	}
	win.Map()

	return &Display{
		core:   c,
		win:    win,
		src:    platform.NewEventSource("display"),
		width:  width,
		height: height,
	}, nil
}

func (d *Display) EventSource() *platform.EventSource { return d.src }

func (d *Display) Width() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width
}

func (d *Display) Height() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.height
}

// configure records a ConfigureNotify and emits a resize when the size
// changed; moves alone are not reported.
func (d *Display) configure(width, height int) {
	d.mu.Lock()
	changed := width != d.width || height != d.height
	d.width, d.height = width, height
	d.mu.Unlock()
	if changed {
		x, y := d.WindowPosition()
		d.src.Emit(platform.DisplayResize{X: x, Y: y, Width: width, Height: height})
	}
}

// movePointer records the pointer position and returns the delta from the
// previous one.
func (d *Display) movePointer(x, y int) (dx, dy int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dx, dy = x-d.pointerX, y-d.pointerY
	d.pointerX, d.pointerY = x, y
	return dx, dy
}

// SetWindowTitle sets both _NET_WM_NAME and WM_NAME.
func (d *Display) SetWindowTitle(title string) {
	xu := d.core.conn.XUtil
	if err := ewmh.WmNameSet(xu, d.win.Id, title); err != nil {
		d.core.logger.Debug("failed to set _NET_WM_NAME", "error", err)
	}
	if err := icccm.WmNameSet(xu, d.win.Id, title); err != nil {
		d.core.logger.Debug("failed to set WM_NAME", "error", err)
	}
}

// WindowPosition returns the position of the window's origin on the root
// window, inside any frame the window manager added.
func (d *Display) WindowPosition() (int, int) {
	conn := d.core.conn
	reply, err := xproto.TranslateCoordinates(conn.XUtil.Conn(), d.win.Id, conn.Root, 0, 0).Reply()
	if err != nil {
		d.core.logger.Debug("failed to get window position", "error", err)
		return 0, 0
	}
	return int(reply.DstX), int(reply.DstY)
}

func (d *Display) SetWindowPosition(x, y int) {
	d.win.Move(x, y)
}

// WarpPointer moves the pointer to x, y inside the window and reports it as
// a MouseWarped event from the mouse source.
func (d *Display) WarpPointer(x, y int) error {
	err := xproto.WarpPointerChecked(d.core.conn.XUtil.Conn(),
		xproto.WindowNone, d.win.Id, 0, 0, 0, 0, int16(x), int16(y)).Check()
	if err != nil {
		return fmt.Errorf("failed to warp pointer: %w", err)
	}
	dx, dy := d.movePointer(x, y)
	d.core.mouse.Emit(platform.MouseWarped{X: x, Y: y, DX: dx, DY: dy})
	return nil
}

func (d *Display) Close() error {
	d.core.forget(d.win.Id)
	d.win.Destroy()
	return nil
}
