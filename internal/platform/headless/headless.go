// Package headless is an in-memory display backend. It keeps display state in
// memory and lets callers inject raw events, so windows can run without a
// display server.
package headless

import (
	"fmt"
	"sync"
	"time"

	"github.com/1broseidon/nativewin/internal/platform"
)

// Backend configures the headless core. The Fail* fields make the matching
// step return that error.
type Backend struct {
	FailInit     error
	FailDisplay  error
	FailQueue    error
	FailMouse    error
	FailKeyboard error
	FailGrab     error
	FailUngrab   error

	// Queue replaces the queue returned by CreateEventQueue.
	Queue platform.Queue

	mu      sync.Mutex
	core    *Core
	display *Display
	events  []string // acquire/release log
}

var _ platform.Backend = (*Backend)(nil)

func (b *Backend) Name() string { return "headless" }

func (b *Backend) Init() (platform.Core, error) {
	if b.FailInit != nil {
		return nil, b.FailInit
	}
	c := &Core{
		b:        b,
		mouse:    platform.NewEventSource("mouse"),
		keyboard: platform.NewEventSource("keyboard"),
	}
	b.mu.Lock()
	b.core = c
	b.mu.Unlock()
	b.record("init core")
	return c, nil
}

// Core returns the last initialized core.
func (b *Backend) Core() *Core {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.core
}

// Display returns the last created display.
func (b *Backend) Display() *Display {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.display
}

// Log returns the acquire/release steps in the order they happened.
func (b *Backend) Log() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.events...)
}

func (b *Backend) record(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, s)
}

type Core struct {
	b *Backend

	mu                sync.Mutex
	mouse, keyboard   *platform.EventSource
	mouseInstalled    bool
	keyboardInstalled bool
	grabbed           platform.Display
	flips             int
}

var _ platform.Core = (*Core)(nil)

func (c *Core) CreateDisplay(width, height int) (platform.Display, error) {
	if c.b.FailDisplay != nil {
		return nil, c.b.FailDisplay
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", width, height)
	}
	d := &Display{
		b:      c.b,
		src:    platform.NewEventSource("display"),
		width:  width,
		height: height,
	}
	c.b.mu.Lock()
	c.b.display = d
	c.b.mu.Unlock()
	c.b.record("create display")
	return d, nil
}

func (c *Core) CreateEventQueue() (platform.Queue, error) {
	if c.b.FailQueue != nil {
		return nil, c.b.FailQueue
	}
	c.b.record("create queue")
	q := c.b.Queue
	if q == nil {
		q = platform.NewEventQueue()
	}
	return &loggedQueue{Queue: q, b: c.b}, nil
}

func (c *Core) InstallMouse() error {
	if c.b.FailMouse != nil {
		return c.b.FailMouse
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseInstalled = true
	return nil
}

func (c *Core) InstallKeyboard() error {
	if c.b.FailKeyboard != nil {
		return c.b.FailKeyboard
	}
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

func (c *Core) FlipDisplay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flips++
}

// Flips returns how many frames were presented.
func (c *Core) Flips() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flips
}

func (c *Core) GrabMouse(d platform.Display) error {
	if c.b.FailGrab != nil {
		return c.b.FailGrab
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grabbed = d
	return nil
}

func (c *Core) UngrabMouse() error {
	if c.b.FailUngrab != nil {
		return c.b.FailUngrab
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grabbed = nil
	return nil
}

// Grabbed reports whether the mouse is grabbed by a display.
func (c *Core) Grabbed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grabbed != nil
}

// EmitMouse injects an event from the mouse source.
func (c *Core) EmitMouse(ev platform.Event) {
	c.mouse.Emit(ev)
}

// EmitKeyboard injects an event from the keyboard source.
func (c *Core) EmitKeyboard(ev platform.Event) {
	c.keyboard.Emit(ev)
}

func (c *Core) Close() error {
	c.b.record("close core")
	return nil
}

type Display struct {
	b   *Backend
	src *platform.EventSource

	mu            sync.Mutex
	width, height int
	x, y          int
	pointerX      int
	pointerY      int
	title         string
	closed        bool
}

var (
	_ platform.Display       = (*Display)(nil)
	_ platform.PointerWarper = (*Display)(nil)
)

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

// Resize changes the display size and emits a DisplayResize event.
func (d *Display) Resize(width, height int) {
	d.mu.Lock()
	d.width, d.height = width, height
	x, y := d.x, d.y
	d.mu.Unlock()
	d.src.Emit(platform.DisplayResize{X: x, Y: y, Width: width, Height: height})
}

func (d *Display) SetWindowTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// Title returns the title last pushed by SetWindowTitle.
func (d *Display) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

func (d *Display) WindowPosition() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.x, d.y
}

func (d *Display) SetWindowPosition(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.x, d.y = x, y
}

// WarpPointer reports a pointer warp from the mouse source.
func (d *Display) WarpPointer(x, y int) error {
	c := d.b.Core()
	if c == nil {
		return fmt.Errorf("no core")
	}
	d.mu.Lock()
	dx, dy := x-d.pointerX, y-d.pointerY
	d.pointerX, d.pointerY = x, y
	d.mu.Unlock()
	c.EmitMouse(platform.MouseWarped{X: x, Y: y, DX: dx, DY: dy})
	return nil
}

// Emit injects an event from the display source.
func (d *Display) Emit(ev platform.Event) {
	d.src.Emit(ev)
}

// Play emits events from the display source one at a time, waiting interval
// before each of them. It returns immediately.
func (d *Display) Play(events []platform.Event, interval time.Duration) {
	go func() {
		for _, ev := range events {
			time.Sleep(interval)
			if d.isClosed() {
				return
			}
			d.src.Emit(ev)
		}
	}()
}

func (d *Display) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Display) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.b.record("close display")
	return nil
}

type loggedQueue struct {
	platform.Queue
	b *Backend
}

func (q *loggedQueue) Close() error {
	q.b.record("close queue")
	return q.Queue.Close()
}
