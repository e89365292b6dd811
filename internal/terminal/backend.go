// Package terminal is a display backend on a character terminal, driven by
// tcell. The terminal is the single display; its size is measured in cells.
package terminal

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/1broseidon/nativewin/internal/platform"
)

// Backend opens the controlling terminal.
type Backend struct {
	// Screen replaces the terminal, e.g. with tcell.NewSimulationScreen.
	Screen tcell.Screen
	Logger *slog.Logger
}

var _ platform.Backend = (*Backend)(nil)

func (b *Backend) Name() string { return "terminal" }

func (b *Backend) Init() (platform.Core, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	screen := b.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableFocus()

	return &Core{
		screen:   screen,
		logger:   logger,
		mouse:    platform.NewEventSource("mouse"),
		keyboard: platform.NewEventSource("keyboard"),
		done:     make(chan struct{}),
	}, nil
}

type Core struct {
	screen   tcell.Screen
	logger   *slog.Logger
	mouse    *platform.EventSource
	keyboard *platform.EventSource

	mu                sync.Mutex
	display           *Display
	mouseInstalled    bool
	keyboardInstalled bool

	// reader goroutine state
	pointer mouseState

	readOnce sync.Once
	done     chan struct{}
}

var _ platform.Core = (*Core)(nil)

// CreateDisplay claims the terminal. The requested size is ignored.
func (c *Core) CreateDisplay(width, height int) (platform.Display, error) {
	c.mu.Lock()
	if c.display != nil {
		c.mu.Unlock()
		return nil, errors.New("terminal already has a display")
	}
	d := &Display{core: c, src: platform.NewEventSource("display")}
	c.display = d
	c.mu.Unlock()

	c.screen.Clear()
	c.screen.Show()
	c.logger.Debug("terminal display created", "requested_width", width, "requested_height", height)

	c.readOnce.Do(func() {
		go func() {
			defer close(c.done)
			c.readEvents()
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
	c.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
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

func (c *Core) FlipDisplay() {
	c.screen.Show()
}

// GrabMouse switches to reporting all pointer motion, not only drags.
func (c *Core) GrabMouse(d platform.Display) error {
	if _, ok := d.(*Display); !ok {
		return fmt.Errorf("cannot grab mouse for %T", d)
	}
	c.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	return nil
}

func (c *Core) UngrabMouse() error {
	c.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	return nil
}

// Close restores the terminal and waits for the reader to stop.
func (c *Core) Close() error {
	c.screen.Fini()
	c.readOnce.Do(func() { close(c.done) })
	<-c.done
	return nil
}

func (c *Core) currentDisplay() *Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

func (c *Core) forget(d *Display) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.display == d {
		c.display = nil
	}
}

// readEvents returns once the screen is finalized.
func (c *Core) readEvents() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		c.handle(ev)
	}
}

func (c *Core) handle(ev tcell.Event) {
	d := c.currentDisplay()
	if d == nil {
		return
	}
	switch t := ev.(type) {
	case *tcell.EventResize:
		w, h := t.Size()
		c.screen.Sync()
		d.src.Emit(platform.DisplayResize{Width: w, Height: h})

	case *tcell.EventKey:
		if t.Key() == tcell.KeyCtrlC {
			d.src.Emit(platform.DisplayClose{})
			return
		}
		for _, e := range keyEvents(t.Key(), t.Rune(), t.Modifiers()) {
			c.keyboard.Emit(e)
		}

	case *tcell.EventMouse:
		x, y := t.Position()
		for _, e := range c.pointer.update(x, y, t.Buttons()) {
			c.mouse.Emit(e)
		}

	case *tcell.EventFocus:
		if t.Focused {
			c.mouse.Emit(platform.MouseEnterDisplay{X: c.pointer.x, Y: c.pointer.y})
		} else {
			c.mouse.Emit(platform.MouseLeaveDisplay{X: c.pointer.x, Y: c.pointer.y})
		}

	default:
		c.logger.Debug("ignoring terminal event", "type", fmt.Sprintf("%T", ev))
	}
}

// Display is the terminal screen.
type Display struct {
	core *Core
	src  *platform.EventSource
}

var _ platform.Display = (*Display)(nil)

func (d *Display) EventSource() *platform.EventSource { return d.src }

func (d *Display) Width() int {
	w, _ := d.core.screen.Size()
	return w
}

func (d *Display) Height() int {
	_, h := d.core.screen.Size()
	return h
}

func (d *Display) SetWindowTitle(title string) {
	d.core.screen.SetTitle(title)
}

// The terminal cannot be moved.
func (d *Display) WindowPosition() (int, int) { return 0, 0 }

func (d *Display) SetWindowPosition(x, y int) {}

func (d *Display) Close() error {
	d.core.forget(d)
	d.core.screen.Clear()
	return nil
}
