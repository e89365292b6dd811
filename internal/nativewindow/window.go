// Package nativewindow implements the window contract on top of a native
// display library: it owns the native core, display and event queue, and
// turns raw queue events into generic input.
package nativewindow

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/nativewin/internal/eventloop"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/window"
)

// Config holds the options of a window that are not window settings.
type Config struct {
	// Policy handles input that has no generic translation.
	Policy Policy
	// EventSettings are carried for the event loop; the window does not
	// interpret them. The zero value means eventloop.DefaultSettings.
	EventSettings *eventloop.Settings
	Logger        *slog.Logger
}

// Window is a native display with its event queue. It is meant to be used
// from a single goroutine.
type Window struct {
	core    platform.Core
	display platform.Display
	queue   platform.Queue
	sources []*platform.EventSource

	shouldClose   bool
	title         string
	exitOnEsc     bool
	captured      bool
	closed        bool
	eventSettings eventloop.Settings

	policy Policy
	logger *slog.Logger
}

var (
	_ window.AdvancedWindow = (*Window)(nil)
	_ eventloop.EventLoop   = (*Window)(nil)
)

// New initializes the backend and opens a display with its event queue.
// On failure everything acquired so far is released.
func New(b platform.Backend, s window.Settings, cfg Config) (_ *Window, err error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Window{
		title:         s.Title,
		exitOnEsc:     s.ExitOnEsc,
		eventSettings: eventloop.DefaultSettings(),
		policy:        cfg.Policy,
		logger:        logger,
	}
	if cfg.EventSettings != nil {
		w.eventSettings = *cfg.EventSettings
	}
	defer func() {
		if err != nil {
			w.release()
		}
	}()

	w.core, err = b.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize core: %w", err)
	}
	w.display, err = w.core.CreateDisplay(s.Size.Width, s.Size.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create display: %w", err)
	}
	w.queue, err = w.core.CreateEventQueue()
	if err != nil {
		return nil, fmt.Errorf("failed to create event queue: %w", err)
	}
	if err := w.core.InstallMouse(); err != nil {
		return nil, fmt.Errorf("failed to install mouse: %w", err)
	}
	if err := w.core.InstallKeyboard(); err != nil {
		return nil, fmt.Errorf("failed to install keyboard: %w", err)
	}
	mouse, err := w.core.MouseEventSource()
	if err != nil {
		return nil, fmt.Errorf("failed to get mouse event source: %w", err)
	}
	keyboard, err := w.core.KeyboardEventSource()
	if err != nil {
		return nil, fmt.Errorf("failed to get keyboard event source: %w", err)
	}

	w.sources = []*platform.EventSource{w.display.EventSource(), mouse, keyboard}
	for _, src := range w.sources {
		w.queue.RegisterEventSource(src)
	}
	w.display.SetWindowTitle(w.title)

	logger.Debug("window created",
		"backend", b.Name(),
		"title", w.title,
		"width", s.Size.Width,
		"height", s.Size.Height,
		"exit_on_esc", w.exitOnEsc,
	)
	return w, nil
}

// Build returns a window.BuildFunc that opens windows on b.
func Build(b platform.Backend, cfg Config) window.BuildFunc {
	return func(s window.Settings) (window.AdvancedWindow, error) {
		return New(b, s, cfg)
	}
}

// Close releases the queue, display and core in reverse acquisition order.
// It is safe to call more than once.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.captured {
		if err := w.core.UngrabMouse(); err != nil {
			w.logger.Warn("failed to release cursor", "error", err)
		}
		w.captured = false
	}
	return w.release()
}

func (w *Window) release() error {
	var errs []error
	if w.queue != nil {
		for i := len(w.sources) - 1; i >= 0; i-- {
			w.queue.UnregisterEventSource(w.sources[i])
		}
		w.sources = nil
		if err := w.queue.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close event queue: %w", err))
		}
		w.queue = nil
	}
	if w.display != nil {
		if err := w.display.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close display: %w", err))
		}
		w.display = nil
	}
	if w.core != nil {
		if err := w.core.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close core: %w", err))
		}
		w.core = nil
	}
	w.closed = true
	return errors.Join(errs...)
}

// WaitEvent blocks until a raw event other than NoEvent arrives and returns
// its translation.
func (w *Window) WaitEvent() (input.Input, error) {
	if w.closed {
		return nil, ErrClosed
	}
	for {
		ev := w.queue.WaitForEvent()
		if platform.IsNoEvent(ev) {
			if w.queue.Closed() {
				return nil, ErrClosed
			}
			continue
		}
		in, err := w.handle(ev)
		if errors.Is(err, errSkipped) {
			continue
		}
		return in, err
	}
}

// WaitEventTimeout waits at most timeout. It returns a nil input when the
// wait expires.
func (w *Window) WaitEventTimeout(timeout time.Duration) (input.Input, error) {
	if w.closed {
		return nil, ErrClosed
	}
	deadline := time.Now().Add(timeout)
	for {
		ev := w.queue.WaitForEventTimed(timeout.Seconds())
		if platform.IsNoEvent(ev) {
			if w.queue.Closed() {
				return nil, ErrClosed
			}
			return nil, nil
		}
		in, err := w.handle(ev)
		if errors.Is(err, errSkipped) {
			timeout = time.Until(deadline)
			continue
		}
		return in, err
	}
}

// PollEvent returns the next pending input, or nil if none is pending.
func (w *Window) PollEvent() (input.Input, error) {
	if w.closed {
		return nil, ErrClosed
	}
	for {
		ev := w.queue.GetNextEvent()
		if platform.IsNoEvent(ev) {
			return nil, nil
		}
		in, err := w.handle(ev)
		if errors.Is(err, errSkipped) {
			continue
		}
		return in, err
	}
}

var errSkipped = errors.New("skipped unsupported input")

// handle translates ev, applies the close policy and the unsupported policy.
func (w *Window) handle(ev platform.Event) (input.Input, error) {
	in, err := Translate(ev)
	if err != nil {
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		switch w.policy {
		case PolicySkip:
			w.logger.Warn("skipping unsupported input", "error", err)
			return nil, errSkipped
		case PolicyPanic:
			panic(err)
		default:
			return nil, err
		}
	}
	w.applyClosePolicy(in)
	return in, nil
}

func (w *Window) SetShouldClose(value bool) { w.shouldClose = value }
func (w *Window) ShouldClose() bool         { return w.shouldClose }

func (w *Window) Size() window.Size {
	if w.display == nil {
		return window.Size{}
	}
	return window.Size{Width: w.display.Width(), Height: w.display.Height()}
}

// DrawSize is the same as Size; the display has no separate framebuffer.
func (w *Window) DrawSize() window.Size {
	return w.Size()
}

func (w *Window) SwapBuffers() {
	if w.closed {
		return
	}
	w.core.FlipDisplay()
}

func (w *Window) Title() string { return w.title }

// SetTitle sets the title and pushes it to the display.
func (w *Window) SetTitle(value string) {
	w.title = value
	if w.display != nil {
		w.display.SetWindowTitle(value)
	}
}

func (w *Window) ExitOnEsc() bool         { return w.exitOnEsc }
func (w *Window) SetExitOnEsc(value bool) { w.exitOnEsc = value }

// SetCaptureCursor grabs or releases the mouse. It panics if the backend
// refuses.
func (w *Window) SetCaptureCursor(value bool) {
	if w.closed {
		panic(ErrClosed)
	}
	if value {
		if err := w.core.GrabMouse(w.display); err != nil {
			panic(fmt.Errorf("failed to grab mouse: %w", err))
		}
	} else {
		if err := w.core.UngrabMouse(); err != nil {
			panic(fmt.Errorf("failed to ungrab mouse: %w", err))
		}
	}
	w.captured = value
}

// WarpCursor moves the pointer inside the display. The move is read back as
// a cursor Move input.
func (w *Window) WarpCursor(x, y int) error {
	if w.closed {
		return ErrClosed
	}
	pw, ok := w.display.(platform.PointerWarper)
	if !ok {
		return fmt.Errorf("warp cursor: %w", ErrNotImplemented)
	}
	return pw.WarpPointer(x, y)
}

// Show panics: the display cannot be shown apart from being created.
func (w *Window) Show() {
	panic(fmt.Errorf("show: %w", ErrNotImplemented))
}

// Hide panics: the display cannot be hidden apart from being destroyed.
func (w *Window) Hide() {
	panic(fmt.Errorf("hide: %w", ErrNotImplemented))
}

// Position always reports a position.
func (w *Window) Position() (window.Position, bool) {
	if w.display == nil {
		return window.Position{}, true
	}
	x, y := w.display.WindowPosition()
	return window.Position{X: x, Y: y}, true
}

func (w *Window) SetPosition(value window.Position) {
	if w.display != nil {
		w.display.SetWindowPosition(value.X, value.Y)
	}
}

func (w *Window) EventSettings() eventloop.Settings     { return w.eventSettings }
func (w *Window) SetEventSettings(s eventloop.Settings) { w.eventSettings = s }

func (w *Window) WithTitle(value string) *Window {
	w.SetTitle(value)
	return w
}

func (w *Window) WithExitOnEsc(value bool) *Window {
	w.SetExitOnEsc(value)
	return w
}

func (w *Window) WithCaptureCursor(value bool) *Window {
	w.SetCaptureCursor(value)
	return w
}

func (w *Window) WithPosition(value window.Position) *Window {
	w.SetPosition(value)
	return w
}
