package eventloop

import (
	"context"
	"time"

	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/window"
)

// Event is one loop event: Input, Update, Render, AfterRender or Idle.
type Event interface {
	isLoopEvent()
}

// Input wraps an input read from the window.
type Input struct {
	Input input.Input
}

// Update asks the application to advance its state by DT seconds.
type Update struct {
	DT float64
}

// Render asks the application to draw a frame.
type Render struct {
	// ExtDT is the time in seconds since the last update.
	ExtDT    float64
	Size     window.Size
	DrawSize window.Size
}

// AfterRender follows every Render; buffers were swapped if configured.
type AfterRender struct{}

// Idle reports time spent waiting without receiving input.
type Idle struct {
	DT float64
}

func (Input) isLoopEvent()       {}
func (Update) isLoopEvent()      {}
func (Render) isLoopEvent()      {}
func (AfterRender) isLoopEvent() {}
func (Idle) isLoopEvent()        {}

// Events produces loop events for a window. It is not safe for concurrent use.
type Events struct {
	settings Settings

	started     bool
	needRender  bool
	afterRender bool
	benchToggle bool
	lastUpdate  time.Time
	nextUpdate  time.Time
	nextFrame   time.Time

	now func() time.Time
}

// NewEvents returns a loop using s. Zero rates fall back to the defaults.
func NewEvents(s Settings) *Events {
	if s.UPS == 0 {
		s.UPS = DefaultUPS
	}
	if s.MaxFPS == 0 {
		s.MaxFPS = DefaultMaxFPS
	}
	return &Events{settings: s, now: time.Now}
}

// Settings returns the settings in use.
func (e *Events) Settings() Settings {
	return e.settings
}

// SetSettings changes the settings; rates apply from the next tick.
func (e *Events) SetSettings(s Settings) {
	e.settings = s
}

// Next returns the next loop event. It returns a nil event once the window
// should close.
func (e *Events) Next(w window.Window) (Event, error) {
	return e.NextContext(context.Background(), w)
}

// NextContext is Next with a context. In lazy mode the wait for input is
// split into window.DefaultPumpInterval slices so a cancelled ctx ends it
// with ctx.Err().
func (e *Events) NextContext(ctx context.Context, w window.Window) (Event, error) {
	if w.ShouldClose() {
		return nil, nil
	}
	if e.afterRender {
		e.afterRender = false
		if e.settings.SwapBuffers {
			w.SwapBuffers()
		}
		return AfterRender{}, nil
	}
	if e.settings.Lazy {
		return e.nextLazy(ctx, w)
	}
	return e.nextTimed(w)
}

func (e *Events) nextLazy(ctx context.Context, w window.Window) (Event, error) {
	if !e.started {
		e.started = true
		e.needRender = true
	}
	if e.needRender {
		e.needRender = false
		return e.render(w, 0), nil
	}
	in, err := waitInput(ctx, w)
	if err != nil {
		return nil, err
	}
	e.needRender = true
	return Input{Input: in}, nil
}

func waitInput(ctx context.Context, w window.Window) (input.Input, error) {
	if ctx.Done() == nil {
		return w.WaitEvent()
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in, err := w.WaitEventTimeout(window.DefaultPumpInterval)
		if err != nil {
			return nil, err
		}
		if in != nil {
			return in, nil
		}
	}
}

func (e *Events) nextTimed(w window.Window) (Event, error) {
	if !e.started {
		e.started = true
		now := e.now()
		e.lastUpdate = now
		e.nextUpdate = now.Add(e.settings.updateInterval())
		e.nextFrame = now
	}

	in, err := w.PollEvent()
	if err != nil {
		return nil, err
	}
	if in != nil {
		return Input{Input: in}, nil
	}

	now := e.now()
	if e.settings.BenchMode {
		e.benchToggle = !e.benchToggle
		if e.benchToggle {
			return e.update(now), nil
		}
		return e.render(w, now.Sub(e.lastUpdate).Seconds()), nil
	}
	if !now.Before(e.nextUpdate) {
		return e.update(now), nil
	}
	if !now.Before(e.nextFrame) {
		e.nextFrame = now.Add(e.settings.frameInterval())
		return e.render(w, now.Sub(e.lastUpdate).Seconds()), nil
	}

	wait := e.nextUpdate.Sub(now)
	if d := e.nextFrame.Sub(now); d < wait {
		wait = d
	}
	in, err = w.WaitEventTimeout(wait)
	if err != nil {
		return nil, err
	}
	if in != nil {
		return Input{Input: in}, nil
	}
	return Idle{DT: wait.Seconds()}, nil
}

func (e *Events) update(now time.Time) Event {
	interval := e.settings.updateInterval()
	dt := interval.Seconds()
	if e.settings.BenchMode {
		e.lastUpdate = now
		e.nextUpdate = now.Add(interval)
		return Update{DT: dt}
	}

	// catch up one interval at a time unless too far behind
	if reset := e.settings.UPSReset; reset > 0 && now.Sub(e.nextUpdate) > time.Duration(reset)*interval {
		e.nextUpdate = now.Add(interval)
	} else {
		e.nextUpdate = e.nextUpdate.Add(interval)
	}
	e.lastUpdate = now
	return Update{DT: dt}
}

func (e *Events) render(w window.Window, extDT float64) Event {
	e.afterRender = true
	return Render{
		ExtDT:    extDT,
		Size:     w.Size(),
		DrawSize: w.DrawSize(),
	}
}
