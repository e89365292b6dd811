package eventloop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/window"
)

// scriptedWindow hands out queued inputs and records what the loop asked of it.
type scriptedWindow struct {
	inputs      []input.Input
	shouldClose bool
	swaps       int
	waits       []time.Duration
}

func (w *scriptedWindow) next() input.Input {
	if len(w.inputs) == 0 {
		return nil
	}
	in := w.inputs[0]
	w.inputs = w.inputs[1:]
	return in
}

func (w *scriptedWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *scriptedWindow) ShouldClose() bool     { return w.shouldClose }
func (w *scriptedWindow) Size() window.Size     { return window.Size{Width: 640, Height: 480} }
func (w *scriptedWindow) DrawSize() window.Size { return window.Size{Width: 1280, Height: 960} }
func (w *scriptedWindow) SwapBuffers()          { w.swaps++ }

func (w *scriptedWindow) WaitEvent() (input.Input, error) {
	if in := w.next(); in != nil {
		return in, nil
	}
	return nil, errors.New("script exhausted")
}

func (w *scriptedWindow) WaitEventTimeout(d time.Duration) (input.Input, error) {
	w.waits = append(w.waits, d)
	return w.next(), nil
}

func (w *scriptedWindow) PollEvent() (input.Input, error) {
	return w.next(), nil
}

func mustNext(t *testing.T, e *Events, w window.Window) Event {
	t.Helper()
	ev, err := e.Next(w)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	return ev
}

func TestLazyLoop(t *testing.T) {
	w := &scriptedWindow{inputs: []input.Input{input.PressOf(input.KeyA)}}
	e := NewEvents(Settings{Lazy: true, SwapBuffers: true})

	if ev, ok := mustNext(t, e, w).(Render); !ok || ev.Size.Width != 640 || ev.DrawSize.Width != 1280 {
		t.Fatalf("expected first render with sizes, got %#v", ev)
	}
	if ev := mustNext(t, e, w); ev != (AfterRender{}) || w.swaps != 1 {
		t.Fatalf("expected after render with swap, got %#v swaps=%d", ev, w.swaps)
	}
	ev := mustNext(t, e, w)
	if in, ok := ev.(Input); !ok || in.Input != input.PressOf(input.KeyA) {
		t.Fatalf("expected key input, got %#v", ev)
	}
	if _, ok := mustNext(t, e, w).(Render); !ok {
		t.Fatalf("expected render after input")
	}
	mustNext(t, e, w)

	if _, err := e.Next(w); err == nil {
		t.Fatalf("expected window error to surface")
	}

	w.SetShouldClose(true)
	if ev := mustNext(t, e, w); ev != nil {
		t.Fatalf("expected nil event once closing, got %#v", ev)
	}
}

func TestTimedLoop(t *testing.T) {
	w := &scriptedWindow{}
	e := NewEvents(Settings{MaxFPS: 10, UPS: 20, UPSReset: 2})
	now := time.Unix(0, 0)
	e.now = func() time.Time { return now }

	if ev, ok := mustNext(t, e, w).(Render); !ok || ev.ExtDT != 0 {
		t.Fatalf("expected immediate render, got %#v", ev)
	}
	if mustNext(t, e, w) != (AfterRender{}) || w.swaps != 0 {
		t.Fatalf("expected after render without swap")
	}
	if ev := mustNext(t, e, w); ev != (Idle{DT: 0.05}) {
		t.Fatalf("expected idle until the first update, got %#v", ev)
	}
	if len(w.waits) != 1 || w.waits[0] != 50*time.Millisecond {
		t.Fatalf("expected one 50ms wait, got %v", w.waits)
	}

	now = now.Add(50 * time.Millisecond)
	if ev := mustNext(t, e, w); ev != (Update{DT: 0.05}) {
		t.Fatalf("expected update, got %#v", ev)
	}

	now = now.Add(50 * time.Millisecond)
	if _, ok := mustNext(t, e, w).(Update); !ok {
		t.Fatalf("expected update before render at the same instant")
	}
	if ev, ok := mustNext(t, e, w).(Render); !ok || ev.ExtDT != 0 {
		t.Fatalf("expected render, got %#v", ev)
	}
	mustNext(t, e, w)

	w.inputs = []input.Input{input.Close{}}
	if ev := mustNext(t, e, w); ev != (Input{Input: input.Close{}}) {
		t.Fatalf("expected pending input first, got %#v", ev)
	}

	// far behind: one update, then the clock resets instead of catching up
	now = now.Add(time.Second)
	if _, ok := mustNext(t, e, w).(Update); !ok {
		t.Fatalf("expected update")
	}
	if !e.nextUpdate.Equal(now.Add(50 * time.Millisecond)) {
		t.Fatalf("expected update clock reset, next at %v", e.nextUpdate.Sub(time.Unix(0, 0)))
	}
}

func TestBenchModeAlternates(t *testing.T) {
	w := &scriptedWindow{}
	e := NewEvents(Settings{MaxFPS: 60, UPS: 120, BenchMode: true})

	if _, ok := mustNext(t, e, w).(Update); !ok {
		t.Fatalf("expected update first")
	}
	if _, ok := mustNext(t, e, w).(Render); !ok {
		t.Fatalf("expected render second")
	}
	if _, ok := mustNext(t, e, w).(AfterRender); !ok {
		t.Fatalf("expected after render")
	}
	if len(w.waits) != 0 {
		t.Fatalf("bench mode must not wait, got %v", w.waits)
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if err := (Settings{UPS: 1}).Validate(); err == nil {
		t.Fatalf("expected zero max_fps to fail")
	}
	if err := (Settings{MaxFPS: 1}).Validate(); err == nil {
		t.Fatalf("expected zero ups to fail")
	}
	if err := (Settings{Lazy: true}).Validate(); err != nil {
		t.Fatalf("expected lazy settings to skip rate checks, got %v", err)
	}
}

func TestLazyLoopObservesCancel(t *testing.T) {
	w := &scriptedWindow{}
	e := NewEvents(Settings{Lazy: true})
	ctx, cancel := context.WithCancel(context.Background())

	if _, ok := mustNext(t, e, w).(Render); !ok {
		t.Fatalf("expected first render")
	}
	mustNext(t, e, w)

	done := make(chan error, 1)
	go func() {
		_, err := e.NextContext(ctx, w)
		done <- err
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("lazy wait ignored the cancelled context")
	}
}
