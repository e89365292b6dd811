package nativewindow

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/nativewin/internal/eventloop"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/platform/headless"
	"github.com/1broseidon/nativewin/internal/window"
)

func newTestWindow(t *testing.T, b *headless.Backend, exitOnEsc bool) *Window {
	t.Helper()
	s := window.NewSettings("T", window.Size{Width: 640, Height: 480}).WithExitOnEsc(exitOnEsc)
	w, err := New(b, s, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

// scriptedQueue replays a fixed sequence of raw events and counts reads.
type scriptedQueue struct {
	events []platform.Event
	reads  int
	secs   []float64
	closed bool
}

func (q *scriptedQueue) RegisterEventSource(*platform.EventSource)   {}
func (q *scriptedQueue) UnregisterEventSource(*platform.EventSource) {}
func (q *scriptedQueue) Close() error                                { return nil }
func (q *scriptedQueue) Closed() bool                                { return q.closed }

func (q *scriptedQueue) next() platform.Event {
	q.reads++
	if len(q.events) == 0 {
		return platform.NoEvent{}
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}

func (q *scriptedQueue) WaitForEvent() platform.Event { return q.next() }
func (q *scriptedQueue) GetNextEvent() platform.Event { return q.next() }

func (q *scriptedQueue) WaitForEventTimed(secs float64) platform.Event {
	q.secs = append(q.secs, secs)
	return q.next()
}

func TestNew_AppliesSettings(t *testing.T) {
	b := &headless.Backend{}
	w := newTestWindow(t, b, true)

	if got := w.Size(); got != (window.Size{Width: 640, Height: 480}) {
		t.Fatalf("expected 640x480, got %v", got)
	}
	if w.DrawSize() != w.Size() {
		t.Fatalf("expected draw size %v, got %v", w.Size(), w.DrawSize())
	}
	if w.Title() != "T" || b.Display().Title() != "T" {
		t.Fatalf("expected title T, got %q (display %q)", w.Title(), b.Display().Title())
	}
	if !w.ExitOnEsc() {
		t.Fatalf("expected exit on esc")
	}
	if w.ShouldClose() {
		t.Fatalf("expected new window not to be closing")
	}
	if w.EventSettings() != eventloop.DefaultSettings() {
		t.Fatalf("expected default event settings, got %+v", w.EventSettings())
	}
}

func TestNew_UnwindsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		b       *headless.Backend
		wantErr string
		wantLog []string
	}{
		{
			name:    "core",
			b:       &headless.Backend{FailInit: boom},
			wantErr: "failed to initialize core",
			wantLog: nil,
		},
		{
			name:    "display",
			b:       &headless.Backend{FailDisplay: boom},
			wantErr: "failed to create display",
			wantLog: []string{"init core", "close core"},
		},
		{
			name:    "queue",
			b:       &headless.Backend{FailQueue: boom},
			wantErr: "failed to create event queue",
			wantLog: []string{"init core", "create display", "close display", "close core"},
		},
		{
			name:    "mouse",
			b:       &headless.Backend{FailMouse: boom},
			wantErr: "failed to install mouse",
			wantLog: []string{"init core", "create display", "create queue", "close queue", "close display", "close core"},
		},
		{
			name:    "keyboard",
			b:       &headless.Backend{FailKeyboard: boom},
			wantErr: "failed to install keyboard",
			wantLog: []string{"init core", "create display", "create queue", "close queue", "close display", "close core"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.b, window.NewSettings("T", window.Size{Width: 10, Height: 10}), Config{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if w != nil {
				t.Fatalf("expected no window on failure")
			}
			if !errors.Is(err, boom) {
				t.Fatalf("expected wrapped cause, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error to contain %q, got %q", tt.wantErr, err.Error())
			}
			if got := tt.b.Log(); !reflect.DeepEqual(got, tt.wantLog) {
				t.Fatalf("expected log %v, got %v", tt.wantLog, got)
			}
		})
	}
}

func TestClose_ReleasesInReverseOrder(t *testing.T) {
	b := &headless.Backend{}
	w, err := New(b, window.NewSettings("T", window.Size{Width: 10, Height: 10}), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected second close error: %v", err)
	}

	want := []string{"init core", "create display", "create queue", "close queue", "close display", "close core"}
	if got := b.Log(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected log %v, got %v", want, got)
	}
	if _, err := w.PollEvent(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, err := w.WaitEvent(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestWaitEvent_EscapeClosesWhenEnabled(t *testing.T) {
	for _, exitOnEsc := range []bool{true, false} {
		b := &headless.Backend{}
		w := newTestWindow(t, b, exitOnEsc)
		b.Core().EmitKeyboard(platform.KeyDown{Keycode: platform.KeyEscape})

		got, err := w.WaitEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := input.ButtonArgs{State: input.Press, Button: input.KeyEscape}
		if got != want {
			t.Fatalf("expected %#v, got %#v", want, got)
		}
		if w.ShouldClose() != exitOnEsc {
			t.Fatalf("exit_on_esc=%v: expected should close %v", exitOnEsc, exitOnEsc)
		}
	}
}

func TestWaitEvent_SkipsNoEventMarkers(t *testing.T) {
	q := &scriptedQueue{events: []platform.Event{
		platform.NoEvent{}, platform.NoEvent{}, platform.NoEvent{}, platform.DisplayClose{},
	}}
	w := newTestWindow(t, &headless.Backend{Queue: q}, false)

	got, err := w.WaitEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (input.Close{}) {
		t.Fatalf("expected close, got %#v", got)
	}
	if q.reads != 4 {
		t.Fatalf("expected 4 reads, got %d", q.reads)
	}
	if w.ShouldClose() {
		t.Fatalf("a close event must not set should close by itself")
	}
}

func TestWaitEvent_ReturnsErrClosedWhenQueueCloses(t *testing.T) {
	q := platform.NewEventQueue()
	w := newTestWindow(t, &headless.Backend{Queue: q}, false)

	done := make(chan error, 1)
	go func() {
		_, err := w.WaitEvent()
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case err := <-done:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("WaitEvent kept waiting on a closed queue")
	}

	if _, err := w.WaitEventTimeout(10 * time.Millisecond); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from timed wait, got %v", err)
	}
}

func TestWaitEvent_ClosedScriptedQueue(t *testing.T) {
	q := &scriptedQueue{closed: true}
	w := newTestWindow(t, &headless.Backend{Queue: q}, false)

	if _, err := w.WaitEvent(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if q.reads != 1 {
		t.Fatalf("expected a single read, got %d", q.reads)
	}
}

func TestWaitEvent_ReturnsQueuedEvent(t *testing.T) {
	b := &headless.Backend{}
	w := newTestWindow(t, b, true)

	go func() {
		time.Sleep(20 * time.Millisecond)
		b.Display().Emit(platform.MouseWarped{X: 100, Y: 50})
	}()

	got, err := w.WaitEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := input.Move{Motion: input.MouseCursor{X: 100, Y: 50}}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestPollEvent(t *testing.T) {
	b := &headless.Backend{}
	w := newTestWindow(t, b, true)

	start := time.Now()
	got, err := w.PollEvent()
	if err != nil || got != nil {
		t.Fatalf("expected nothing pending, got %#v, %v", got, err)
	}
	if d := time.Since(start); d > 100*time.Millisecond {
		t.Fatalf("poll blocked for %v", d)
	}

	b.Core().EmitMouse(platform.MouseButtonDown{Buttons: platform.ButtonPrimary})
	got, err = w.PollEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input.PressOf(input.MouseLeft) {
		t.Fatalf("expected left press, got %#v", got)
	}
}

func TestWaitEventTimeout_Expires(t *testing.T) {
	w := newTestWindow(t, &headless.Backend{}, true)

	start := time.Now()
	got, err := w.WaitEventTimeout(50 * time.Millisecond)
	elapsed := time.Since(start)
	if err != nil || got != nil {
		t.Fatalf("expected timeout, got %#v, %v", got, err)
	}
	if elapsed < 40*time.Millisecond || elapsed > 2*time.Second {
		t.Fatalf("expected about 50ms, waited %v", elapsed)
	}
}

func TestWaitEventTimeout_OneReadPerCall(t *testing.T) {
	q := &scriptedQueue{events: []platform.Event{platform.NoEvent{}, platform.DisplayClose{}}}
	w := newTestWindow(t, &headless.Backend{Queue: q}, true)

	got, err := w.WaitEventTimeout(1500 * time.Millisecond)
	if err != nil || got != nil {
		t.Fatalf("expected nil on NoEvent, got %#v, %v", got, err)
	}
	if q.reads != 1 {
		t.Fatalf("expected a single read, got %d", q.reads)
	}
	if q.secs[0] != 1.5 {
		t.Fatalf("expected sub-second precision, got %v", q.secs[0])
	}

	got, err = w.WaitEventTimeout(time.Second)
	if err != nil || got != (input.Close{}) {
		t.Fatalf("expected close, got %#v, %v", got, err)
	}
}

func TestUnsupportedPolicy(t *testing.T) {
	t.Run("fail", func(t *testing.T) {
		q := &scriptedQueue{events: []platform.Event{platform.TimerTick{Count: 1}}}
		w := newTestWindow(t, &headless.Backend{Queue: q}, true)
		if _, err := w.PollEvent(); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected unsupported error, got %v", err)
		}
	})

	t.Run("skip", func(t *testing.T) {
		var buf bytes.Buffer
		q := &scriptedQueue{events: []platform.Event{
			platform.JoystickButtonDown{Button: 1},
			platform.KeyDown{Keycode: platform.KeyStart},
			platform.KeyChar{Unichar: 'x'},
		}}
		cfg := Config{Policy: PolicySkip, Logger: slog.New(slog.NewTextHandler(&buf, nil))}
		w, err := New(&headless.Backend{Queue: q}, window.NewSettings("T", window.Size{Width: 1, Height: 1}), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer w.Close()

		got, err := w.PollEvent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != input.Text("x") {
			t.Fatalf("expected text x, got %#v", got)
		}
		if n := strings.Count(buf.String(), "skipping unsupported input"); n != 2 {
			t.Fatalf("expected 2 warnings, got %d in %q", n, buf.String())
		}
	})

	t.Run("panic", func(t *testing.T) {
		q := &scriptedQueue{events: []platform.Event{platform.JoystickConfiguration{}}}
		w, err := New(&headless.Backend{Queue: q}, window.NewSettings("T", window.Size{Width: 1, Height: 1}), Config{Policy: PolicyPanic})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer w.Close()
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrUnsupported) {
				t.Fatalf("expected unsupported panic, got %v", r)
			}
		}()
		w.WaitEvent()
	})
}

func TestSetters(t *testing.T) {
	b := &headless.Backend{}
	w := newTestWindow(t, b, false)

	w.WithTitle("Hello").WithExitOnEsc(true).WithPosition(window.Position{X: 5, Y: 7}).WithCaptureCursor(true)

	if b.Display().Title() != "Hello" {
		t.Fatalf("expected display title Hello, got %q", b.Display().Title())
	}
	if !w.ExitOnEsc() {
		t.Fatalf("expected exit on esc")
	}
	if p, ok := w.Position(); !ok || p != (window.Position{X: 5, Y: 7}) {
		t.Fatalf("expected position 5,7, got %v %v", p, ok)
	}
	if !b.Core().Grabbed() {
		t.Fatalf("expected grabbed cursor")
	}
	w.SetCaptureCursor(false)
	if b.Core().Grabbed() {
		t.Fatalf("expected released cursor")
	}

	w.SetShouldClose(true)
	w.SetShouldClose(false)
	if w.ShouldClose() {
		t.Fatalf("expected should close to follow the setter")
	}

	w.SwapBuffers()
	w.SwapBuffers()
	if b.Core().Flips() != 2 {
		t.Fatalf("expected 2 flips, got %d", b.Core().Flips())
	}

	s := eventloop.Settings{Lazy: true}
	w.SetEventSettings(s)
	if w.EventSettings() != s {
		t.Fatalf("expected event settings to round trip")
	}
}

func TestSetCaptureCursor_PanicsOnFailure(t *testing.T) {
	w := newTestWindow(t, &headless.Backend{FailGrab: errors.New("denied")}, false)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	w.SetCaptureCursor(true)
}

func TestShowHide_Panic(t *testing.T) {
	w := newTestWindow(t, &headless.Backend{}, false)
	for name, fn := range map[string]func(){"show": w.Show, "hide": w.Hide} {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrNotImplemented) {
					t.Fatalf("%s: expected ErrNotImplemented panic, got %v", name, err)
				}
			}()
			fn()
		}()
	}
}

func TestBuild(t *testing.T) {
	b := &headless.Backend{}
	aw, err := window.NewSettings("Hello Piston!", window.Size{Width: 640, Height: 480}).
		WithExitOnEsc(true).
		Build(Build(b, Config{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer aw.(*Window).Close()

	if aw.Title() != "Hello Piston!" || !aw.ExitOnEsc() {
		t.Fatalf("expected settings to be applied, got %q %v", aw.Title(), aw.ExitOnEsc())
	}
	if _, err := window.NewSettings("x", window.Size{}).Build(Build(b, Config{})); err == nil {
		t.Fatalf("expected error for empty size")
	}
}

func TestWarpCursor(t *testing.T) {
	w := newTestWindow(t, &headless.Backend{}, true)
	if err := w.WarpCursor(100, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := w.PollEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := input.Move{Motion: input.MouseCursor{X: 100, Y: 50}}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
