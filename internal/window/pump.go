package window

import (
	"context"
	"time"

	"github.com/1broseidon/nativewin/internal/input"
)

// DefaultPumpInterval bounds how long Pump blocks in the window before
// checking for cancellation.
const DefaultPumpInterval = 50 * time.Millisecond

// Item is one result published by Pump.
type Item struct {
	Input input.Input
	Err   error
}

// Pump makes the calling goroutine the exclusive owner of w and publishes its
// events on out. It returns nil once w should close, or the context error when
// ctx is done. out is closed on return.
//
// No other goroutine may use w while Pump runs.
func Pump(ctx context.Context, w Window, out chan<- Item, interval time.Duration) error {
	defer close(out)
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.ShouldClose() {
			return nil
		}

		in, err := w.WaitEventTimeout(interval)
		if in == nil && err == nil {
			continue
		}
		select {
		case out <- Item{Input: in, Err: err}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
