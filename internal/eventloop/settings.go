// Package eventloop drives a window: it interleaves input with update and
// render ticks at configured rates, or renders only after input in lazy mode.
package eventloop

import (
	"fmt"
	"time"
)

const (
	DefaultMaxFPS   = 60
	DefaultUPS      = 120
	DefaultUPSReset = 2
)

// Settings configure an event loop. Windows carry them without interpreting
// them.
type Settings struct {
	// MaxFPS caps render events per second.
	MaxFPS uint64
	// UPS is the number of update events per second.
	UPS uint64
	// UPSReset is how many updates may be skipped before the update clock
	// resets instead of catching up. Zero never resets.
	UPSReset uint64
	// SwapBuffers makes the loop swap buffers after each render.
	SwapBuffers bool
	// BenchMode runs updates and renders back to back without waiting.
	BenchMode bool
	// Lazy renders only after input and blocks waiting for the next one.
	Lazy bool
}

func DefaultSettings() Settings {
	return Settings{
		MaxFPS:      DefaultMaxFPS,
		UPS:         DefaultUPS,
		UPSReset:    DefaultUPSReset,
		SwapBuffers: true,
	}
}

func (s Settings) Validate() error {
	if s.Lazy {
		return nil
	}
	if s.MaxFPS == 0 {
		return fmt.Errorf("max_fps must be positive")
	}
	if s.UPS == 0 {
		return fmt.Errorf("ups must be positive")
	}
	return nil
}

func (s Settings) updateInterval() time.Duration {
	return rateInterval(s.UPS)
}

func (s Settings) frameInterval() time.Duration {
	return rateInterval(s.MaxFPS)
}

func rateInterval(perSecond uint64) time.Duration {
	if perSecond == 0 {
		return 0
	}
	return time.Second / time.Duration(perSecond)
}

// EventLoop is implemented by windows that carry loop settings.
type EventLoop interface {
	EventSettings() Settings
	SetEventSettings(s Settings)
}
