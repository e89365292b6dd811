package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw over the defaults. Names are normalized
// here; range checks are left to Validate.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Backend != nil {
		cfg.Backend = strings.ToLower(strings.TrimSpace(*raw.Backend))
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}
	if raw.UnsupportedInput != nil {
		cfg.UnsupportedInput = strings.ToLower(strings.TrimSpace(*raw.UnsupportedInput))
	}

	if w := raw.Window; w != nil {
		if w.Title != nil {
			cfg.Window.Title = *w.Title
		}
		if w.Width != nil {
			cfg.Window.Width = *w.Width
		}
		if w.Height != nil {
			cfg.Window.Height = *w.Height
		}
		if w.ExitOnEsc != nil {
			cfg.Window.ExitOnEsc = *w.ExitOnEsc
		}
		if w.CaptureCursor != nil {
			cfg.Window.CaptureCursor = *w.CaptureCursor
		}
		if w.Center != nil {
			cfg.Window.Center = *w.Center
		}
		if w.Position != nil {
			if w.Position.X == nil || w.Position.Y == nil {
				return nil, &ValidationError{Path: "window.position", Err: fmt.Errorf("position needs both x and y")}
			}
			cfg.Window.Position = &Position{X: *w.Position.X, Y: *w.Position.Y}
		}
	}

	if ev := raw.Events; ev != nil {
		if ev.MaxFPS != nil {
			cfg.Events.MaxFPS = *ev.MaxFPS
		}
		if ev.UPS != nil {
			cfg.Events.UPS = *ev.UPS
		}
		if ev.UPSReset != nil {
			cfg.Events.UPSReset = *ev.UPSReset
		}
		if ev.SwapBuffers != nil {
			cfg.Events.SwapBuffers = *ev.SwapBuffers
		}
		if ev.BenchMode != nil {
			cfg.Events.BenchMode = *ev.BenchMode
		}
		if ev.Lazy != nil {
			cfg.Events.Lazy = *ev.Lazy
		}
	}

	return cfg, nil
}
