package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at a YAML path and where it came from.
//
// Supported paths:
//
//	backend
//	log_level
//	unsupported_input
//	window
//	window.<title|width|height|exit_on_esc|capture_cursor|center|position>
//	window.position.<x|y>
//	events
//	events.<max_fps|ups|ups_reset|swap_buffers|bench_mode|lazy>
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}
	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	unknown := fmt.Errorf("unknown path: %s", path)

	switch parts[0] {
	case "backend", "log_level", "unsupported_input":
		if len(parts) != 1 {
			return nil, unknown
		}
		return map[string]string{
			"backend":           cfg.Backend,
			"log_level":         cfg.LogLevel,
			"unsupported_input": cfg.UnsupportedInput,
		}[parts[0]], nil

	case "window":
		w := cfg.Window
		if len(parts) == 1 {
			return w, nil
		}
		if parts[1] == "position" {
			switch {
			case len(parts) == 2 && w.Position == nil:
				return nil, nil
			case len(parts) == 2:
				return *w.Position, nil
			case len(parts) == 3 && w.Position != nil && parts[2] == "x":
				return w.Position.X, nil
			case len(parts) == 3 && w.Position != nil && parts[2] == "y":
				return w.Position.Y, nil
			}
			return nil, unknown
		}
		if len(parts) != 2 {
			return nil, unknown
		}
		switch parts[1] {
		case "title":
			return w.Title, nil
		case "width":
			return w.Width, nil
		case "height":
			return w.Height, nil
		case "exit_on_esc":
			return w.ExitOnEsc, nil
		case "capture_cursor":
			return w.CaptureCursor, nil
		case "center":
			return w.Center, nil
		}

	case "events":
		ev := cfg.Events
		if len(parts) == 1 {
			return ev, nil
		}
		if len(parts) != 2 {
			return nil, unknown
		}
		switch parts[1] {
		case "max_fps":
			return ev.MaxFPS, nil
		case "ups":
			return ev.UPS, nil
		case "ups_reset":
			return ev.UPSReset, nil
		case "swap_buffers":
			return ev.SwapBuffers, nil
		case "bench_mode":
			return ev.BenchMode, nil
		case "lazy":
			return ev.Lazy, nil
		}
	}
	return nil, unknown
}
