package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// Raw types keep every field optional so merged files only override what
// they set.

type RawPosition struct {
	X *int `yaml:"x"`
	Y *int `yaml:"y"`
}

type RawWindow struct {
	Title         *string      `yaml:"title"`
	Width         *int         `yaml:"width"`
	Height        *int         `yaml:"height"`
	ExitOnEsc     *bool        `yaml:"exit_on_esc"`
	CaptureCursor *bool        `yaml:"capture_cursor"`
	Center        *bool        `yaml:"center"`
	Position      *RawPosition `yaml:"position"`
}

type RawEvents struct {
	MaxFPS      *uint64 `yaml:"max_fps"`
	UPS         *uint64 `yaml:"ups"`
	UPSReset    *uint64 `yaml:"ups_reset"`
	SwapBuffers *bool   `yaml:"swap_buffers"`
	BenchMode   *bool   `yaml:"bench_mode"`
	Lazy        *bool   `yaml:"lazy"`
}

type RawConfig struct {
	Include IncludeList `yaml:"include"`

	Backend          *string    `yaml:"backend"`
	LogLevel         *string    `yaml:"log_level"`
	UnsupportedInput *string    `yaml:"unsupported_input"`
	Window           *RawWindow `yaml:"window"`
	Events           *RawEvents `yaml:"events"`
}

func (r RawConfig) merge(overlay RawConfig) RawConfig {
	out := r
	// include is handled by the loader
	out.Include = nil

	if overlay.Backend != nil {
		out.Backend = overlay.Backend
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.UnsupportedInput != nil {
		out.UnsupportedInput = overlay.UnsupportedInput
	}
	if overlay.Window != nil {
		if out.Window == nil {
			out.Window = &RawWindow{}
		}
		merged := mergeRawWindow(*out.Window, *overlay.Window)
		out.Window = &merged
	}
	if overlay.Events != nil {
		if out.Events == nil {
			out.Events = &RawEvents{}
		}
		merged := mergeRawEvents(*out.Events, *overlay.Events)
		out.Events = &merged
	}
	return out
}

func mergeRawPosition(base RawPosition, overlay RawPosition) RawPosition {
	out := base
	if overlay.X != nil {
		out.X = overlay.X
	}
	if overlay.Y != nil {
		out.Y = overlay.Y
	}
	return out
}

func mergeRawWindow(base RawWindow, overlay RawWindow) RawWindow {
	out := base
	if overlay.Title != nil {
		out.Title = overlay.Title
	}
	if overlay.Width != nil {
		out.Width = overlay.Width
	}
	if overlay.Height != nil {
		out.Height = overlay.Height
	}
	if overlay.ExitOnEsc != nil {
		out.ExitOnEsc = overlay.ExitOnEsc
	}
	if overlay.CaptureCursor != nil {
		out.CaptureCursor = overlay.CaptureCursor
	}
	if overlay.Center != nil {
		out.Center = overlay.Center
	}
	if overlay.Position != nil {
		if out.Position == nil {
			out.Position = &RawPosition{}
		}
		merged := mergeRawPosition(*out.Position, *overlay.Position)
		out.Position = &merged
	}
	return out
}

func mergeRawEvents(base RawEvents, overlay RawEvents) RawEvents {
	out := base
	if overlay.MaxFPS != nil {
		out.MaxFPS = overlay.MaxFPS
	}
	if overlay.UPS != nil {
		out.UPS = overlay.UPS
	}
	if overlay.UPSReset != nil {
		out.UPSReset = overlay.UPSReset
	}
	if overlay.SwapBuffers != nil {
		out.SwapBuffers = overlay.SwapBuffers
	}
	if overlay.BenchMode != nil {
		out.BenchMode = overlay.BenchMode
	}
	if overlay.Lazy != nil {
		out.Lazy = overlay.Lazy
	}
	return out
}
