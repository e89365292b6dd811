package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/nativewin/internal/eventloop"
	"github.com/1broseidon/nativewin/internal/nativewindow"
	"github.com/1broseidon/nativewin/internal/window"
)

// Backend names accepted by the backend key.
const (
	BackendAuto     = "auto"
	BackendX11      = "x11"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

const (
	DefaultTitle  = "Hello Piston!"
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Position is a window origin in screen coordinates.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WindowConfig holds the settings a window is built from plus the options
// applied right after it is created.
type WindowConfig struct {
	Title         string    `yaml:"title"`
	Width         int       `yaml:"width"`
	Height        int       `yaml:"height"`
	ExitOnEsc     bool      `yaml:"exit_on_esc"`
	CaptureCursor bool      `yaml:"capture_cursor"`
	Center        bool      `yaml:"center"`
	Position      *Position `yaml:"position,omitempty"`
}

// EventsConfig mirrors eventloop.Settings.
type EventsConfig struct {
	MaxFPS      uint64 `yaml:"max_fps"`
	UPS         uint64 `yaml:"ups"`
	UPSReset    uint64 `yaml:"ups_reset"`
	SwapBuffers bool   `yaml:"swap_buffers"`
	BenchMode   bool   `yaml:"bench_mode"`
	Lazy        bool   `yaml:"lazy"`
}

// Config is the effective configuration.
type Config struct {
	Backend          string       `yaml:"backend"`
	LogLevel         string       `yaml:"log_level"`
	UnsupportedInput string       `yaml:"unsupported_input"`
	Window           WindowConfig `yaml:"window"`
	Events           EventsConfig `yaml:"events"`
}

func DefaultConfig() *Config {
	ev := eventloop.DefaultSettings()
	return &Config{
		Backend:          BackendAuto,
		LogLevel:         "info",
		UnsupportedInput: nativewindow.PolicyFail.String(),
		Window: WindowConfig{
			Title:     DefaultTitle,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			ExitOnEsc: true,
		},
		Events: EventsConfig{
			MaxFPS:      ev.MaxFPS,
			UPS:         ev.UPS,
			UPSReset:    ev.UPSReset,
			SwapBuffers: ev.SwapBuffers,
			BenchMode:   ev.BenchMode,
			Lazy:        ev.Lazy,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendX11, BackendTerminal, BackendHeadless:
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: auto, x11, terminal, headless")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if _, err := nativewindow.ParsePolicy(c.UnsupportedInput); err != nil {
		return &ValidationError{Path: "unsupported_input", Err: err}
	}
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.Window.Center && c.Window.Position != nil {
		return &ValidationError{Path: "window.position", Err: fmt.Errorf("position conflicts with center")}
	}
	if err := c.EventSettings().Validate(); err != nil {
		return &ValidationError{Path: "events", Err: err}
	}
	return nil
}

// WindowSettings returns the settings a window is built from.
func (c *Config) WindowSettings() window.Settings {
	return window.NewSettings(c.Window.Title, window.Size{Width: c.Window.Width, Height: c.Window.Height}).
		WithExitOnEsc(c.Window.ExitOnEsc)
}

func (c *Config) EventSettings() eventloop.Settings {
	return eventloop.Settings{
		MaxFPS:      c.Events.MaxFPS,
		UPS:         c.Events.UPS,
		UPSReset:    c.Events.UPSReset,
		SwapBuffers: c.Events.SwapBuffers,
		BenchMode:   c.Events.BenchMode,
		Lazy:        c.Events.Lazy,
	}
}

// Policy returns the unsupported-input policy. The config must be valid.
func (c *Config) Policy() nativewindow.Policy {
	p, _ := nativewindow.ParsePolicy(c.UnsupportedInput)
	return p
}

// SlogLevel maps log_level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Marshal renders the effective config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
