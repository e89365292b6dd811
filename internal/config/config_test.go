package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/nativewin/internal/nativewindow"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	s := cfg.WindowSettings()
	if s.Title != "Hello Piston!" || s.Size.Width != 640 || s.Size.Height != 480 || !s.ExitOnEsc {
		t.Fatalf("unexpected default window settings %+v", s)
	}
	if cfg.Policy() != nativewindow.PolicyFail {
		t.Fatalf("expected fail policy, got %v", cfg.Policy())
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.SlogLevel())
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Backend != BackendAuto {
		t.Fatalf("expected backend auto, got %q", res.Config.Backend)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected no files, got %v", res.Files)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", res.Config.Window.Title)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"backend: Headless",
		"log_level: debug",
		"unsupported_input: skip",
		"window:",
		"  title: demo",
		"  width: 800",
		"  exit_on_esc: false",
		"  position: {x: 10, y: 20}",
		"events:",
		"  lazy: true",
		"  ups: 30",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Backend != BackendHeadless {
		t.Fatalf("expected normalized backend, got %q", cfg.Backend)
	}
	if cfg.Policy() != nativewindow.PolicySkip {
		t.Fatalf("expected skip policy, got %v", cfg.Policy())
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.SlogLevel())
	}
	if cfg.Window.Title != "demo" || cfg.Window.Width != 800 || cfg.Window.Height != DefaultHeight || cfg.Window.ExitOnEsc {
		t.Fatalf("unexpected window config %+v", cfg.Window)
	}
	if cfg.Window.Position == nil || *cfg.Window.Position != (Position{X: 10, Y: 20}) {
		t.Fatalf("unexpected position %+v", cfg.Window.Position)
	}
	ev := cfg.EventSettings()
	if !ev.Lazy || ev.UPS != 30 || ev.MaxFPS != 60 {
		t.Fatalf("unexpected event settings %+v", ev)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "window:\n  fullscreen: true\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "fullscreen") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
		line int
	}{
		{"backend", "log_level: info\nbackend: wayland\n", "backend", 2},
		{"policy", "unsupported_input: ignore\n", "unsupported_input", 1},
		{"width", "window:\n  title: x\n  width: 0\n", "window.width", 3},
		{"partial position", "window:\n  position:\n    x: 4\n", "window.position", 3},
		{"center and position", "window:\n  center: true\n  position: {x: 1, y: 2}\n", "window.position", 3},
		{"events", "events:\n  max_fps: 0\n", "events", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, path, tt.data)

			_, err := LoadFromPath(path)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q", tt.path, verr.Path)
			}
			if verr.Source.Kind != SourceFile || verr.Source.Line != tt.line {
				t.Fatalf("expected %s line %d, got %+v", path, tt.line, verr.Source)
			}
			if !strings.HasPrefix(err.Error(), verr.Source.File+":") {
				t.Fatalf("expected file:line:col prefix, got %v", err)
			}
		})
	}
}

func TestLoadFromPath_LazyAllowsZeroRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "events:\n  lazy: true\n  max_fps: 0\n  ups: 0\n")
	if _, err := LoadFromPath(path); err != nil {
		t.Fatalf("expected lazy config to load, got %v", err)
	}
}

func TestLoadFromPath_IncludeDirectoryOrderAndMainOverrides(t *testing.T) {
	dir := t.TempDir()
	configD := filepath.Join(dir, "config.d")
	if err := os.MkdirAll(configD, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(configD, "20-override.yaml"), "window:\n  width: 1024\n  height: 768\n")
	writeFile(t, filepath.Join(configD, "10-base.yaml"), "window:\n  width: 320\n  title: base\n")
	writeFile(t, filepath.Join(configD, "notes.txt"), "not yaml: [\n")

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "include:\n  - config.d\nwindow:\n  height: 600\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := res.Config.Window
	if w.Title != "base" || w.Width != 1024 || w.Height != 600 {
		t.Fatalf("unexpected merged window %+v", w)
	}
	if len(res.Files) != 3 || !strings.HasSuffix(res.Files[0], "10-base.yaml") || res.Files[2] != canonicalPath(path) {
		t.Fatalf("unexpected load order %v", res.Files)
	}

	val, src, err := Explain(res, "window.width")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if val != 1024 || !strings.HasSuffix(src.File, "20-override.yaml") {
		t.Fatalf("expected 1024 from 20-override.yaml, got %v from %v", val, src)
	}
	val, src, err = Explain(res, "events.ups")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if val != uint64(120) || src.Kind != SourceDefault {
		t.Fatalf("expected default 120, got %v from %v", val, src)
	}
	if _, _, err := Explain(res, "window.depth"); err == nil {
		t.Fatalf("expected unknown path error")
	}
}

func TestLoadFromPath_IncludeMissingPathHasContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "include:\n  - missing.yaml\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "include") || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected include error, got %v", err)
	}
	if !strings.Contains(err.Error(), ":2:5:") {
		t.Fatalf("expected line:col of the include entry, got %v", err)
	}
}

func TestLoadFromPath_IncludeCycleDetection(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	writeFile(t, a, "include: b.yaml\n")
	writeFile(t, b, "include: a.yaml\n")

	_, err := LoadFromPath(a)
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	if !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Position = &Position{X: 3, Y: 4}
	cfg.Window.ExitOnEsc = false
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, string(data))
	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load printed config: %v\n%s", err, data)
	}
	got := res.Config
	if got.Window.ExitOnEsc || got.Window.Position == nil || *got.Window.Position != (Position{X: 3, Y: 4}) {
		t.Fatalf("printed config did not survive a reload: %+v", got.Window)
	}
}
