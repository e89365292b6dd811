package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"github.com/1broseidon/nativewin/internal/config"
	"github.com/1broseidon/nativewin/internal/eventloop"
	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/nativewindow"
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/platform/headless"
	"github.com/1broseidon/nativewin/internal/runtimepath"
	"github.com/1broseidon/nativewin/internal/terminal"
	"github.com/1broseidon/nativewin/internal/window"
	"github.com/1broseidon/nativewin/internal/x11"
)

type runOptions struct {
	configPath string
	backend    string
	logPath    string
	title      string
	width      int
	height     int
	dump       bool
	pump       bool
}

func runWindow(args []string) int {
	var opts runOptions
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file path (default: ~/.config/nativewin/config.yaml)")
	fs.StringVar(&opts.backend, "backend", "", "Backend: auto, x11, terminal or headless (overrides config)")
	fs.StringVar(&opts.logPath, "log", "", "Write logs to this file (default: stderr, or the runtime dir for the terminal backend)")
	fs.StringVar(&opts.title, "title", "", "Window title (overrides config)")
	fs.IntVar(&opts.width, "width", 0, "Window width (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "Window height (overrides config)")
	fs.BoolVar(&opts.dump, "dump", false, "Dump every input value")
	fs.BoolVar(&opts.pump, "pump", false, "Read input on a dedicated goroutine instead of the event loop")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nativewin run [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and log its input until it is closed.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	res, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config
	applyRunFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	backendName := resolveBackend(cfg.Backend, os.Getenv("DISPLAY") != "", term.IsTerminal(int(os.Stdout.Fd())))

	var logOut io.Writer = os.Stderr
	logPath := opts.logPath
	if logPath == "" && backendName == config.BackendTerminal {
		// the terminal backend owns the screen
		if logPath, err = runtimepath.LogPath(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve log path: %v\n", err)
			return 1
		}
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, backendName, logger, logOut, opts); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func applyRunFlags(cfg *config.Config, opts runOptions) {
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.title != "" {
		cfg.Window.Title = opts.title
	}
	if opts.width != 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height != 0 {
		cfg.Window.Height = opts.height
	}
}

// resolveBackend picks a concrete backend for auto: X11 when a display is
// set, else the terminal when stdout is one, else headless.
func resolveBackend(name string, hasDisplay, isTerminal bool) string {
	if name != config.BackendAuto {
		return name
	}
	switch {
	case hasDisplay:
		return config.BackendX11
	case isTerminal:
		return config.BackendTerminal
	default:
		return config.BackendHeadless
	}
}

// demoScript is what the headless backend plays: a pointer visit, a typed
// key and an Escape press. The trailing close ends the run when exit on
// escape is off.
func demoScript() []platform.Event {
	return []platform.Event{
		platform.MouseEnterDisplay{X: 10, Y: 10},
		platform.MouseAxes{X: 20, Y: 15, DX: 10, DY: 5},
		platform.MouseButtonDown{X: 20, Y: 15, Buttons: platform.ButtonPrimary},
		platform.MouseButtonUp{X: 20, Y: 15, Buttons: platform.ButtonPrimary},
		platform.KeyDown{Keycode: platform.KeyH},
		platform.KeyChar{Keycode: platform.KeyH, Unichar: 'h'},
		platform.KeyUp{Keycode: platform.KeyH},
		platform.DisplayResize{Width: 800, Height: 600},
		platform.KeyDown{Keycode: platform.KeyEscape},
		platform.DisplayClose{},
	}
}

func run(ctx context.Context, cfg *config.Config, backendName string, logger *slog.Logger, logOut io.Writer, opts runOptions) error {
	var (
		backend platform.Backend
		demo    *headless.Backend
	)
	switch backendName {
	case config.BackendX11:
		backend = &x11.Backend{Center: cfg.Window.Center, Logger: logger}
	case config.BackendTerminal:
		backend = &terminal.Backend{Logger: logger}
	case config.BackendHeadless:
		demo = &headless.Backend{}
		backend = demo
	default:
		return fmt.Errorf("unknown backend %q", backendName)
	}

	eventSettings := cfg.EventSettings()
	w, err := nativewindow.New(backend, cfg.WindowSettings(), nativewindow.Config{
		Policy:        cfg.Policy(),
		EventSettings: &eventSettings,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if cfg.Window.Position != nil {
		w.SetPosition(window.Position{X: cfg.Window.Position.X, Y: cfg.Window.Position.Y})
	}
	if cfg.Window.CaptureCursor {
		w.SetCaptureCursor(true)
	}
	logger.Info("window opened", "backend", backendName, "title", w.Title(), "size", fmt.Sprintf("%dx%d", w.Size().Width, w.Size().Height))

	if demo != nil {
		demo.Display().Play(demoScript(), 100*time.Millisecond)
	}

	report := func(in input.Input) {
		logger.Info("input", "event", input.Describe(in))
		if opts.dump {
			spew.Fdump(logOut, in)
		}
	}

	if opts.pump {
		return pumpLoop(ctx, w, report)
	}
	return eventLoop(ctx, w, report, logger)
}

func eventLoop(ctx context.Context, w *nativewindow.Window, report func(input.Input), logger *slog.Logger) error {
	events := eventloop.NewEvents(w.EventSettings())
	var updates, frames int
	for {
		if ctx.Err() != nil {
			w.SetShouldClose(true)
		}
		ev, err := events.NextContext(ctx, w)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				continue
			}
			return err
		}
		switch t := ev.(type) {
		case nil:
			logger.Info("window closed", "updates", updates, "frames", frames)
			return nil
		case eventloop.Input:
			report(t.Input)
			if _, ok := t.Input.(input.Close); ok {
				w.SetShouldClose(true)
			}
		case eventloop.Update:
			updates++
		case eventloop.Render:
			frames++
		}
	}
}

// pumpLoop reads input through window.Pump, which owns the window until it
// returns; a Close input or an error cancels it.
func pumpLoop(ctx context.Context, w window.Window, report func(input.Input)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	items := make(chan window.Item)
	done := make(chan error, 1)
	go func() {
		done <- window.Pump(ctx, w, items, window.DefaultPumpInterval)
	}()

	var readErr error
	for item := range items {
		if readErr != nil {
			continue
		}
		if item.Err != nil {
			readErr = item.Err
			cancel()
			continue
		}
		report(item.Input)
		if _, ok := item.Input.(input.Close); ok {
			cancel()
		}
	}
	err := <-done
	if readErr != nil {
		return readErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
