package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/ui"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	traceWakes := flag.Bool(config.FlagTraceWakes, false, config.FlagDescTraceWakes)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(*debugMode, *traceWakes)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(*traceWakes)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// errLaunch marks failures that happen before the clock window is shown.
var errLaunch = errors.New(config.ErrLaunch)

// newFyneApp creates the real application with persistent preferences.
func newFyneApp() fyne.App {
	return app.NewWithID(config.AppID)
}

// run initializes the Fyne application and starts the UI loop.
func run(ctx context.Context) error {
	gui, err := launch(ctx, newFyneApp)
	if err != nil {
		return err
	}

	// Blocks until the clock window closes.
	gui.Run()

	return nil
}

// launch creates the app with newApp and builds the clock window.
// The toolkit reports a missing display or graphics driver by panicking;
// that is turned into a launch error before any window is shown, as is a
// broken locale.
func launch(ctx context.Context, newApp func() fyne.App) (gui *ui.GoClockApp, err error) {
	defer func() {
		if r := recover(); r != nil {
			gui, err = nil, fmt.Errorf("%w: %v", errLaunch, r)
		}
	}()

	a := newApp()
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	gui = ui.NewGoClockApp(a, ctx)
	if err := gui.Setup(); err != nil {
		return nil, fmt.Errorf("%w: %w", errLaunch, err)
	}
	return gui, nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(traceWakes bool) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
		slog.Group(config.LogKeySampler,
			slog.Duration(config.LogKeyRes, config.SampleResolution),
			slog.Bool(config.LogKeyTrace, traceWakes),
		),
	)
}
