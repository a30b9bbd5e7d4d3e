package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-clock/internal/config"
)

// setupLogging installs the default JSON logger on stdout and, when the
// cache directory is usable, on a log file that is reset at every start.
func setupLogging(debugMode, traceWakes bool) io.Closer {
	writers := []io.Writer{os.Stdout}

	var logFile *os.File
	if cacheDir, err := os.UserCacheDir(); err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrCacheDir, config.AppID, err)
	} else if f, err := openLogFile(cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, cacheDir, err)
	} else {
		writers = append(writers, f)
		logFile = f
	}

	slog.SetDefault(newLogger(io.MultiWriter(writers...), debugMode, traceWakes))

	if logFile == nil {
		return nil
	}
	return logFile
}

// newLogger builds the JSON logger. The sampler logs twice per second at
// debug level, so its records are held at info unless traceWakes is set.
func newLogger(w io.Writer, debugMode, traceWakes bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode || traceWakes {
		level = slog.LevelDebug
	}
	samplerLevel := slog.LevelInfo
	if traceWakes {
		samplerLevel = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	})
	return slog.New(&componentLevel{
		Handler:   h,
		component: config.CompSampler,
		level:     samplerLevel,
	})
}

// componentLevel raises the minimum level for loggers carrying
// component=<component>, leaving every other logger untouched.
type componentLevel struct {
	slog.Handler
	component string
	level     slog.Level
	matched   bool
}

func (h *componentLevel) Enabled(ctx context.Context, l slog.Level) bool {
	if h.matched && l < h.level {
		return false
	}
	return h.Handler.Enabled(ctx, l)
}

func (h *componentLevel) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.Handler = h.Handler.WithAttrs(attrs)
	for _, a := range attrs {
		if a.Key == config.LogKeyComponent && a.Value.String() == h.component {
			c.matched = true
		}
	}
	return &c
}

func (h *componentLevel) WithGroup(name string) slog.Handler {
	c := *h
	c.Handler = h.Handler.WithGroup(name)
	return &c
}

// openLogFile creates the app's directory under cacheDir with restricted
// permissions (700) and opens the log file inside it. O_TRUNC resets logs on
// restart to prevent indefinite growth.
func openLogFile(cacheDir string) (*os.File, error) {
	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	logPath := filepath.Join(appDir, config.LogFileName)
	f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return nil, err
	}
	return f, nil
}
