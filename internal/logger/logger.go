// Package logger writes the application log to a file. The terminal belongs
// to the UI, so nothing is ever logged to stdout or stderr after startup.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	logPath    string
	debug      bool
)

// DefaultLogPath is used when Init is never called.
var DefaultLogPath = filepath.Join(os.TempDir(), "skyfeed-debug.log")

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(level())
}

func level() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes every log call to it.
// Calling Init again after a successful call is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if slogLogger != nil {
		return nil
	}
	return open(path)
}

func open(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log dir for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	levelVar.Set(level())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if slogLogger != nil {
		return
	}
	if err := open(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// Path returns the file currently logged to.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logWithLevel(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message (only if debug logging is on).
func Debug(format string, args ...any) { logWithLevel(slog.LevelDebug, format, args...) }

// Info writes an info message.
func Info(format string, args ...any) { logWithLevel(slog.LevelInfo, format, args...) }

// Warn writes a warning message.
func Warn(format string, args ...any) { logWithLevel(slog.LevelWarn, format, args...) }

// Error writes an error message.
func Error(format string, args ...any) { logWithLevel(slog.LevelError, format, args...) }

// ComponentLogger returns a structured logger tagged with component.
//
//	log := logger.ComponentLogger("bsky")
//	log.Debug("xrpc", "nsid", nsid, "status", code)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(slog.String("component", component))
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset returns the package to its initial state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	logPath = ""
	debug = false
	levelVar = new(slog.LevelVar)
}
