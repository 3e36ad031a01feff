package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	logPath := filepath.Join(t.TempDir(), "logs", "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInitCreatesDirectory(t *testing.T) {
	logPath := setupTestLogger(t)
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("log file should record initialization")
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-%d", 1)
	if strings.Contains(readLog(t, logPath), "hidden-1") {
		t.Error("debug messages should be dropped at info level")
	}

	SetDebug(true)
	Debug("shown-%d", 2)
	if !strings.Contains(readLog(t, logPath), "shown-2") {
		t.Error("debug messages should be written once debug is enabled")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("info message")
	Warn("warn message")
	Error("error %s", "message")

	content := readLog(t, logPath)
	for _, want := range []string{"level=INFO", "level=WARN", "level=ERROR", "error message"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q", want)
		}
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("bsky").Info("request", "nsid", "app.bsky.feed.getTimeline")
	content := readLog(t, logPath)
	if !strings.Contains(content, "component=bsky") || !strings.Contains(content, "nsid=app.bsky.feed.getTimeline") {
		t.Errorf("structured attributes missing from %q", content)
	}
}

func TestCloseIsSafe(t *testing.T) {
	setupTestLogger(t)
	Close()
	Close()
}
