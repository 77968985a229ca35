package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)

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

func TestInfo_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("roster").Info("friend added", "name", "Bea")

	if !strings.Contains(readLog(t, logPath), "friend added") {
		t.Error("log file should contain the message")
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	log := WithComponent("test")
	log.Debug("hidden-debug-marker")
	if strings.Contains(readLog(t, logPath), "hidden-debug-marker") {
		t.Error("debug message should be filtered at info level")
	}

	SetDebug(true)
	log.Debug("visible-debug-marker")
	if !strings.Contains(readLog(t, logPath), "visible-debug-marker") {
		t.Error("debug message should be written once debug is enabled")
	}
}

func TestWithComponent_AttachesAttribute(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("roster").Info("selection changed", "id", "118836")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=roster") {
		t.Errorf("expected component attribute in log, got:\n%s", content)
	}
	if !strings.Contains(content, "id=118836") {
		t.Errorf("expected id attribute in log, got:\n%s", content)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	WithComponent("test").Info("still-first-file")

	if !strings.Contains(readLog(t, logPath), "still-first-file") {
		t.Error("second Init should not redirect output")
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("second Init should not create a new file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestInitConsole_WritesToWriter(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	InitConsole(&buf)
	WithComponent("cmd").Warn("console-marker", "n", 3)

	if !strings.Contains(buf.String(), "console-marker") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestClose_ThenLogDoesNotPanic(t *testing.T) {
	setupTestLogger(t)

	Close()
	WithComponent("ui").Info("after close")
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				WithComponent("test").Info("concurrent", "worker", n, "n", j)
			}
		}(i)
	}
	wg.Wait()
}
