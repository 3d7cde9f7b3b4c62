package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	l, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer l.Close()

	slog.Info("started", "version", "test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestSetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	l, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer l.Close()

	l.SetLevel("warn")
	slog.Info("hidden info")
	slog.Warn("visible warning")

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden info") {
		t.Error("info entry logged at warn level")
	}
	if !strings.Contains(string(data), "visible warning") {
		t.Error("warn entry missing")
	}

	// Unknown levels fall back to info.
	l.SetLevel("verbose")
	slog.Info("info again")
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "info again") {
		t.Error("fallback to info did not take effect")
	}
}

func TestTruncateIfNeeded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 2048)), 0644); err != nil {
		t.Fatal(err)
	}

	truncateIfNeeded(path, 1024)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("size after truncation = %d, want 0", info.Size())
	}

	// Under the cap nothing happens.
	if err := os.WriteFile(path, []byte("short"), 0644); err != nil {
		t.Fatal(err)
	}
	truncateIfNeeded(path, 1024)
	info, _ = os.Stat(path)
	if info.Size() == 0 {
		t.Error("file under the cap was truncated")
	}
}

func TestTruncateMissingFile(t *testing.T) {
	// Must not panic or create the file.
	path := filepath.Join(t.TempDir(), "absent.log")
	truncateIfNeeded(path, 1024)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("truncate created a missing file")
	}
}
