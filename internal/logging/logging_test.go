package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "paynex.log")
	logger, closeFn, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Debug("navigate", "page", "payout")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "page=payout") {
		t.Fatalf("log missing record: %q", data)
	}
}

func TestSetupFallsBackToDiscard(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be opened as the log file
	logger, closeFn, err := Setup(dir, "info")
	if err == nil {
		t.Fatalf("expected error opening a directory")
	}
	if logger == nil || closeFn == nil {
		t.Fatalf("fallback logger missing")
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
