package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("quiet")
	logger.Warn("loud", "npc", "Guard")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "npc=Guard") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeLog, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("game created", "player", "Hero")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "player=Hero") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := Open("", "debug")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	logger.Info("nowhere")
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
}
