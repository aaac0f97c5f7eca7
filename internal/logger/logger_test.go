package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewProductionLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "production", slog.LevelInfo)

	log.Info("state changed", "to", "battle")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "state changed" || entry["to"] != "battle" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewDevelopmentLogsText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "development", slog.LevelInfo)

	log.Info("state changed", "to", "battle")

	if !strings.Contains(buf.String(), "to=battle") {
		t.Errorf("text output = %q, want key=value pairs", buf.String())
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "development", slog.LevelWarn)

	log.Info("hidden")
	log.Warn("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn message missing")
	}
}

func TestWithSessionAndError(t *testing.T) {
	var buf bytes.Buffer
	log := WithError(WithSession(New(&buf, "development", slog.LevelInfo), "abc"), errors.New("boom"))

	log.Info("reload failed")

	out := buf.String()
	if !strings.Contains(out, "session_id=abc") || !strings.Contains(out, "error=boom") {
		t.Errorf("output = %q, want session and error attributes", out)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "sotora.log")
	log, closeFn, err := Setup(Options{Environment: "development", Level: slog.LevelInfo, Path: path})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	log, closeFn, err := Setup(Options{})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	log.Info("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}
