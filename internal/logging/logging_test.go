package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
		SetSession("")
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(false)
	Trace("viewport.drag", map[string]interface{}{"x": 1})
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no log file, got %v", err)
	}
}

func TestTraceWritesSessionTaggedJSON(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(true)
	SetSession("session-1")
	Trace("viewport.select", map[string]interface{}{"series": 2})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Session string                 `json:"session"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.Session != "session-1" || entry.Event != "viewport.select" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry.Payload["series"] != float64(2) {
		t.Fatalf("unexpected payload %#v", entry.Payload)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := withLogFile(t)
	Error(nil)
	Error(errors.New("catalog reload failed"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "catalog reload failed") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
}
