package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONToWorkspaceLog(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger, got %v", err)
	}

	want := filepath.Join(tmp, ".staybook", "logs", "staybook.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Info("reservation.added", "host_id", "h-1", "id", 3)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"reservation.added"`) {
		t.Fatalf("expected record in log, got:\n%s", b)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed, got %q", buf.String())
	}

	New(&buf, true).Debug("shown")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec["msg"] != "shown" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attr in debug mode: %v", rec)
	}
}
