package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/staybook/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "staybook.yaml"))
	assertFileExists(t, filepath.Join(tmp, "data", "hosts.csv"))
	assertFileExists(t, filepath.Join(tmp, "data", "guests.csv"))
	assertFileExists(t, filepath.Join(tmp, "data", "reservations"))
	assertFileExists(t, filepath.Join(tmp, ".staybook", "logs"))

	b, err := os.ReadFile(filepath.Join(tmp, "data", "guests.csv"))
	if err != nil {
		t.Fatalf("read guests: %v", err)
	}
	if !strings.HasPrefix(string(b), "guest_id,first_name") {
		t.Fatalf("expected guests header, got %q", string(b))
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "staybook.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing staybook.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read staybook.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected staybook.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read staybook.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "staybook:") {
		t.Fatalf("expected staybook.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
