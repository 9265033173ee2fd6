package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/staybook/internal/domain"
)

func writeWorkspace(t *testing.T, config string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(config), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Partial config (no paths)
	root := writeWorkspace(t, "staybook:\n  cache:\n    ttl: 30s\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Cache.TTL != 30*time.Second {
		t.Fatalf("expected ttl=30s, got=%v", cfg.Cache.TTL)
	}
	if cfg.Paths.ReservationsDir != filepath.Join(root, "data", "reservations") {
		t.Fatalf("unexpected reservations dir %s", cfg.Paths.ReservationsDir)
	}
	if cfg.Paths.HostsFile != filepath.Join(root, "data", "hosts.csv") {
		t.Fatalf("unexpected hosts file %s", cfg.Paths.HostsFile)
	}
	if cfg.Paths.GuestsFile != filepath.Join(root, "data", "guests.csv") {
		t.Fatalf("unexpected guests file %s", cfg.Paths.GuestsFile)
	}
}

func TestLoadConfig_YAMLPaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere")
	root := writeWorkspace(t, "staybook:\n  paths:\n    reservations_dir: res\n    hosts_file: "+abs+"\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.ReservationsDir != filepath.Join(root, "res") {
		t.Fatalf("expected relative dir resolved, got %s", cfg.Paths.ReservationsDir)
	}
	if cfg.Paths.HostsFile != abs {
		t.Fatalf("expected absolute path kept, got %s", cfg.Paths.HostsFile)
	}
}

func TestLoadConfig_DotEnvAndProcessEnvOverride(t *testing.T) {
	root := writeWorkspace(t, "staybook:\n  paths:\n    guests_file: yaml-guests.csv\n")
	dotenv := EnvGuestsFile + "=dotenv-guests.csv\n" + EnvHostsFile + "=dotenv-hosts.csv\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(dotenv), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(EnvHostsFile, "process-hosts.csv")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.GuestsFile != filepath.Join(root, "dotenv-guests.csv") {
		t.Fatalf("expected .env to override yaml, got %s", cfg.Paths.GuestsFile)
	}
	if cfg.Paths.HostsFile != filepath.Join(root, "process-hosts.csv") {
		t.Fatalf("expected process env to win, got %s", cfg.Paths.HostsFile)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	root := writeWorkspace(t, "staybook: [unclosed\n")
	if _, err := LoadConfig(root); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}

	root = writeWorkspace(t, "staybook:\n  cache:\n    ttl: soon\n")
	if _, err := LoadConfig(root); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid ttl, got %v", err)
	}

	if _, err := LoadConfig(t.TempDir()); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
