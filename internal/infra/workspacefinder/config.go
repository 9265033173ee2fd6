package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/staybook/internal/domain"
)

// Environment keys that override staybook.yaml. They are read from the
// workspace .env file first and then from the process environment.
const (
	EnvReservationsDir = "STAYBOOK_RESERVATIONS_DIR"
	EnvHostsFile       = "STAYBOOK_HOSTS_FILE"
	EnvGuestsFile      = "STAYBOOK_GUESTS_FILE"
	EnvCacheTTL        = "STAYBOOK_CACHE_TTL"
)

// LoadConfig loads staybook.yaml from the workspace root, applies defaults and
// environment overrides, and resolves relative paths against root.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Staybook.Paths.ReservationsDir != "" {
		cfg.Paths.ReservationsDir = y.Staybook.Paths.ReservationsDir
	}
	if y.Staybook.Paths.HostsFile != "" {
		cfg.Paths.HostsFile = y.Staybook.Paths.HostsFile
	}
	if y.Staybook.Paths.GuestsFile != "" {
		cfg.Paths.GuestsFile = y.Staybook.Paths.GuestsFile
	}
	if y.Staybook.Cache.TTL != "" {
		ttl, err := time.ParseDuration(y.Staybook.Cache.TTL)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field cache.ttl: %w", domain.ErrInvalidConfig),
			}
		}
		cfg.Cache.TTL = ttl
	}

	if err := applyEnv(root, &cfg); err != nil {
		return cfg, err
	}

	cfg.Paths.ReservationsDir = resolve(root, cfg.Paths.ReservationsDir)
	cfg.Paths.HostsFile = resolve(root, cfg.Paths.HostsFile)
	cfg.Paths.GuestsFile = resolve(root, cfg.Paths.GuestsFile)
	return cfg, nil
}

func applyEnv(root string, cfg *domain.Config) error {
	dotenvPath := filepath.Join(root, ".env")
	vars, err := godotenv.Read(dotenvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return &domain.OpError{
				Op:   "workspacefinder.dotenv",
				Kind: domain.KindInvalidConfig,
				Path: dotenvPath,
				Err:  err,
			}
		}
		vars = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(vars[key])
	}

	if v := lookup(EnvReservationsDir); v != "" {
		cfg.Paths.ReservationsDir = v
	}
	if v := lookup(EnvHostsFile); v != "" {
		cfg.Paths.HostsFile = v
	}
	if v := lookup(EnvGuestsFile); v != "" {
		cfg.Paths.GuestsFile = v
	}
	if v := lookup(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return &domain.OpError{
				Op:   "workspacefinder.env",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%s=%q: %w", EnvCacheTTL, v, domain.ErrInvalidConfig),
			}
		}
		cfg.Cache.TTL = ttl
	}
	return nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

type yamlConfig struct {
	Staybook struct {
		Paths struct {
			ReservationsDir string `yaml:"reservations_dir"`
			HostsFile       string `yaml:"hosts_file"`
			GuestsFile      string `yaml:"guests_file"`
		} `yaml:"paths"`

		Cache struct {
			TTL string `yaml:"ttl"`
		} `yaml:"cache"`
	} `yaml:"staybook"`
}
