package domain

import "time"

// Config represents the staybook configuration loaded from staybook.yaml.
type Config struct {
	Paths PathsConfig
	Cache CacheConfig
}

type PathsConfig struct {
	ReservationsDir string
	HostsFile       string
	GuestsFile      string
}

type CacheConfig struct {
	// TTL bounds how long parsed host/guest files are reused before re-reading.
	TTL time.Duration
}

// DefaultConfig provides sane defaults if staybook.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			ReservationsDir: "data/reservations",
			HostsFile:       "data/hosts.csv",
			GuestsFile:      "data/guests.csv",
		},
		Cache: CacheConfig{TTL: 5 * time.Minute},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
