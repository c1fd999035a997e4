// Package config reads service configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// StoreFile keeps the last run as a JSON file on disk.
	StoreFile = "file"
	// StoreSQLite keeps the last run in a single-row sqlite table.
	StoreSQLite = "sqlite"
)

type Config struct {
	Addr           string
	BackendURL     string
	BackendTimeout time.Duration
	DataDir        string
	StoreDriver    string
	SQLitePath     string
}

func Load() Config {
	dataDir := envOr("DATA_DIR", ".data")
	return Config{
		Addr:           envOr("LISTEN_ADDR", ":8090"),
		BackendURL:     envOr("FASTAPI_BASE_URL", "http://localhost:8000"),
		BackendTimeout: durationOr("BACKEND_TIMEOUT", 5*time.Minute),
		DataDir:        dataDir,
		StoreDriver:    envOr("STORE_DRIVER", StoreFile),
		SQLitePath:     envOr("SQLITE_PATH", filepath.Join(dataDir, "last-run.db")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
