// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Sim      SimConfig
	Paths    PathConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SimConfig holds default fake-simulation settings
type SimConfig struct {
	HaloCount int
	Seed      int64
	Redshift  float64
}

// PathConfig holds file system paths
type PathConfig struct {
	SnapshotFile string
	ExportDir    string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Sim: SimConfig{
			HaloCount: getEnvInt("SIM_HALO_COUNT", 10000),
			Seed:      getEnvInt64("SIM_SEED", 43),
			Redshift:  getEnvFloat("SIM_REDSHIFT", 0),
		},
		Paths: PathConfig{
			SnapshotFile: os.Getenv("SNAPSHOT_FILE"),
			ExportDir:    getEnv("EXPORT_DIR", "."),
		},
	}
	cfg.Database.Enabled = cfg.Database.URL != ""

	if cfg.Sim.HaloCount <= 0 {
		return nil, fmt.Errorf("SIM_HALO_COUNT must be positive, got %d", cfg.Sim.HaloCount)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
