// Package config loads server configuration from an optional TOML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/splitscan/splitscan/internal/parser"
)

// Config holds everything the server needs at startup. The parser section
// lets deployments tune the extraction heuristics without a rebuild.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// DBPath is the SQLite database file.
	DBPath string `toml:"db_path"`

	// Parser overrides the extraction keyword sets and limits. Omitted
	// fields keep their defaults.
	Parser parser.Config `toml:"parser"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "./data/splitscan.db",
		Parser: parser.DefaultConfig(),
	}
}

// Load reads the TOML file at path (skipped when path is empty or the file
// does not exist) and then applies ADDR and DB_PATH environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
