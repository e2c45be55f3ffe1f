package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries process-wide defaults for the CLI and the client facade.
// Every value is optional; the zero environment yields a working setup.
type Config struct {
	StoreKind string // episode store backend: memory, bolt or sqlite
	StorePath string // database file for file backed stores
	POV       string // default view spec for new episodes
	Seed      int64  // default random seed, 0 keeps the scenario default
}

// Load reads GRIDSCAPE_* environment variables, consulting a .env file in
// the working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads GRIDSCAPE_* variables without touching .env files.
func FromEnv() (Config, error) {
	cfg := Config{
		StoreKind: getEnvWithDefault("GRIDSCAPE_STORE", "memory"),
		StorePath: getEnvWithDefault("GRIDSCAPE_STORE_PATH", "gridscape.db"),
		POV:       getEnvWithDefault("GRIDSCAPE_POV", "global"),
	}

	if raw, ok := os.LookupEnv("GRIDSCAPE_SEED"); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("GRIDSCAPE_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
