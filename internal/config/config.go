// Package config manages application configuration
package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	// InputDir is the folder holding trustee report files.
	InputDir string

	// OutputPath is where the generated CSV/feed file is written.
	OutputPath string

	// AliasDBPath is the sqlite reference database holding the bond
	// alias registry.
	AliasDBPath string

	// LogLevel is a logrus level name ("debug", "info", "warn", ...).
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		InputDir:    getEnv("TRUSTEE_INPUT_DIR", "samples"),
		OutputPath:  getEnv("TRUSTEE_OUTPUT_PATH", "holdings.csv"),
		AliasDBPath: getEnv("TRUSTEE_ALIAS_DB", "refdata.db"),
		LogLevel:    getEnv("TRUSTEE_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
