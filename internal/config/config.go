package config

import (
	"os"
)

type Config struct {
	Environment string
	// ShareBaseURL is the prefix for generated share links.
	ShareBaseURL string
	// ExportDir is where export artifacts are written.
	ExportDir string
	// LogDir enables file logging when non-empty.
	LogDir string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Environment:  env,
		ShareBaseURL: getEnv("SHARE_BASE_URL", "https://vault.example.com"),
		ExportDir:    getEnv("EXPORT_DIR", "exports"),
		LogDir:       getEnv("LOG_DIR", ""),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
