package config

import (
	"os"
)

type Config struct {
	Database DatabaseConfig
	LogLevel string
}

type DatabaseConfig struct {
	Path string
}

// Load creates a new Config from environment variables with defaults
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "ebookstore.db"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
