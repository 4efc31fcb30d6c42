// Package config provides configuration for the console backend.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the console backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Upstream backend
	BackendURL string

	// Console-local state
	DatabaseURL string

	// Logging
	LogLevel string
}

// Load loads configuration from a .env file when present, then from
// environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using environment variables only")
	}

	cfg := &Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		BackendURL:  getEnv("BACKEND_URL", "http://127.0.0.1:17823"),
		DatabaseURL: getEnv("DATABASE_URL", "file:console.db?cache=shared&mode=rwc"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
