package config

import (
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Mongo MongoConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// MongoConfig carries the document store settings. URI and Database may be
// empty; the store then runs in disabled mode instead of failing startup.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// HasURI reports whether a connection string was provided. The diagnostics
// endpoint exposes presence only, never the value itself.
func (m MongoConfig) HasURI() bool {
	return m.URI != ""
}

// HasDatabase reports whether a target database name was provided.
func (m MongoConfig) HasDatabase() bool {
	return m.Database != ""
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "FreeDAIY API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("DATABASE_URL", ""),
			Database:       getEnv("DATABASE_NAME", ""),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
