// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs to start.
type Config struct {
	// HTTPAddr is the listen address for the REST API.
	HTTPAddr string

	// DatabaseURL is a Postgres DSN. When empty the service falls back to
	// an embedded SQLite database at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	CacheCapacity  int
	CacheShards    int
	CacheTTL       time.Duration
	CacheEvictPct  int
	ShutdownPeriod time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", "menu.db"),
		CacheCapacity:  getEnvInt("CACHE_CAPACITY", 10000),
		CacheShards:    getEnvInt("CACHE_SHARDS", 64),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CacheEvictPct:  getEnvInt("CACHE_EVICTION_PERCENTAGE", 10),
		ShutdownPeriod: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
