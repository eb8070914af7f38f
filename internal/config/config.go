// Package config resolves runtime configuration from the environment,
// with optional .env file support for development setups.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvStoreDir      = "HUEGEN_STORE_DIR"
	EnvDefaultScheme = "HUEGEN_DEFAULT_SCHEME"
	EnvListenAddr    = "HUEGEN_LISTEN_ADDR"
	EnvLogLevel      = "HUEGEN_LOG_LEVEL"
)

// Config carries the resolved application configuration.
type Config struct {
	StoreDir      string
	DefaultScheme string
	ListenAddr    string
	LogLevel      string
}

// Load reads a .env file when present, then resolves configuration from
// the environment with sensible defaults. The store defaults to the
// user's config directory.
func Load() Config {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		StoreDir:      getEnv(EnvStoreDir, defaultStoreDir()),
		DefaultScheme: getEnv(EnvDefaultScheme, "analogous"),
		ListenAddr:    getEnv(EnvListenAddr, ":8080"),
		LogLevel:      getEnv(EnvLogLevel, "info"),
	}
}

func defaultStoreDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "huegen", "palettes")
	}
	return filepath.Join(".", ".huegen", "palettes")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
