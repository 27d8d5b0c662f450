package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	API         APIConfig
	State       StateConfig
	Language    string
	LogLevel    string
	StubPort    string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StateConfig struct {
	// Path of the SQLite file holding the cart id and admin profile,
	// the CLI equivalent of the browser's local storage.
	Path string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("API_TIMEOUT_SECONDS", "30")
	viper.SetDefault("STATE_DB_PATH", "elyvra-state.db")
	viper.SetDefault("LANGUAGE", "en")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STUB_PORT", "8080")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(getEnvOrViper("API_TIMEOUT_SECONDS", "30") + "s")
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL: getEnvOrViper("API_BASE_URL", ""),
			Timeout: timeout,
		},
		State: StateConfig{
			Path: getEnvOrViper("STATE_DB_PATH", "elyvra-state.db"),
		},
		Language: getEnvOrViper("LANGUAGE", "en"),
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
		StubPort: getEnvOrViper("STUB_PORT", "8080"),
	}

	// Validate required fields
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return cfg, nil
}

// LoadStub loads configuration for the stub server, which does not need a
// backend URL of its own
func LoadStub() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if os.Getenv("API_BASE_URL") == "" {
		// The stub is the backend; point the client config at itself.
		os.Setenv("API_BASE_URL", "http://localhost:"+getEnvOrViper("STUB_PORT", "8080"))
		return Load()
	}
	return nil, err
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
