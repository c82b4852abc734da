package config

import (
	"os"
	"strconv"
	"time"

	"claimguard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Trust   TrustConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// BackendConfig selects and parameterizes the analysis backend
type BackendConfig struct {
	// Embedded runs the in-process analyzer instead of calling a remote
	// backend over HTTP
	Embedded bool
	URL      string
	Timeout  time.Duration
}

// TrustConfig holds evidence-fetching settings for the trust engine
type TrustConfig struct {
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Backend: BackendConfig{
			Embedded: getEnvBoolOrDefault("ANALYZER_EMBEDDED", true),
			URL:      getEnvOrDefault("ANALYZER_URL", "http://localhost:5000"),
			Timeout:  getEnvDurationOrDefault("ANALYZER_TIMEOUT", 15*time.Second),
		},
		Trust: TrustConfig{
			FetchTimeout: getEnvDurationOrDefault("TRUST_FETCH_TIMEOUT", 4*time.Second),
			CacheTTL:     getEnvDurationOrDefault("TRUST_CACHE_TTL", 10*time.Minute),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if !config.Backend.Embedded && config.Backend.URL == "" {
		return errors.ConfigInvalid("ANALYZER_URL is required when the embedded analyzer is disabled")
	}
	if config.Backend.Timeout <= 0 {
		return errors.ConfigInvalid("analyzer timeout must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
