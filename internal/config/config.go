package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Session SessionConfig
	Logger  LoggerConfig
	Auth    AuthConfig
}

// ServerConfig holds the local HTTP surface configuration.
type ServerConfig struct {
	Host string
	Port int
}

// GatewayConfig holds the remote GraphQL gateway configuration.
type GatewayConfig struct {
	URL     string
	Timeout time.Duration
}

// SessionConfig holds the local session cache configuration.
type SessionConfig struct {
	Path string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds the API key the local UI presents.
type AuthConfig struct {
	APIKey string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "127.0.0.1"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Gateway: GatewayConfig{
			URL:     getEnv("GATEWAY_URL", ""),
			Timeout: time.Duration(getEnvAsInt("GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			Path: getEnv("SESSION_DB_PATH", "./comanda-session.db"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Gateway.URL == "" {
		return fmt.Errorf("gateway URL is required")
	}

	u, err := url.Parse(c.Gateway.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid gateway URL: %q", c.Gateway.URL)
	}

	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive")
	}

	if c.Session.Path == "" {
		return fmt.Errorf("session database path is required")
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
