// Package config provides configuration management for the bookpress standalone server.
// It loads settings from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the bookpress server.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Publishing PublishingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver   string // mysql, postgres, sqlite3
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Prefix   string // Table prefix (default: "bookpress_")
}

// PublishingConfig holds publishing pipeline configuration.
type PublishingConfig struct {
	WorkerCount         int  // Number of concurrent publish workers
	WorkerInterval      int  // Worker poll interval in milliseconds
	EnableNotifications bool // Enable the logging notification service
}

// Load loads configuration from environment variables.
// Follows 12-factor app principles - configuration via environment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite3"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "bookpress"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "bookpress.db"),
			Prefix:   getEnv("DB_PREFIX", "bookpress_"),
		},
		Publishing: PublishingConfig{
			WorkerCount:         getEnvInt("PUBLISH_WORKER_COUNT", 2),
			WorkerInterval:      getEnvInt("PUBLISH_WORKER_INTERVAL_MS", 500),
			EnableNotifications: getEnvBool("PUBLISH_ENABLE_NOTIFICATIONS", true),
		},
	}

	// SQLite needs no credentials; the network drivers do
	if cfg.Database.Driver != "sqlite3" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required for driver %s", cfg.Database.Driver)
	}
	if cfg.Publishing.WorkerCount <= 0 {
		return nil, fmt.Errorf("PUBLISH_WORKER_COUNT must be > 0")
	}
	if cfg.Publishing.WorkerInterval <= 0 {
		return nil, fmt.Errorf("PUBLISH_WORKER_INTERVAL_MS must be > 0")
	}

	return cfg, nil
}

// GetDSN returns the database connection string based on driver.
func (c *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(c.Driver) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.Database)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Database)
	case "sqlite3":
		return c.Database // SQLite uses file path as DSN
	default:
		return ""
	}
}

// getEnv retrieves environment variable or returns default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves environment variable as integer or returns default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool retrieves environment variable as boolean or returns default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
