// ABOUTME: Configuration management for the Google Base client with environment variable support
// ABOUTME: Defines configuration structures for credentials, HTTP transport, caching and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"gbase-api/pkg/utils/duration"
)

// Config holds all client configuration
type Config struct {
	// Account contains credentials and the target server
	Account AccountConfig

	// HTTP contains transport configuration
	HTTP HTTPConfig

	// Cache contains response cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// AccountConfig holds Google Base account settings
type AccountConfig struct {
	// Email and Password are used for ClientLogin
	Email    string
	Password string

	// Source identifies the calling application, e.g. "company-app-1.0"
	Source string

	// Server is the GData host, without scheme
	Server string

	// Scheme is "https" or "http"
	Scheme string

	// APIKey is sent as X-Google-Key on every request when set
	APIKey string
}

// HTTPConfig holds HTTP transport settings
type HTTPConfig struct {
	// Timeout bounds every request
	Timeout time.Duration

	// RateLimit is the number of requests per second; 0 disables throttling
	RateLimit float64

	// RateBurst is the limiter burst size
	RateBurst int

	// MaxRetries is the number of attempts for GET and DELETE
	MaxRetries int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is how long GET responses stay cached
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces cache keys
	KeyPrefix string
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is "text" or "json"
	Format string

	// File, when set, sends output to a rotated log file
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Account: AccountConfig{
			Email:    getEnvOrDefault("GBASE_EMAIL", ""),
			Password: getEnvOrDefault("GBASE_PASSWORD", ""),
			Source:   getEnvOrDefault("GBASE_SOURCE", "gbase-go"),
			Server:   getEnvOrDefault("GBASE_SERVER", "base.google.com"),
			Scheme:   getEnvOrDefault("GBASE_SCHEME", "https"),
			APIKey:   getEnvOrDefault("GBASE_API_KEY", ""),
		},
		HTTP: HTTPConfig{
			Timeout:    getEnvAsDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
			RateLimit:  getEnvAsFloatOrDefault("HTTP_RATE_LIMIT", 0),
			RateBurst:  getEnvAsIntOrDefault("HTTP_RATE_BURST", 1),
			MaxRetries: getEnvAsIntOrDefault("HTTP_MAX_RETRIES", 3),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "none"),
			TTL:  getEnvAsDurationOrDefault("CACHE_TTL", 5*time.Minute),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "gbase:"),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "gbase-cache.db"),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("45s"), plain seconds ("45") or "MM:SS"
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if d, ok := duration.Parse(os.Getenv(key)); ok {
		return d
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Server == "" {
		return errors.New("server cannot be empty")
	}

	if c.Account.Scheme != "http" && c.Account.Scheme != "https" {
		return errors.New("scheme must be 'http' or 'https'")
	}

	if (c.Account.Email == "") != (c.Account.Password == "") {
		return errors.New("email and password must be set together")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.HTTP.RateLimit < 0 {
		return errors.New("http rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case "none", "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'none', 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type != "none" && c.Cache.TTL <= 0 {
		return errors.New("cache ttl must be positive when caching is enabled")
	}

	return nil
}
