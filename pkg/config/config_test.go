package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GBASE_EMAIL", "GBASE_PASSWORD", "GBASE_SOURCE", "GBASE_SERVER", "GBASE_SCHEME", "GBASE_API_KEY",
		"HTTP_TIMEOUT", "HTTP_RATE_LIMIT", "HTTP_RATE_BURST", "HTTP_MAX_RETRIES",
		"CACHE_TYPE", "CACHE_TTL", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY_PREFIX",
		"SQLITE_PATH", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "base.google.com", cfg.Account.Server)
	assert.Equal(t, "https", cfg.Account.Scheme)
	assert.Equal(t, "gbase-go", cfg.Account.Source)
	assert.Empty(t, cfg.Account.APIKey)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, float64(0), cfg.HTTP.RateLimit)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Equal(t, "none", cfg.Cache.Type)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "gbase:", cfg.Cache.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "api key and credentials",
			env:  map[string]string{"GBASE_API_KEY": "ABQIAA", "GBASE_EMAIL": "me@example.com", "GBASE_PASSWORD": "secret"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ABQIAA", cfg.Account.APIKey)
				assert.Equal(t, "me@example.com", cfg.Account.Email)
				assert.Equal(t, "secret", cfg.Account.Password)
			},
		},
		{
			name: "duration as go syntax",
			env:  map[string]string{"HTTP_TIMEOUT": "45s", "CACHE_TTL": "1h"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, time.Hour, cfg.Cache.TTL)
			},
		},
		{
			name: "duration as seconds",
			env:  map[string]string{"HTTP_TIMEOUT": "12"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 12*time.Second, cfg.HTTP.Timeout)
			},
		},
		{
			name: "invalid numbers fall back to defaults",
			env:  map[string]string{"HTTP_TIMEOUT": "soon", "REDIS_DB": "x", "HTTP_RATE_LIMIT": "fast"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, 0, cfg.Cache.Redis.DB)
				assert.Equal(t, float64(0), cfg.HTTP.RateLimit)
			},
		},
		{
			name: "rate limit",
			env:  map[string]string{"HTTP_RATE_LIMIT": "2.5", "HTTP_RATE_BURST": "4"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2.5, cfg.HTTP.RateLimit)
				assert.Equal(t, 4, cfg.HTTP.RateBurst)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Account: AccountConfig{Server: "base.google.com", Scheme: "https"},
			HTTP:    HTTPConfig{Timeout: time.Second},
			Cache:   CacheConfig{Type: "memory", TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty server", func(c *Config) { c.Account.Server = "" }, true},
		{"bad scheme", func(c *Config) { c.Account.Scheme = "ftp" }, true},
		{"email without password", func(c *Config) { c.Account.Email = "me@example.com" }, true},
		{"zero timeout", func(c *Config) { c.HTTP.Timeout = 0 }, true},
		{"negative rate", func(c *Config) { c.HTTP.RateLimit = -1 }, true},
		{"unknown cache", func(c *Config) { c.Cache.Type = "memcached" }, true},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis" }, true},
		{"redis with address", func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "localhost:6379" }, false},
		{"sqlite without path", func(c *Config) { c.Cache.Type = "sqlite" }, true},
		{"cache without ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"no cache without ttl", func(c *Config) { c.Cache.Type = "none"; c.Cache.TTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
