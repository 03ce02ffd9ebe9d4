// ABOUTME: Default implementations for service dependencies
// ABOUTME: Builds HTTP client, logger and cache from the environment-driven config package

package gbase

import (
	"io"
	"time"

	gerrors "gbase-api/core/errors"
	"gbase-api/core/interfaces"
	"gbase-api/infrastructure/cache/memory"
	"gbase-api/infrastructure/cache/redis"
	"gbase-api/infrastructure/cache/sqlite"
	httpInfra "gbase-api/infrastructure/http/standard"
	"gbase-api/infrastructure/logger/structured"
	"gbase-api/pkg/config"
	"gbase-api/pkg/featureflags"
)

// DefaultHTTPClient creates an HTTP client with a 30 second timeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a logger that writes warnings and above to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewDefaultLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// NewCache builds the cache backend named by cfg.Type; "none" returns nil
func NewCache(cfg config.CacheConfig) (interfaces.Cache, error) {
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "memory":
		return memory.NewMemoryCache(10 * time.Minute), nil
	case "redis":
		cache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "connect redis cache").WithCause(err)
		}
		return cache, nil
	case "sqlite":
		cache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path, 10*time.Minute)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "open sqlite cache").WithCause(err)
		}
		return cache, nil
	default:
		return nil, NewError(ErrorTypeConfiguration, "invalid cache type: "+cfg.Type)
	}
}

// NewFromConfig builds a service and all of its dependencies from cfg.
// Extra options are applied last and may override any of them.
func NewFromConfig(cfg *config.Config, extra ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid configuration").WithCause(err)
	}

	cache, err := openCache(cfg.Cache)
	if err != nil {
		return nil, gerrors.WrapError(err, "open response cache")
	}

	httpClient := httpInfra.NewStandardHTTPClient(cfg.HTTP.Timeout,
		httpInfra.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst),
		httpInfra.WithMaxRetries(cfg.HTTP.MaxRetries),
	)

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	options := []Option{
		WithCredentials(cfg.Account.Email, cfg.Account.Password),
		WithSource(cfg.Account.Source),
		WithAPIKey(cfg.Account.APIKey),
		WithServer(cfg.Account.Server),
		WithScheme(cfg.Account.Scheme),
		WithHTTPClient(httpClient),
		WithLogger(logger.With(map[string]interface{}{"service": ServiceName})),
		WithFlags(featureflags.NewEnvManager("")),
	}
	if cache != nil {
		options = append(options, WithCache(cache, cfg.Cache.TTL))
	}
	options = append(options, extra...)

	svc, err := New(options...)
	if err != nil {
		if closer, ok := cache.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, gerrors.WrapError(err, "build gbase service")
	}
	return svc, nil
}

// openCache builds the configured cache backend
var openCache = NewCache
