// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache for single-host persistence
// - http/standard: Standard library HTTP client with retry logic and rate limiting
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "gbase:",
//	})
//
// # HTTP Client
//
// GET and DELETE are retried on transport errors and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithRateLimit(5, 1))
//	resp, err := client.Get(ctx, "https://base.google.com/base/feeds/snippets", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Options{Level: "debug"})
//	logger.Info("Querying snippets", map[string]interface{}{
//	    "bq": "[item type:products]",
//	})
package infrastructure
