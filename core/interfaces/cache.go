// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// The GData layer stores raw GET response bodies here, keyed by request
// identity. Implementations can be Redis, SQLite, in-memory, or anything else.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//	
//	err := cache.Set(ctx, "gbase:/base/feeds/snippets", body, 5*time.Minute)
//
//	data, err := cache.Get(ctx, "gbase:/base/feeds/snippets")
//	if err != nil {
//		// cache miss
//	}
//
//	err = cache.Delete(ctx, "gbase:/base/feeds/snippets")
//
//	err = cache.DeletePrefix(ctx, "gbase:/base/feeds/items")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key that starts with prefix.
	// Used to drop all cached variants of a resource after a write.
	DeletePrefix(ctx context.Context, prefix string) error
}