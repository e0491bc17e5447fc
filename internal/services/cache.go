package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stoicaf/stoicaf-backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"
	// DefaultCacheTTL is the default insights cache lifetime. Insight
	// payloads go stale as soon as the user writes an entry, so TTLs stay
	// short and mutations delete the key eagerly.
	DefaultCacheTTL = 10 * time.Minute
	// MinCacheTTL is the lower clamp for custom TTLs
	MinCacheTTL = 1 * time.Minute
	// MaxCacheTTL is the upper clamp for custom TTLs
	MaxCacheTTL = 30 * time.Minute
)

// CacheService provides Redis-backed JSON caching for computed insights
type CacheService struct{}

// Get retrieves a value from cache
func (c *CacheService) Get(key string, dest interface{}) (bool, error) {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	val, err := database.RedisClient.Get(ctx, cacheKey).Result()
	if err != nil {
		return false, nil // Cache miss, not an error
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

// Set stores a value in cache with default TTL
func (c *CacheService) Set(key string, value interface{}) error {
	return c.SetWithTTL(key, value, DefaultCacheTTL)
}

// SetWithTTL stores a value in cache with custom TTL (clamped to 1-30 minutes)
func (c *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) error {
	if ttl < MinCacheTTL {
		ttl = MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}

	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return database.RedisClient.Set(ctx, cacheKey, jsonData, ttl).Err()
}

// Delete removes a value from cache
func (c *CacheService) Delete(key string) error {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key
	return database.RedisClient.Del(ctx, cacheKey).Err()
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(key string) (bool, error) {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key
	count, err := database.RedisClient.Exists(ctx, cacheKey).Result()
	return count > 0, err
}

// CacheKey generates a cache key for a specific resource
func CacheKey(resource string, identifier string) string {
	return fmt.Sprintf("%s:%s", resource, identifier)
}

// InsightsCacheKey is the cache key for a user's computed insights payload.
func InsightsCacheKey(userID string) string {
	return CacheKey("insights", userID)
}

// Global cache service instance
var Cache = &CacheService{}
