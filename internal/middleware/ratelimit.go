package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stoicaf/stoicaf-backend/internal/database"
	"github.com/stoicaf/stoicaf-backend/internal/services"
)

const (
	// RateLimitWindow bounds the Redis counter TTL.
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the most requests an IP may make per window.
	RateLimitMaxRequests = 25
	// RateLimitKeyPrefix prefixes per-IP counter keys in Redis.
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix prefixes block markers in Redis.
	BlockedIPKeyPrefix = "blocked_ip:"
	// BlockedIPDuration is how long an offending IP stays blocked.
	BlockedIPDuration = 24 * time.Hour
)

// RateLimitMiddleware enforces a Redis-backed per-IP request budget and
// blocks IPs that exceed it. Redis errors fail open so an outage never
// takes the API down with it.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := services.GetIPAddress(r)
		ctx := context.Background()

		blockedKey := BlockedIPKeyPrefix + ip
		if blocked, err := database.RedisClient.Exists(ctx, blockedKey).Result(); err == nil && blocked > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Your IP has been temporarily blocked due to excessive requests. Please try again later."}`))
			return
		}

		counterKey := RateLimitKeyPrefix + ip
		count, err := database.RedisClient.Incr(ctx, counterKey).Result()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			database.RedisClient.Expire(ctx, counterKey, RateLimitWindow)
		}

		if count > RateLimitMaxRequests {
			database.RedisClient.Set(ctx, blockedKey, "1", BlockedIPDuration)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(fmt.Sprintf(`{"success":false,"message":"Rate limit exceeded. Your IP has been temporarily blocked. Please try again later.","retry_after":%d}`, int(RateLimitWindow.Seconds()))))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(RateLimitMaxRequests)-count, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(RateLimitWindow).Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

// UnblockIP clears a block marker (operator escape hatch).
func UnblockIP(ip string) error {
	return database.RedisClient.Del(context.Background(), BlockedIPKeyPrefix+ip).Err()
}

// IsIPBlocked reports whether an IP currently has a block marker.
func IsIPBlocked(ip string) (bool, error) {
	count, err := database.RedisClient.Exists(context.Background(), BlockedIPKeyPrefix+ip).Result()
	return count > 0, err
}
