package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware allows limit requests per window for each route and
// caller. Authenticated callers are keyed by user id, others by client IP.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, exists := c.Get(ContextUserID)
		if !exists {
			caller = c.ClientIP()
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := fmt.Sprintf("rate_limit:%s:%s", route, caller)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed", "code": "INTERNAL"})
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			if ttl, err := redisClient.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl.Round(time.Second).Seconds())))
			}
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded", "code": "RATE_LIMITED"})
			c.Abort()
			return
		}

		c.Next()
	}
}
