package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hithesh05/chroma-shop-essence/models"
)

// RateLimiter is a redis-backed fixed window limiter, keyed per IP,
// method and endpoint. With a nil client it becomes a pass-through so
// the app still runs without redis.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request in the window: set expiry and a stable resetAt
		if count == 1 {
			client.Expire(ctx, key, window)
			client.Set(ctx, resetKey, time.Now().Add(window).Unix(), window)
		}

		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
