package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
)

// RateLimiter is a fixed-window limiter keyed per IP, method and endpoint,
// backed by Redis so the window survives restarts and is shared between
// instances.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("Redis error"))
			c.Abort()
			return
		}

		// First request in the window sets the expiry.
		if count == 1 {
			config.RedisClient.Expire(ctx, key, window)
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > int64(maxRequests) {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse("Too many requests, please slow down"))
			c.Abort()
			return
		}

		c.Next()
	}
}
