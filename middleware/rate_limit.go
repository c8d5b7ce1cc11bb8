package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"looncamp-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter allows limit requests per client IP and period. A nil client
// lets everything through.
func RateLimiter(client *redis.Client, prefix string, limit int64, period time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rate_limit:" + prefix + ":" + c.ClientIP()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("⚠️ rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			setWindow(ctx, client, key, period)
		}

		if count > limit {
			// a counter left without a TTL would lock the client out forever
			if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl < 0 {
				setWindow(ctx, client, key, period)
			}
			utils.AbortJSONError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}

func setWindow(ctx context.Context, client *redis.Client, key string, period time.Duration) {
	if err := client.Expire(ctx, key, period).Err(); err != nil {
		log.Printf("⚠️ rate limiter could not set window on %s: %v", key, err)
	}
}
