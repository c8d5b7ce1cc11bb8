package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not
// answer; rate limiting and token revocation are then disabled.
func ConnectRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("info: REDIS_ADDR not set; login rate limit and token revocation disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Failed to connect to Redis at %s: %v. Rate limit and revocation disabled.", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}

	log.Println("✅ Redis connected")
	return client
}
