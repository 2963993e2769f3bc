package config

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("❌ failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis:", res)
}
