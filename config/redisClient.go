package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// ConnectRedis initializes the Redis client. Redis backs the advisory
// already-supported marker and the upvote live stream; both degrade
// when it is missing, so connect failure is logged, not fatal.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       0, // default DB
	})

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v (support markers and live upvotes disabled)", err)
		RedisClient = nil
		return
	}

	log.Println("Connected to Redis")
}
