package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"vidyalaya_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis wires the optional read-side cache. The service runs fine
// without it; leaderboard reads just hit Postgres every time.
func ConnectRedis() {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("[INFO] REDIS_ADDR not set, house-points cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] redis ping failed, cache disabled: %v", err)
		return
	}

	Redis = client
	log.Println("[INFO] redis connected")
}
