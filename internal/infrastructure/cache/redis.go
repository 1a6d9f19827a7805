package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a client from a redis:// URL and verifies the
// connection with a ping.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] redis ping failed: %v", err)
	}
	return rdb
}

// Close releases the client's resources.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
