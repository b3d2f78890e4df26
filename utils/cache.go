// File: garagehub/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"garagehub/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds in-progress booking-creation sessions.
var SessionCacheClient *redis.Client

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func mustPing(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitSessionCache initializes the Redis client for booking-creation sessions.
func InitSessionCache() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	mustPing(SessionCacheClient, "Session Cache")
}

// GetSessionCacheClient returns the Redis client for booking-creation sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
