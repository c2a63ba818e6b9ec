// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"beacon/config"

	"github.com/go-redis/redis/v8"
)

// TokenCacheClient is the dedicated client for device-token caching.
var TokenCacheClient *redis.Client

// InitTokenCache initializes the Redis client backing the device-token
// cache (using DB from AppConfig).
func InitTokenCache() {
	TokenCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTokenDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := TokenCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Token Cache): %v", err)
	}
}

// GetTokenCacheClient returns the Redis client for device-token caching.
func GetTokenCacheClient() *redis.Client {
	if TokenCacheClient == nil {
		InitTokenCache()
	}
	return TokenCacheClient
}
