package config

import (
	"sync"

	"github.com/redis/go-redis/v9"
)

// SetRedisClientForTest injects client and marks the singleton as initialised, so
// ConnectRedis and GetRedisClient both return it without dialing.
// This function is only available for testing and should not be used in production code.
func SetRedisClientForTest(client *redis.Client) {
	redisOnce = sync.Once{}
	redisOnce.Do(func() {})
	redisClient = client
}

// ResetRedisClientForTest clears the client so the next ConnectRedis reads the environment again.
// This function is only available for testing and should not be used in production code.
func ResetRedisClientForTest() {
	redisClient = nil
	redisOnce = sync.Once{}
}
