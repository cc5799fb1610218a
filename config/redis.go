package config

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// ConnectRedis initializes the singleton Redis client the rate limiter
// uses, from the RedisAddr/RedisPass/RedisDB configuration values. The
// client stays nil in the test environment and when the initial ping
// fails; a nil client means Redis is unavailable and rate limiting is
// effectively off.
func ConnectRedis() (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		cfg := LoadConfig()
		if cfg.AppEnv == "test" {
			return
		}

		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err = rdb.Ping(ctx).Err(); err != nil {
			redisClient = nil
			err = fmt.Errorf("redis ping failed: %w", err)
			return
		}

		redisClient = rdb
		log.Printf("Connected to Redis at %s", addr)
	})
	return redisClient, err
}

// GetRedisClient returns the connected client, or nil when Redis is
// unavailable or ConnectRedis has not been called.
func GetRedisClient() *redis.Client {
	return redisClient
}

// SetRedisClientForTesting injects a client so tests can exercise the
// paths that depend on one.
func SetRedisClientForTesting(client *redis.Client) {
	redisClient = client
}
