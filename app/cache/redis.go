package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Anamsayyed016/Naukrimili-sub015/app/job"
)

// RedisCache is the shared-store backend for multi-instance deployments.
// Expiry is delegated to Redis TTLs; malformed entries are treated as misses
// and deleted.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ctx: ctx}, nil
}

func (c *RedisCache) Get(key string) (*job.SearchResult, bool) {
	data, err := c.client.Get(c.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
		return nil, false
	}

	var result job.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.Evict(key)
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(key string, result *job.SearchResult, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(c.ctx, key, data, ttl).Err(); err != nil {
		slog.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Evict(key string) {
	if err := c.client.Del(c.ctx, key).Err(); err != nil {
		slog.Warn("Cache eviction failed", "key", key, "error", err)
	}
}

// Len counts entries under the search key prefix so a Redis database shared
// with other data does not inflate the number.
func (c *RedisCache) Len() int {
	var (
		count  int
		cursor uint64
	)
	for {
		keys, next, err := c.client.Scan(c.ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("Cache scan failed", "error", err)
			return count
		}
		count += len(keys)
		if next == 0 {
			return count
		}
		cursor = next
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
