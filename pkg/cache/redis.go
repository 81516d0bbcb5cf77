package cache

import (
	"context"
	"encoding/json"
	"time"

	"hall-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON cache over redis. New returns nil when redis is not
// configured or unreachable; all methods are nil-safe so callers degrade to
// uncached reads without branching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func New(config utils.RedisConfig, log *zap.Logger) *Cache {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled", zap.String("addr", config.Addr), zap.Error(err))
		return nil
	}

	ttl := time.Duration(config.TTLSecs) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

// GetJSON loads key into dest, returning true on a hit
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}

	return true
}

// SetJSON stores value under key with the configured TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes specific keys
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache delete failed", zap.Error(err))
	}
}

// DeletePrefix removes every key under prefix, used to invalidate listing pages
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("Cache delete failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("Cache scan failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
