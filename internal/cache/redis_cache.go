package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/benx421/bank-api/internal/config"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "bank-api:bank-name:"

// RedisBankNameCache keeps names in Redis so every replica shares them
type RedisBankNameCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisClient opens a client for the configured Redis server
func NewRedisClient(cfg *config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisBankNameCache creates a cache on client. An empty prefix uses the default.
func NewRedisBankNameCache(client *redis.Client, prefix string, logger *slog.Logger) *RedisBankNameCache {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisBankNameCache{client: client, prefix: prefix, logger: logger}
}

func (r *RedisBankNameCache) key(code int) string {
	return r.prefix + strconv.Itoa(code)
}

// Get returns the cached name for code
func (r *RedisBankNameCache) Get(ctx context.Context, code int) (string, bool, error) {
	name, err := r.client.Get(ctx, r.key(code)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("bank name cache miss", "bank_code", code)
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	r.logger.Debug("bank name cache hit", "bank_code", code)
	return name, true, nil
}

// Set stores name for code. A zero ttl keeps the key until evicted.
func (r *RedisBankNameCache) Set(ctx context.Context, code int, name string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(code), name, ttl).Err()
}

// Ping checks the connection to Redis
func (r *RedisBankNameCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client
func (r *RedisBankNameCache) Close() error {
	return r.client.Close()
}
