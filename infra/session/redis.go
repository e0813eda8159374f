// Package session provides session storage backends for the web layer.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// opTimeout bounds each redis round trip; fiber.Storage has no context parameter.
const opTimeout = 3 * time.Second

// RedisStorage implements fiber.Storage on top of redis. Keys are namespaced
// with a prefix so Reset only clears session data.
type RedisStorage struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStorage connects to the redis server described by cfg and pings it.
func NewRedisStorage(cfg *config.Redis, logger *slog.Logger) (*RedisStorage, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis url is not set")
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}
	s := NewRedisStorageWithClient(redis.NewClient(opt), cfg.KeyPrefix, logger)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return s, nil
}

// NewRedisStorageWithClient wraps an existing client.
func NewRedisStorageWithClient(client *redis.Client, prefix string, logger *slog.Logger) *RedisStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStorage{client: client, prefix: prefix, logger: logger}
}

func (r *RedisStorage) key(key string) string {
	return r.prefix + key
}

// Get returns nil without error when the key does not exist.
func (r *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis session miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis session get error", "key", key, "error", err)
		return nil, err
	}
	return val, nil
}

// Set stores val under key. A zero exp keeps the key without expiry.
func (r *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := r.client.Set(ctx, r.key(key), val, exp).Err(); err != nil {
		r.logger.Error("Redis session set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis session set", "key", key, "ttl", exp)
	return nil
}

func (r *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis session delete error", "key", key, "error", err)
		return err
	}
	return nil
}

// Reset removes every key under the prefix.
func (r *RedisStorage) Reset() error {
	ctx := context.Background()
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}

var _ fiber.Storage = (*RedisStorage)(nil)
