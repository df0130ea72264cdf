package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache wraps a Redis client for JSON value caching. The underlying
// client is exposed for callers needing native structures (sorted sets,
// SET NX cooldown keys).
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache creates a new Redis cache instance from a redis:// URL.
func NewRedisCache(connectionString string, db int) (*RedisCache, error) {
	u, err := url.Parse(connectionString)
	if err != nil {
		return nil, err
	}

	password, _ := u.User.Password()
	client := redis.NewClient(&redis.Options{
		Addr:     u.Host,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ctx:    ctx,
	}, nil
}

// Client returns the underlying go-redis client.
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) Set(key string, value interface{}, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(c.ctx, key, data, ttl).Err()
}

func (c *RedisCache) Get(key string, value interface{}) error {
	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrKeyNotFound
		}
		return err
	}

	return json.Unmarshal(data, value)
}

// SetNX stores the value only when the key does not exist yet and reports
// whether it was written. Used for per-key cooldown windows.
func (c *RedisCache) SetNX(key string, value interface{}, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	return c.client.SetNX(c.ctx, key, data, ttl).Result()
}

func (c *RedisCache) Has(key string) (bool, error) {
	exists, err := c.client.Exists(c.ctx, key).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

func (c *RedisCache) Delete(key string) error {
	return c.client.Del(c.ctx, key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
