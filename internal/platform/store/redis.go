package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mercadito:"

// RedisStore keeps each collection as one JSON value under a prefixed key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects and pings the redis server.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: redis ping: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads a collection. A missing key is an empty collection.
func (r *RedisStore) Load(ctx context.Context, collection string) ([]byte, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyArray, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: redis get %s: %w", collection, err)
	}
	return raw, nil
}

// Save replaces a collection.
func (r *RedisStore) Save(ctx context.Context, collection string, data []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", collection, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
