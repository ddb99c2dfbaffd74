package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 2 * time.Second

// RedisStorage keeps a session's keys as fields of one Redis hash, so
// several clients (one per namespace) can share a server.
type RedisStorage struct {
	client  redis.Cmdable
	hash    string
	timeout time.Duration
}

// NewRedisStorage stores keys in the hash "session:<namespace>".
func NewRedisStorage(client redis.Cmdable, namespace string) *RedisStorage {
	return &RedisStorage{client: client, hash: "session:" + namespace, timeout: defaultRedisTimeout}
}

// WithTimeout bounds every Redis call.
func (r *RedisStorage) WithTimeout(d time.Duration) *RedisStorage {
	if d > 0 {
		r.timeout = d
	}
	return r
}

func (r *RedisStorage) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	v, err := r.client.HGet(ctx, r.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.HSet(ctx, r.hash, key, value).Err()
}

func (r *RedisStorage) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.HDel(ctx, r.hash, key).Err()
}
