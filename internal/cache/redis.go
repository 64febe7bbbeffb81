package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache miss")

const defaultTTL = 5 * time.Minute

// RedisCache is a read-through cache for catalog reads. Session
// availability is never cached: it must be recomputed on every read.
// A nil *RedisCache is valid and behaves as a permanent miss.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

func (r *RedisCache) Set(key string, value any) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, defaultTTL).Err()
}

func (r *RedisCache) Get(key string, dest any) error {
	if r == nil {
		return ErrMiss
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Invalidate drops the given keys after a catalog write.
func (r *RedisCache) Invalidate(keys ...string) error {
	if r == nil || len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}
