package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goldencrust/bakery/config"
)

type redisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func newRedisStore() (*redisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &redisStore{rdb: rdb, ctx: ctx}, nil
}

func (r *redisStore) Get(key string, dest interface{}) bool {
	val, err := r.rdb.Get(r.ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

func (r *redisStore) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.rdb.Set(r.ctx, key, data, ttl).Err()
}

func (r *redisStore) Del(keys ...string) error {
	return r.rdb.Del(r.ctx, keys...).Err()
}
