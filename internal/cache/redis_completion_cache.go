package cache

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisCompletionCache struct {
	client rueidis.Client
}

func NewRedisCompletionCache(client rueidis.Client) *RedisCompletionCache {
	return &RedisCompletionCache{client: client}
}

func (c *RedisCompletionCache) Get(ctx context.Context, key string) (string, error) {
	cmd := c.client.B().Get().Key(key).Build()
	value, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrCacheMiss
		}
		return "", err
	}

	return value, nil
}

func (c *RedisCompletionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := c.client.B().Setex().Key(key).Seconds(seconds).Value(value).Build()
	return c.client.Do(ctx, cmd).Error()
}
