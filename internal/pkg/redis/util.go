package redis

import (
	"SocialPulse/internal/pkg/daterange"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 基于 Redis 的结果缓存，条目在下一个 UTC 零点过期
type Cache struct {
	client *redis.Client
	now    func() time.Time
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, now: time.Now}
}

// Get 键不存在时返回空串
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (c *Cache) SetUntilMidnight(ctx context.Context, key string, value string) error {
	return c.client.Set(ctx, key, value, UntilMidnight(c.now())).Err()
}

// UntilMidnight 距下一个 UTC 零点的时长，至少 1 秒
func UntilMidnight(now time.Time) time.Duration {
	next := daterange.Midnight(now).AddDate(0, 0, 1)
	if d := next.Sub(now.UTC()); d >= time.Second {
		return d
	}
	return time.Second
}
