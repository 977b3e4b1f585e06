package redis

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/retry"
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端连接，Ping 失败按退避策略重试
func InitRedis(ctx context.Context, cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	err := retry.Do(ctx, "redis ping", retry.DefaultConfig(), func() error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return err
	}

	Rdb = rdb
	return nil
}

// Close 关闭全局客户端
func Close() {
	if Rdb != nil {
		_ = Rdb.Close()
	}
}
