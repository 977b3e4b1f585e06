package retry

import (
	"context"
	log "log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config 指数退避参数
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

// Permanent 包装后的错误不再重试
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do 按退避策略重试 operation，ctx 取消后立即返回
func Do(ctx context.Context, name string, cfg Config, operation func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.MaxElapsedTime = 0
	bo.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)

	notify := func(err error, next time.Duration) {
		log.WarnContext(ctx, "operation failed, retrying",
			"operation", name,
			"err", err,
			"next_attempt_in", next.Round(time.Millisecond).String(),
		)
	}
	return backoff.RetryNotify(operation, policy, notify)
}
