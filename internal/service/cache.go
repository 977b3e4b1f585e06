package service

import (
	"SocialPulse/internal/pkg/daterange"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	log "log/slog"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Cache 计算结果缓存，读写失败只记日志
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetUntilMidnight(ctx context.Context, key string, value string) error
}

// NopCache 未启用 Redis 时使用
type NopCache struct{}

func (NopCache) Get(context.Context, string) (string, error) { return "", nil }

func (NopCache) SetUntilMidnight(context.Context, string, string) error { return nil }

// scopeKey 账户集合与查询条件的摘要。只用于按日粒度查询的结果，带上日期即可跨天失效
func scopeKey(prefix string, ownerIDs []string, days int, platform string, now time.Time) string {
	ids := append([]string(nil), ownerIDs...)
	sort.Strings(ids)
	raw := fmt.Sprintf("%s|%d|%s|%s", strings.Join(ids, ","), days, platform, daterange.DateOnly(now))
	sum := sha256.Sum256([]byte(raw))
	return prefix + hex.EncodeToString(sum[:])
}

func loadCached[T any](ctx context.Context, cache Cache, key string) (*T, bool) {
	val, err := cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read cache failed", "key", key, "err", err)
		return nil, false
	}
	if val == "" {
		return nil, false
	}
	var res T
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		log.WarnContext(ctx, "decode cache failed", "key", key, "err", err)
		return nil, false
	}
	return &res, true
}

func storeCached(ctx context.Context, cache Cache, key string, value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		log.WarnContext(ctx, "encode cache failed", "key", key, "err", err)
		return
	}
	if err = cache.SetUntilMidnight(ctx, key, string(b)); err != nil {
		log.WarnContext(ctx, "write cache failed", "key", key, "err", err)
	}
}
