package service

import (
	"SocialPulse/internal/model"
	"context"
	"io"
	log "log/slog"
	"os"
	"sync"
	"testing"
	"time"
)

const principalID = "6f1c1c5e-2f6a-4bb0-8d8e-3a1b5b8f0001"

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	log.SetDefault(log.New(log.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func post(id string, postedAt time.Time, likes, comments, shares, saves int, rate float64) *model.Post {
	return &model.Post{
		ID:             id,
		UserID:         principalID,
		Platform:       model.PlatformInstagram,
		PostedAt:       postedAt,
		Likes:          intPtr(likes),
		Comments:       intPtr(comments),
		Shares:         intPtr(shares),
		Saves:          intPtr(saves),
		EngagementRate: floatPtr(rate),
	}
}

// fakeTeam 固定返回给定的账户集合
type fakeTeam struct {
	owners []string
	calls  int
}

func (f *fakeTeam) ResolveAccessibleOwners(_ context.Context, principalID string) []string {
	f.calls++
	if f.owners == nil {
		return []string{principalID}
	}
	return f.owners
}

// memoryCache 进程内缓存，记录写入次数
type memoryCache struct {
	mu     sync.Mutex
	data   map[string]string
	writes int
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.data[key], nil
}

func (c *memoryCache) SetUntilMidnight(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.writes++
	return nil
}
