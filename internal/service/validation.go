package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/daterange"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultDays     = 30
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParseDays 解析查询参数中的 days，空串取默认值
func ParseDays(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newValidationError("days", "Days must be a valid number")
	}
	return days, nil
}

// ValidateDays days 必须大于 0 且不超过当年天数
func ValidateDays(days int, now time.Time) error {
	if days <= 0 {
		return newValidationError("days", "Days must be greater than 0")
	}
	if maxDays := daterange.MaxDaysInYear(now); days > maxDays {
		return newValidationError("days", fmt.Sprintf("Days cannot exceed %d", maxDays))
	}
	return nil
}

// NormalizePlatform 校验平台标签并转为小写，空串表示不过滤
func NormalizePlatform(platform string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(platform))
	switch p {
	case "", model.PlatformInstagram, model.PlatformTikTok:
		return p, nil
	}
	return "", newValidationError("platform", "Invalid platform. Must be 'instagram' or 'tiktok'.")
}

// SanitizePage 页码至少为 1，每页条数收敛到 [1, MaxPageSize]
func SanitizePage(page, pageSize *int) (int, int) {
	p, size := DefaultPage, DefaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}
	if p < 1 {
		p = 1
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return p, size
}
