package dto

import "SocialPulse/internal/pkg/aggregation"

// EngagementQueryDTO POST /engagement 请求体
type EngagementQueryDTO struct {
	Days     *int    `json:"days"`
	Platform *string `json:"platform" binding:"omitempty,max=32"`
}

// MetricChangeDTO 单项指标的本期、上期与变化百分比
type MetricChangeDTO struct {
	Current  int     `json:"current"`
	Previous int     `json:"previous"`
	Change   float64 `json:"change"`
}

type EngagementSummaryDTO struct {
	Likes    MetricChangeDTO `json:"likes"`
	Comments MetricChangeDTO `json:"comments"`
	Shares   MetricChangeDTO `json:"shares"`
	Saves    MetricChangeDTO `json:"saves"`
	Total    MetricChangeDTO `json:"total"`
}

// EngagementTrendDTO 两个周期的逐日互动序列
type EngagementTrendDTO struct {
	Current  []*aggregation.DailyBucket `json:"current"`
	Previous []*aggregation.DailyBucket `json:"previous"`
	Summary  EngagementSummaryDTO       `json:"summary"`
}
