package dto

import "time"

// SummaryQueryDTO GET /analytics/summary 查询参数，days 为字符串以便区分缺省与非法值
type SummaryQueryDTO struct {
	Days     string `form:"days"`
	Platform string `form:"platform" binding:"omitempty,max=32"`
}

// TopPerformingPostDTO 当前周期互动数最高的帖子
type TopPerformingPostDTO struct {
	ID             string    `json:"id"`
	Caption        *string   `json:"caption"`
	Platform       string    `json:"platform"`
	Likes          *int      `json:"likes"`
	Comments       *int      `json:"comments"`
	Shares         *int      `json:"shares"`
	Saves          *int      `json:"saves"`
	EngagementRate *float64  `json:"engagement_rate"`
	PostedAt       time.Time `json:"posted_at"`
	ThumbnailURL   *string   `json:"thumbnail_url"`
	Engagement     int       `json:"engagement"`
}

// TrendIndicatorDTO 总互动数环比，value 为绝对值
type TrendIndicatorDTO struct {
	Value                float64 `json:"value"`
	IsPositive           bool    `json:"isPositive"`
	EngagementRateChange float64 `json:"engagementRateChange"`
}

// AnalyticsSummaryDTO 汇总卡片数据
type AnalyticsSummaryDTO struct {
	TotalEngagement       int                   `json:"totalEngagement"`
	AverageEngagementRate float64               `json:"averageEngagementRate"`
	TopPerformingPost     *TopPerformingPostDTO `json:"topPerformingPost"`
	TrendIndicator        TrendIndicatorDTO     `json:"trendIndicator"`
	PeriodDays            int                   `json:"periodDays"`
}
