package dto

import "SocialPulse/internal/pkg/aggregation"

type DailyMetricsQueryDTO struct {
	Days string `form:"days"`
}

type PeriodDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// DailyMetricsDTO 账户每日互动与触达
type DailyMetricsDTO struct {
	Metrics []*aggregation.DailyPoint `json:"metrics"`
	Period  PeriodDTO                 `json:"period"`
}
