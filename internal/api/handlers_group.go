package api

import "SocialPulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AnalyticsHandler   *handler.AnalyticsHandler
	EngagementHandler  *handler.EngagementHandler
	DailyMetricHandler *handler.DailyMetricHandler
	PostHandler        *handler.PostHandler
	TeamHandler        *handler.TeamHandler
}
