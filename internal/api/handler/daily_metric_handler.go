package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyMetricHandler struct {
	dailyMetricSvc service.DailyMetricService
}

func NewDailyMetricHandler(dailyMetricSvc service.DailyMetricService) *DailyMetricHandler {
	return &DailyMetricHandler{
		dailyMetricSvc: dailyMetricSvc,
	}
}

// GetDailyMetrics GET /metrics/daily?days=
func (h *DailyMetricHandler) GetDailyMetrics(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.DailyMetricsQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	days, err := service.ParseDays(req.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics, err := h.dailyMetricSvc.GetDailyMetrics(c.Request.Context(), principalID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
