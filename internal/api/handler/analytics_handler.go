package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetSummary GET /analytics/summary?days=&platform=
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SummaryQueryDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	days, err := service.ParseDays(req.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.analyticsSvc.GetSummary(c.Request.Context(), principalID, service.AnalyticsQuery{
		Days:     days,
		Platform: req.Platform,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
