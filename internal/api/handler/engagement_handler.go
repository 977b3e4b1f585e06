package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewEngagementHandler(analyticsSvc service.AnalyticsService) *EngagementHandler {
	return &EngagementHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetTrends POST /engagement
func (h *EngagementHandler) GetTrends(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.EngagementQueryDTO
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	q := service.AnalyticsQuery{Days: service.DefaultDays, Platform: util.DerefString(req.Platform)}
	if req.Days != nil {
		q.Days = *req.Days
	}

	trends, err := h.analyticsSvc.GetEngagementTrends(c.Request.Context(), principalID, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trends)
}
