package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
	}
}

// GetScope GET /team/scope 当前用户可查看的账户
func (h *TeamHandler) GetScope(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	owners := h.teamSvc.ResolveAccessibleOwners(c.Request.Context(), principalID)
	response.Success(c, &dto.AccessScopeDTO{
		PrincipalID: principalID,
		OwnerIDs:    owners,
	})
}
