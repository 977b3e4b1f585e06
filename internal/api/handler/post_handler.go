package handler

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts POST /posts
func (s *PostHandler) ListPosts(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.PostListDTO
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListPosts(c.Request.Context(), principalID, service.PostListQuery{
		Platform: util.DerefString(req.Platform),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost GET /posts/:id
func (s *PostHandler) GetPost(c *gin.Context) {
	principalID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.PostIDDTO
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), principalID, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
