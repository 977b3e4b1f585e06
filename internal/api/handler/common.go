package handler

import (
	"SocialPulse/internal/api/middleware"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/service"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// principal 读取登录用户，缺失时直接返回 401
func principal(c *gin.Context) (string, bool) {
	id, ok := middleware.PrincipalID(c)
	if !ok {
		response.Error(c, service.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// bindOptionalJSON 空请求体视为全部字段缺省
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
