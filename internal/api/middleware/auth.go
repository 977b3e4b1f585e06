package middleware

import (
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/response"
	"SocialPulse/internal/pkg/security"
	"SocialPulse/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// TokenValidator 解析访问令牌
type TokenValidator interface {
	ValidateToken(tokenString string) (*security.UserClaims, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := security.BearerToken(c.GetHeader("Authorization"))
		claims, err := v.ValidateToken(token)
		if err != nil {
			log.InfoContext(c.Request.Context(), "reject request", "path", c.FullPath(), "err", err)
			response.Fail(c, response.Unauthorized, service.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		c.Set(consts.PrincipalIDKey, claims.Subject)
		c.Set(consts.RoleKey, claims.Role)

		c.Next()
	}
}

// PrincipalID 读取鉴权中间件写入的用户 ID
func PrincipalID(c *gin.Context) (string, bool) {
	id := c.GetString(consts.PrincipalIDKey)
	return id, id != ""
}
