package api

import (
	"SocialPulse/internal/api/middleware"
	"SocialPulse/internal/pkg/logger"
	"SocialPulse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RouterOptions 路由依赖的外部组件
type RouterOptions struct {
	Verifier middleware.TokenValidator
	LogIndex string
}

func SetupRouter(group *HandlersGroup, opts RouterOptions) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, opts.LogIndex)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware(opts.Verifier))
		{
			authGroup.GET("/analytics/summary", group.AnalyticsHandler.GetSummary)
			authGroup.POST("/engagement", group.EngagementHandler.GetTrends)
			authGroup.GET("/metrics/daily", group.DailyMetricHandler.GetDailyMetrics)
			authGroup.POST("/posts", group.PostHandler.ListPosts)
			authGroup.GET("/posts/:id", group.PostHandler.GetPost)
			authGroup.GET("/team/scope", group.TeamHandler.GetScope)
		}
	}

	return r
}
