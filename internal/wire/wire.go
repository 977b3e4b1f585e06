package wire

import (
	"SocialPulse/internal/api"
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/api/handler"
	"SocialPulse/internal/pkg/security"
	"SocialPulse/internal/repository"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// BuildApplication cache 为 nil 时不缓存
func BuildApplication(db *gorm.DB, cache service.Cache, cfg *config.Config) *ApplicationContainer {
	if cache == nil || !cfg.Cache.Enabled {
		cache = service.NopCache{}
	}

	postRepo := repository.NewPostRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	dailyMetricRepo := repository.NewDailyMetricRepository(db)

	teamService := service.NewTeamService(teamMemberRepo)
	analyticsService := service.NewAnalyticsService(postRepo, teamService)
	dailyMetricService := service.NewDailyMetricService(dailyMetricRepo, teamService, cache)
	postService := service.NewPostService(postRepo, teamService)

	handlers := &api.HandlersGroup{
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
		EngagementHandler:  handler.NewEngagementHandler(analyticsService),
		DailyMetricHandler: handler.NewDailyMetricHandler(dailyMetricService),
		PostHandler:        handler.NewPostHandler(postService),
		TeamHandler:        handler.NewTeamHandler(teamService),
	}

	router := api.SetupRouter(handlers, api.RouterOptions{
		Verifier: security.NewVerifier(cfg.Auth),
		LogIndex: cfg.Log.Logstash.Index,
	})

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}
}
