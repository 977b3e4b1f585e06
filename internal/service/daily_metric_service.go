package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/pkg/aggregation"
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/daterange"
	"SocialPulse/internal/pkg/engagement"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type DailyMetricService interface {
	// GetDailyMetrics 获取最近 days 天的每日互动与触达，缺失日期补零
	GetDailyMetrics(ctx context.Context, principalID string, days int) (*dto.DailyMetricsDTO, error)
}

type dailyMetricServiceImpl struct {
	dailyMetricRepo repository.DailyMetricRepo
	teamSvc         TeamService
	cache           Cache
	now             func() time.Time
}

func NewDailyMetricService(dailyMetricRepo repository.DailyMetricRepo, teamSvc TeamService, cache Cache) DailyMetricService {
	if cache == nil {
		cache = NopCache{}
	}
	return &dailyMetricServiceImpl{
		dailyMetricRepo: dailyMetricRepo,
		teamSvc:         teamSvc,
		cache:           cache,
		now:             time.Now,
	}
}

func (s *dailyMetricServiceImpl) GetDailyMetrics(ctx context.Context, principalID string, days int) (*dto.DailyMetricsDTO, error) {
	now := s.now()
	if err := ValidateDays(days, now); err != nil {
		return nil, err
	}
	owners := s.teamSvc.ResolveAccessibleOwners(ctx, principalID)

	key := scopeKey(consts.DailyMetricsKey, owners, days, "", now)
	if res, ok := loadCached[dto.DailyMetricsDTO](ctx, s.cache, key); ok {
		return res, nil
	}

	window := daterange.Range(now, days, false)
	rows, err := s.dailyMetricRepo.ListInRange(ctx, owners, window.StartDate, window.EndDate)
	if err != nil {
		log.ErrorContext(ctx, "list daily metrics failed", "owners", len(owners), "err", err)
		return nil, ErrDataUnavailable
	}

	points := make([]aggregation.DailyPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, aggregation.DailyPoint{
			Date:       daterange.DateOnly(row.Date),
			Engagement: engagement.Value(row.Engagement),
			Reach:      engagement.Value(row.Reach),
		})
	}

	res := &dto.DailyMetricsDTO{
		Metrics: aggregation.FillMissingPoints(window.StartDate, window.EndDate, aggregation.SumDailyPoints(points)),
		Period: dto.PeriodDTO{
			Start: daterange.DateOnly(window.StartDate),
			End:   daterange.DateOnly(window.EndDate),
			Days:  days,
		},
	}
	storeCached(ctx, s.cache, key, res)
	return res, nil
}
