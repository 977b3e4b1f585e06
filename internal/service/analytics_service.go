package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/aggregation"
	"SocialPulse/internal/pkg/daterange"
	"SocialPulse/internal/pkg/engagement"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// AnalyticsQuery 汇总与趋势的公共查询条件，Platform 为空表示全部平台
type AnalyticsQuery struct {
	Days     int
	Platform string
}

type AnalyticsService interface {
	// GetSummary 校验参数、解析可访问账户后计算汇总
	GetSummary(ctx context.Context, principalID string, q AnalyticsQuery) (*dto.AnalyticsSummaryDTO, error)
	// ComputeSummary 对给定账户集合计算本期与上期的汇总对比
	ComputeSummary(ctx context.Context, ownerIDs []string, q AnalyticsQuery) (*dto.AnalyticsSummaryDTO, error)
	// GetEngagementTrends 本期与上期逐日互动趋势
	GetEngagementTrends(ctx context.Context, principalID string, q AnalyticsQuery) (*dto.EngagementTrendDTO, error)
}

type analyticsServiceImpl struct {
	postRepo repository.PostRepo
	teamSvc  TeamService
	now      func() time.Time
}

// NewAnalyticsService 汇总与趋势每次按请求时刻重新计算，窗口终点精确到时刻，不做缓存
func NewAnalyticsService(postRepo repository.PostRepo, teamSvc TeamService) AnalyticsService {
	return &analyticsServiceImpl{
		postRepo: postRepo,
		teamSvc:  teamSvc,
		now:      time.Now,
	}
}

func (s *analyticsServiceImpl) GetSummary(ctx context.Context, principalID string, q AnalyticsQuery) (*dto.AnalyticsSummaryDTO, error) {
	now := s.now()
	q, err := validateQuery(q, now)
	if err != nil {
		return nil, err
	}
	owners := s.teamSvc.ResolveAccessibleOwners(ctx, principalID)
	return s.computeSummary(ctx, owners, q, now)
}

func (s *analyticsServiceImpl) ComputeSummary(ctx context.Context, ownerIDs []string, q AnalyticsQuery) (*dto.AnalyticsSummaryDTO, error) {
	now := s.now()
	q, err := validateQuery(q, now)
	if err != nil {
		return nil, err
	}
	if len(ownerIDs) == 0 {
		return nil, ErrParamInvalid
	}
	return s.computeSummary(ctx, ownerIDs, q, now)
}

func (s *analyticsServiceImpl) computeSummary(ctx context.Context, ownerIDs []string, q AnalyticsQuery, now time.Time) (*dto.AnalyticsSummaryDTO, error) {
	periods := daterange.Comparison(now, q.Days)
	current, previous, err := s.fetchPeriods(ctx, ownerIDs, q.Platform, periods)
	if err != nil {
		return nil, err
	}

	return composeSummary(current, previous, q.Days), nil
}

func (s *analyticsServiceImpl) GetEngagementTrends(ctx context.Context, principalID string, q AnalyticsQuery) (*dto.EngagementTrendDTO, error) {
	now := s.now()
	q, err := validateQuery(q, now)
	if err != nil {
		return nil, err
	}
	owners := s.teamSvc.ResolveAccessibleOwners(ctx, principalID)

	periods := daterange.Comparison(now, q.Days)
	current, previous, err := s.fetchPeriods(ctx, owners, q.Platform, periods)
	if err != nil {
		return nil, err
	}

	return composeTrends(current, previous, periods), nil
}

// fetchPeriods 并发查询两个窗口，两者都完成后才返回；任一失败即整体失败
func (s *analyticsServiceImpl) fetchPeriods(
	ctx context.Context,
	ownerIDs []string,
	platform string,
	periods daterange.Periods,
) ([]*model.Post, []*model.Post, error) {
	var (
		g        errgroup.Group
		current  []*model.Post
		previous []*model.Post
	)

	g.Go(func() error {
		var err error
		current, err = s.postRepo.ListInRange(ctx, repository.PostRangeQuery{
			OwnerIDs: ownerIDs,
			Start:    periods.Current.StartDate,
			End:      periods.Current.EndDate,
			Platform: platform,
		})
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.postRepo.ListInRange(ctx, repository.PostRangeQuery{
			OwnerIDs: ownerIDs,
			Start:    periods.Previous.StartDate,
			End:      periods.Previous.EndDate,
			Platform: platform,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "fetch comparison periods failed", "owners", len(ownerIDs), "err", err)
		return nil, nil, ErrDataUnavailable
	}
	return current, previous, nil
}

func validateQuery(q AnalyticsQuery, now time.Time) (AnalyticsQuery, error) {
	if err := ValidateDays(q.Days, now); err != nil {
		return q, err
	}
	platform, err := NormalizePlatform(q.Platform)
	if err != nil {
		return q, err
	}
	q.Platform = platform
	return q, nil
}

// composeSummary 汇总计算，不涉及任何 I/O
func composeSummary(current, previous []*model.Post, days int) *dto.AnalyticsSummaryDTO {
	total := totalEngagement(current)
	prevTotal := totalEngagement(previous)
	avgRate := averageEngagementRate(current)
	prevAvgRate := averageEngagementRate(previous)

	trend := engagement.Trend(float64(total), float64(prevTotal))
	rateChange := engagement.Change(avgRate, prevAvgRate)

	return &dto.AnalyticsSummaryDTO{
		TotalEngagement:       total,
		AverageEngagementRate: engagement.Round(avgRate, 2),
		TopPerformingPost:     topPerformingPost(current),
		TrendIndicator: dto.TrendIndicatorDTO{
			Value:                trend.Value,
			IsPositive:           trend.IsPositive,
			EngagementRateChange: engagement.Round(rateChange, 1),
		},
		PeriodDays: days,
	}
}

func composeTrends(current, previous []*model.Post, periods daterange.Periods) *dto.EngagementTrendDTO {
	currentDays := aggregation.FillMissingDates(
		periods.Current.StartDate, periods.Current.EndDate, aggregation.AggregateByDate(current))
	previousDays := aggregation.FillMissingDates(
		periods.Previous.StartDate, periods.Previous.EndDate, aggregation.AggregateByDate(previous))

	cur := aggregation.CalculateTotals(currentDays)
	prev := aggregation.CalculateTotals(previousDays)

	return &dto.EngagementTrendDTO{
		Current:  currentDays,
		Previous: previousDays,
		Summary: dto.EngagementSummaryDTO{
			Likes:    metricChange(cur.Likes, prev.Likes),
			Comments: metricChange(cur.Comments, prev.Comments),
			Shares:   metricChange(cur.Shares, prev.Shares),
			Saves:    metricChange(cur.Saves, prev.Saves),
			Total:    metricChange(cur.Total, prev.Total),
		},
	}
}

func metricChange(current, previous int) dto.MetricChangeDTO {
	return dto.MetricChangeDTO{
		Current:  current,
		Previous: previous,
		Change:   engagement.Change(float64(current), float64(previous)),
	}
}

func totalEngagement(posts []*model.Post) int {
	total := 0
	for _, p := range posts {
		total += engagement.Calculate(p.EngagementMetrics())
	}
	return total
}

func averageEngagementRate(posts []*model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range posts {
		sum += engagement.Float(p.EngagementRate)
	}
	return sum / float64(len(posts))
}

// topPerformingPost 从左到右取互动数严格最大者，并列时保留先出现的
func topPerformingPost(posts []*model.Post) *dto.TopPerformingPostDTO {
	if len(posts) == 0 {
		return nil
	}

	top := posts[0]
	topEngagement := engagement.Calculate(top.EngagementMetrics())
	for _, p := range posts[1:] {
		if e := engagement.Calculate(p.EngagementMetrics()); e > topEngagement {
			top, topEngagement = p, e
		}
	}

	res := &dto.TopPerformingPostDTO{}
	_ = copier.Copy(res, top)
	res.Engagement = topEngagement
	return res
}
