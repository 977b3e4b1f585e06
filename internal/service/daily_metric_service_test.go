package service

import (
	"SocialPulse/internal/model"
	"SocialPulse/internal/repository/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func newDailyMetricService(t *testing.T, repo *mocks.MockDailyMetricRepo, team TeamService) *dailyMetricServiceImpl {
	t.Helper()
	s := NewDailyMetricService(repo, team, nil).(*dailyMetricServiceImpl)
	s.now = clock(fixedNow)
	return s
}

func TestGetDailyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricRepo(ctrl)
	team := &fakeTeam{owners: []string{principalID, "A"}}

	d := func(day int) time.Time { return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC) }
	repo.EXPECT().
		ListInRange(gomock.Any(), []string{principalID, "A"}, gomock.Any(), gomock.Any()).
		Return([]*model.DailyMetric{
			{UserID: principalID, Date: d(12), Engagement: intPtr(10), Reach: intPtr(100)},
			{UserID: "A", Date: d(12), Engagement: intPtr(5), Reach: nil},
			{UserID: "A", Date: d(14), Engagement: nil, Reach: intPtr(7)},
		}, nil)

	res, err := newDailyMetricService(t, repo, team).GetDailyMetrics(context.Background(), principalID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Period.Start != "2024-03-12" || res.Period.End != "2024-03-14" || res.Period.Days != 2 {
		t.Errorf("period = %+v", res.Period)
	}
	if len(res.Metrics) != 3 {
		t.Fatalf("len = %d, want 3", len(res.Metrics))
	}
	if m := res.Metrics[0]; m.Engagement != 15 || m.Reach != 100 {
		t.Errorf("2024-03-12 = %+v", m)
	}
	if m := res.Metrics[1]; m.Date != "2024-03-13" || m.Engagement != 0 || m.Reach != 0 {
		t.Errorf("2024-03-13 = %+v", m)
	}
	if m := res.Metrics[2]; m.Reach != 7 {
		t.Errorf("2024-03-14 = %+v", m)
	}
}

func TestGetDailyMetricsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricRepo(ctrl)
	s := newDailyMetricService(t, repo, &fakeTeam{})

	var ve *ValidationError
	if _, err := s.GetDailyMetrics(context.Background(), principalID, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	repo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := s.GetDailyMetrics(context.Background(), principalID, 30); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestGetDailyMetricsCachedWithinDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricRepo(ctrl)
	repo.EXPECT().
		ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*model.DailyMetric{
			{UserID: principalID, Date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), Engagement: intPtr(9)},
		}, nil).
		Times(2)

	cache := newMemoryCache()
	s := NewDailyMetricService(repo, &fakeTeam{}, cache).(*dailyMetricServiceImpl)
	ctx := context.Background()

	s.now = clock(time.Date(2024, 3, 15, 0, 5, 0, 0, time.UTC))
	morning, err := s.GetDailyMetrics(ctx, principalID, 3)
	if err != nil {
		t.Fatalf("morning: %v", err)
	}
	s.now = clock(time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC))
	evening, err := s.GetDailyMetrics(ctx, principalID, 3)
	if err != nil {
		t.Fatalf("evening: %v", err)
	}
	if cache.writes != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.writes)
	}
	if evening.Period != morning.Period || len(evening.Metrics) != len(morning.Metrics) {
		t.Fatalf("evening = %+v, morning = %+v", evening, morning)
	}

	s.now = clock(time.Date(2024, 3, 16, 0, 5, 0, 0, time.UTC))
	next, err := s.GetDailyMetrics(ctx, principalID, 3)
	if err != nil {
		t.Fatalf("next day: %v", err)
	}
	if next.Period.End != "2024-03-15" || cache.writes != 2 {
		t.Fatalf("next day period = %+v, writes = %d", next.Period, cache.writes)
	}
}

func TestGetDailyMetricsIgnoresCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricRepo(ctrl)
	repo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	s := NewDailyMetricService(repo, &fakeTeam{}, cache).(*dailyMetricServiceImpl)
	s.now = clock(fixedNow)

	if _, err := s.GetDailyMetrics(context.Background(), principalID, 7); err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
}
