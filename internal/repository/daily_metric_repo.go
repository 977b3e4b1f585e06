package repository

import (
	"SocialPulse/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=daily_metric_repo.go -destination=mocks/daily_metric_repo_mock.go -package=mocks
type DailyMetricRepo interface {
	ListInRange(ctx context.Context, ownerIDs []string, startDate, endDate time.Time) ([]*model.DailyMetric, error)
}

type dailyMetricRepoImpl struct {
	db *gorm.DB
}

func NewDailyMetricRepository(db *gorm.DB) DailyMetricRepo {
	return &dailyMetricRepoImpl{db: db}
}

// ListInRange 按日期闭区间获取账户每日指标
func (r *dailyMetricRepoImpl) ListInRange(ctx context.Context, ownerIDs []string, startDate, endDate time.Time) ([]*model.DailyMetric, error) {
	metrics := make([]*model.DailyMetric, 0)
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", ownerIDs).
		Where("date >= ? AND date <= ?", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)).
		Order("date ASC").
		Find(&metrics).Error
	if err != nil {
		return nil, errors.Wrap(err, "list daily metrics")
	}
	return metrics, nil
}
