package model

import (
	"time"
)

type DailyMetric struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     string    `gorm:"not null;type:char(36);uniqueIndex:idx_user_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date"`
	Engagement *int      `gorm:"column:engagement"`
	Reach      *int      `gorm:"column:reach"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
