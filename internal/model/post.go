package model

import (
	"SocialPulse/internal/pkg/engagement"
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
)

// Post 单条社媒帖子及其指标，计数字段可为空
type Post struct {
	ID             string    `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID         string    `gorm:"not null;type:char(36);index:idx_user_posted" json:"user_id"`
	Platform       string    `gorm:"not null;type:varchar(16)" json:"platform"`
	PostedAt       time.Time `gorm:"not null;index:idx_user_posted" json:"posted_at"`
	Caption        *string   `gorm:"type:text" json:"caption"`
	ThumbnailURL   *string   `gorm:"type:varchar(1024)" json:"thumbnail_url"`
	Likes          *int      `json:"likes"`
	Comments       *int      `json:"comments"`
	Shares         *int      `json:"shares"`
	Saves          *int      `json:"saves"`
	Reach          *int      `json:"reach"`
	EngagementRate *float64  `json:"engagement_rate"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) PostedTime() time.Time {
	return p.PostedAt
}

func (p *Post) EngagementMetrics() engagement.Metrics {
	return engagement.Metrics{
		Likes:    p.Likes,
		Comments: p.Comments,
		Shares:   p.Shares,
		Saves:    p.Saves,
	}
}
