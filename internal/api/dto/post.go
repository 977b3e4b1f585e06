package dto

import "time"

// PostListDTO POST /posts 请求体，分页参数超界时会被收敛而不是报错
type PostListDTO struct {
	Platform *string `json:"platform" binding:"omitempty,max=32"`
	Page     *int    `json:"page"`
	PageSize *int    `json:"pageSize"`
}

type PostIDDTO struct {
	ID string `uri:"id" binding:"required"`
}

// PostDTO 帖子及其互动数
type PostDTO struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Platform       string    `json:"platform"`
	PostedAt       time.Time `json:"posted_at"`
	Caption        *string   `json:"caption"`
	ThumbnailURL   *string   `json:"thumbnail_url"`
	Likes          *int      `json:"likes"`
	Comments       *int      `json:"comments"`
	Shares         *int      `json:"shares"`
	Saves          *int      `json:"saves"`
	Reach          *int      `json:"reach"`
	EngagementRate *float64  `json:"engagement_rate"`
	Engagement     int       `json:"engagement"`
}

type PaginationDTO struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PostListResultDTO struct {
	Data       []*PostDTO    `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}
