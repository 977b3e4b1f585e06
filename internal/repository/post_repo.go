package repository

import (
	"SocialPulse/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostRangeQuery 按账户集合与发布时间闭区间查询
type PostRangeQuery struct {
	OwnerIDs []string
	Start    time.Time
	End      time.Time
	Platform string
}

//go:generate go run go.uber.org/mock/mockgen -source=post_repo.go -destination=mocks/post_repo_mock.go -package=mocks
type PostRepo interface {
	ListInRange(ctx context.Context, q PostRangeQuery) ([]*model.Post, error)
	ListPaged(ctx context.Context, ownerIDs []string, platform string, offset, limit int) ([]*model.Post, int64, error)
	GetByIDForOwners(ctx context.Context, id string, ownerIDs []string) (*model.Post, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

// ListInRange 获取时间窗口内的帖子，两端均包含
func (r *postRepoImpl) ListInRange(ctx context.Context, q PostRangeQuery) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := r.db.WithContext(ctx).
		Scopes(postedBetween(q)).
		Order("posted_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list posts in range")
	}
	return posts, nil
}

// ListPaged 分页获取帖子，按发布时间倒序
func (r *postRepoImpl) ListPaged(ctx context.Context, ownerIDs []string, platform string, offset, limit int) ([]*model.Post, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&model.Post{}).Scopes(ownedBy(ownerIDs), onPlatform(platform))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count posts")
	}

	posts := make([]*model.Post, 0, limit)
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(ownerIDs), onPlatform(platform)).
		Order("posted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list posts")
	}
	return posts, total, nil
}

// GetByIDForOwners 在可访问账户范围内查找帖子，不存在时返回 nil, nil
func (r *postRepoImpl) GetByIDForOwners(ctx context.Context, id string, ownerIDs []string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(ownerIDs)).
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get post")
	}
	return &post, nil
}

func ownedBy(ownerIDs []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id IN ?", ownerIDs)
	}
}

func onPlatform(platform string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if platform == "" {
			return db
		}
		return db.Where("platform = ?", platform)
	}
}

func postedBetween(q PostRangeQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(ownedBy(q.OwnerIDs), onPlatform(q.Platform)).
			Where("posted_at >= ? AND posted_at <= ?", q.Start, q.End)
	}
}
