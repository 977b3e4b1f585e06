package service

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/model"
	"SocialPulse/internal/pkg/engagement"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// PostListQuery 帖子分页条件，Page/PageSize 为空时取默认值
type PostListQuery struct {
	Platform string
	Page     *int
	PageSize *int
}

type PostService interface {
	// ListPosts 分页获取可访问账户的帖子，按发布时间倒序
	ListPosts(ctx context.Context, principalID string, q PostListQuery) (*dto.PostListResultDTO, error)
	// GetPost 获取单条帖子，不在可访问范围内视为不存在
	GetPost(ctx context.Context, principalID string, postID string) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	teamSvc  TeamService
}

func NewPostService(postRepo repository.PostRepo, teamSvc TeamService) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		teamSvc:  teamSvc,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, principalID string, q PostListQuery) (*dto.PostListResultDTO, error) {
	platform, err := NormalizePlatform(q.Platform)
	if err != nil {
		return nil, err
	}
	page, pageSize := SanitizePage(q.Page, q.PageSize)
	owners := s.teamSvc.ResolveAccessibleOwners(ctx, principalID)

	posts, total, err := s.postRepo.ListPaged(ctx, owners, platform, (page-1)*pageSize, pageSize)
	if err != nil {
		log.ErrorContext(ctx, "list posts failed", "owners", len(owners), "err", err)
		return nil, ErrDataUnavailable
	}

	data := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		data = append(data, toPostDTO(p))
	}

	return &dto.PostListResultDTO{
		Data: data,
		Pagination: dto.PaginationDTO{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, principalID string, postID string) (*dto.PostDTO, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, newValidationError("id", "Invalid post ID")
	}
	owners := s.teamSvc.ResolveAccessibleOwners(ctx, principalID)

	post, err := s.postRepo.GetByIDForOwners(ctx, postID, owners)
	if err != nil {
		log.ErrorContext(ctx, "get post failed", "post_id", postID, "err", err)
		return nil, ErrDataUnavailable
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return toPostDTO(post), nil
}

func toPostDTO(p *model.Post) *dto.PostDTO {
	res := &dto.PostDTO{}
	_ = copier.Copy(res, p)
	res.Engagement = engagement.Calculate(p.EngagementMetrics())
	return res
}
