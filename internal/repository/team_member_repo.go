package repository

import (
	"SocialPulse/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=team_member_repo.go -destination=mocks/team_member_repo_mock.go -package=mocks
type TeamMemberRepo interface {
	// ListActiveAdminIDs 返回授权给 memberID 且状态为 active 的管理员账户
	ListActiveAdminIDs(ctx context.Context, memberID string) ([]string, error)
}

type teamMemberRepoImpl struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepo {
	return &teamMemberRepoImpl{db: db}
}

func (r *teamMemberRepoImpl) ListActiveAdminIDs(ctx context.Context, memberID string) ([]string, error) {
	ids := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("member_user_id = ? AND status = ?", memberID, model.TeamMemberStatusActive).
		Pluck("admin_user_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "list active team admins")
	}
	return ids, nil
}
