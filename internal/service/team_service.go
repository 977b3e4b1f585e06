package service

import (
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
)

type TeamService interface {
	// ResolveAccessibleOwners 返回登录用户可查看的账户：自己以及授权给自己的管理员账户
	ResolveAccessibleOwners(ctx context.Context, principalID string) []string
}

type teamServiceImpl struct {
	teamMemberRepo repository.TeamMemberRepo
}

func NewTeamService(teamMemberRepo repository.TeamMemberRepo) TeamService {
	return &teamServiceImpl{
		teamMemberRepo: teamMemberRepo,
	}
}

// ResolveAccessibleOwners 查询失败时只返回 principal 本身，不向上抛错
func (s *teamServiceImpl) ResolveAccessibleOwners(ctx context.Context, principalID string) []string {
	owners := []string{principalID}

	adminIDs, err := s.teamMemberRepo.ListActiveAdminIDs(ctx, principalID)
	if err != nil {
		log.WarnContext(ctx, "resolve team access failed, fallback to self", "principal", principalID, "err", err)
		return owners
	}

	seen := map[string]struct{}{principalID: {}}
	for _, id := range adminIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		owners = append(owners, id)
	}
	return owners
}
