package usecases

import (
	"context"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/query"
)

type ListUsersCommand struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUsersResult struct {
	Users []UserSummary `json:"users"`
	Total int64         `json:"total"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	roleRepo permission.RoleRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, roleRepo permission.RoleRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	filter := user.ListFilter{
		Status:     cmd.Status,
		Search:     cmd.Search,
		BaseFilter: query.NewBaseFilter(query.WithPage(cmd.Page, cmd.PageSize)),
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		roles, err := uc.roleRepo.GetUserRoles(ctx, u.ID())
		if err != nil {
			uc.logger.Warnw("failed to load roles for user", "user_id", u.ID(), "error", err)
		}
		slugs := make([]string, 0, len(roles))
		for _, role := range roles {
			slugs = append(slugs, role.Slug())
		}

		summaries = append(summaries, UserSummary{
			ID:        u.ID(),
			Email:     u.Email().String(),
			Name:      u.Name(),
			Status:    u.Status().String(),
			Roles:     slugs,
			CreatedAt: u.CreatedAt(),
		})
	}

	return &ListUsersResult{Users: summaries, Total: total}, nil
}
