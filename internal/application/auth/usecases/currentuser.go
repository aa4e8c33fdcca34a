package usecases

import (
	"context"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type CurrentUserResult struct {
	UserID      uint     `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Status      string   `json:"status"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type CurrentUserUseCase struct {
	userRepo user.Repository
	roleRepo permission.RoleRepository
	logger   logger.Interface
}

func NewCurrentUserUseCase(userRepo user.Repository, roleRepo permission.RoleRepository, logger logger.Interface) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, userID uint) (*CurrentUserResult, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load current user", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	roles, err := uc.roleRepo.GetUserRoles(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user roles", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}

	roleSlugs := make([]string, 0, len(roles))
	for _, role := range roles {
		roleSlugs = append(roleSlugs, role.Slug())
	}
	set := permission.NewPermissionSet(roles)

	return &CurrentUserResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Email:       u.Email().String(),
		Status:      u.Status().String(),
		Roles:       roleSlugs,
		Permissions: set.Tokens(),
	}, nil
}
