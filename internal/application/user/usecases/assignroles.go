package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type AssignRolesCommand struct {
	UserID    uint
	RoleSlugs []string

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type AssignRolesResult struct {
	UserID uint     `json:"user_id"`
	Roles  []string `json:"roles"`
}

// AssignRolesUseCase replaces a user's role set. Takes effect on the user's
// next request since permissions are computed per request.
type AssignRolesUseCase struct {
	userRepo user.Repository
	roleRepo permission.RoleRepository
	auditor  audit.Recorder
	logger   logger.Interface
}

func NewAssignRolesUseCase(
	userRepo user.Repository,
	roleRepo permission.RoleRepository,
	auditor audit.Recorder,
	logger logger.Interface,
) *AssignRolesUseCase {
	return &AssignRolesUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		auditor:  auditor,
		logger:   logger,
	}
}

func (uc *AssignRolesUseCase) Execute(ctx context.Context, cmd AssignRolesCommand) (*AssignRolesResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to assign roles")
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	roleIDs := make([]uint, 0, len(cmd.RoleSlugs))
	roleSlugs := make([]string, 0, len(cmd.RoleSlugs))
	for _, slug := range cmd.RoleSlugs {
		role, err := uc.roleRepo.GetBySlug(ctx, slug)
		if err != nil {
			uc.logger.Errorw("failed to look up role", "slug", slug, "error", err)
			return nil, errors.NewInternalError("failed to assign roles")
		}
		if role == nil {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown role: %s", slug))
		}
		roleIDs = append(roleIDs, role.ID())
		roleSlugs = append(roleSlugs, role.Slug())
	}

	if err := uc.roleRepo.ReplaceUserRoles(ctx, cmd.UserID, roleIDs, cmd.ActorID); err != nil {
		uc.logger.Errorw("failed to replace user roles", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to assign roles")
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionRolesAssign, "user", cmd.UserID).
		WithChange("roles", roleSlugs).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record role assignment audit entry", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user roles assigned", "user_id", cmd.UserID, "roles", roleSlugs)

	return &AssignRolesResult{UserID: cmd.UserID, Roles: roleSlugs}, nil
}
