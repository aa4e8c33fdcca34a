package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type CreateUserCommand struct {
	Email     string
	Name      string
	Password  string
	RoleSlugs []string

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type CreateUserResult struct {
	UserID uint     `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

type CreateUserUseCase struct {
	userRepo user.Repository
	roleRepo permission.RoleRepository
	hasher   user.PasswordHasher
	auditor  audit.Recorder
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	roleRepo permission.RoleRepository,
	hasher user.PasswordHasher,
	auditor audit.Recorder,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		auditor:  auditor,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	email, err := valueobjects.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check user email", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	u, err := user.NewUser(email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := u.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	roleIDs, roleSlugs, err := uc.resolveRoles(ctx, cmd.RoleSlugs)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "email", email.String(), "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	if len(roleIDs) > 0 {
		if err := uc.roleRepo.ReplaceUserRoles(ctx, u.ID(), roleIDs, cmd.ActorID); err != nil {
			uc.logger.Errorw("failed to assign roles", "user_id", u.ID(), "error", err)
			return nil, errors.NewInternalError("failed to create user")
		}
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionUserCreate, "user", u.ID()).
		WithChange("email", u.Email().String()).
		WithChange("roles", roleSlugs).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user create audit entry", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "email", u.Email().String())

	return &CreateUserResult{
		UserID: u.ID(),
		Email:  u.Email().String(),
		Roles:  roleSlugs,
	}, nil
}

func (uc *CreateUserUseCase) resolveRoles(ctx context.Context, slugs []string) ([]uint, []string, error) {
	roleIDs := make([]uint, 0, len(slugs))
	roleSlugs := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		role, err := uc.roleRepo.GetBySlug(ctx, slug)
		if err != nil {
			uc.logger.Errorw("failed to look up role", "slug", slug, "error", err)
			return nil, nil, errors.NewInternalError("failed to create user")
		}
		if role == nil {
			return nil, nil, errors.NewValidationError(fmt.Sprintf("unknown role: %s", slug))
		}
		roleIDs = append(roleIDs, role.ID())
		roleSlugs = append(roleSlugs, role.Slug())
	}
	return roleIDs, roleSlugs, nil
}
