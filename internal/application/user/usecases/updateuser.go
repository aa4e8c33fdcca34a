package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID   uint
	Email    string
	Name     string
	Status   string
	Password string

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	auditor  audit.Recorder
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, auditor audit.Recorder, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		auditor:  auditor,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to update user")
	}
	if u == nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionUserUpdate, "user", u.ID()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)

	if cmd.Email != "" && cmd.Email != u.Email().String() {
		email, err := valueobjects.NewEmail(cmd.Email)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
		if err != nil {
			return errors.NewInternalError("failed to update user")
		}
		if exists {
			return errors.NewConflictError("a user with this email already exists")
		}
		if err := u.UpdateEmail(email); err != nil {
			return errors.NewValidationError(err.Error())
		}
		entry.WithChange("email", email.String())
	}

	if cmd.Name != "" && cmd.Name != u.Name() {
		if err := u.UpdateName(cmd.Name); err != nil {
			return errors.NewValidationError(err.Error())
		}
		entry.WithChange("name", cmd.Name)
	}

	if cmd.Status != "" {
		status, err := valueobjects.ParseStatus(cmd.Status)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		oldStatus := u.Status()
		if err := u.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if oldStatus != status {
			entry.WithChange("old_status", oldStatus.String()).WithChange("new_status", status.String())
		}
	}

	if cmd.Password != "" {
		if err := u.SetPassword(cmd.Password, uc.hasher); err != nil {
			return errors.NewValidationError(err.Error())
		}
		entry.WithChange("password_changed", true)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to update user")
	}

	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user update audit entry", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user updated", "user_id", u.ID())
	return nil
}
