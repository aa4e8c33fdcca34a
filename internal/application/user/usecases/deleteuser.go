package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type DeleteUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	auditor     audit.Recorder
	logger      logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, auditor audit.Recorder, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		auditor:     auditor,
		logger:      logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("cannot delete your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}
	if u == nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}

	// Deleting the account kills any live sessions with it.
	if err := uc.sessionRepo.DeleteByUserID(cmd.UserID); err != nil {
		uc.logger.Warnw("failed to delete sessions for removed user", "user_id", cmd.UserID, "error", err)
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionUserDelete, "user", cmd.UserID).
		WithChange("email", u.Email().String()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user delete audit entry", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
