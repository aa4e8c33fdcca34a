package usecases

import (
	"context"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
	UserID    uint
	IPAddress string
	UserAgent string
	RequestID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	auditor     audit.Recorder
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, auditor audit.Recorder, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		auditor:     auditor,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewValidationError("session ID is required")
	}

	if err := uc.sessionRepo.Delete(cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return errors.NewInternalError("logout failed")
	}

	entry := audit.NewEntry(cmd.UserID, audit.ActionLogout, "session", 0).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record logout audit entry", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID)
	return nil
}
