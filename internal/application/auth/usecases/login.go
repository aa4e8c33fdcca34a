package usecases

import (
	"context"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
	RequestID string
}

type LoginResult struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      user.PasswordHasher
	auditor     audit.Recorder
	sessionTTL  time.Duration
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	auditor audit.Recorder,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		auditor:     auditor,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, errors.NewInternalError("login failed")
	}
	// Same message whether the account is missing or the password is wrong.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login rejected", "email", cmd.Email, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !u.CanLogin() {
		return nil, errors.NewForbiddenError("account is not active")
	}

	session, err := user.NewSession(u.ID(), cmd.IPAddress, cmd.UserAgent, uc.sessionTTL)
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("login failed")
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		uc.logger.Errorw("failed to store session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	entry := audit.NewEntry(u.ID(), audit.ActionLogin, "session", 0).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record login audit entry", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		UserID:    u.ID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if cmd.Password == "" {
		return errors.NewValidationError("password is required")
	}
	return nil
}
