package middleware

import (
	"math/rand"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/constants"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

// purgeProbability controls the lazy cleanup of expired sessions: roughly one
// in this many authenticated requests also sweeps the session table.
const purgeProbability = 100

// SessionAuth resolves the session cookie into an authenticated user. It
// loads the user's permission set once and caches it in the request context;
// handlers and the permission middleware read it from there.
type SessionAuth struct {
	sessionRepo user.SessionRepository
	permissions *permission.Service
	logger      logger.Interface
}

func NewSessionAuth(sessionRepo user.SessionRepository, permissions *permission.Service, logger logger.Interface) *SessionAuth {
	return &SessionAuth{
		sessionRepo: sessionRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// Required rejects requests without a valid, unexpired session.
func (a *SessionAuth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Optional authenticates when a valid session cookie is present but lets
// anonymous requests through. Used on public document routes.
func (a *SessionAuth) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.authenticate(c)
		c.Next()
	}
}

func (a *SessionAuth) authenticate(c *gin.Context) bool {
	sessionID := utils.GetSessionCookie(c)
	if sessionID == "" {
		return false
	}

	session, err := a.sessionRepo.GetByID(sessionID)
	if err != nil {
		a.logger.Errorw("failed to load session", "error", err)
		return false
	}
	if session == nil {
		return false
	}
	if session.IsExpired() {
		// Drop the stale row right away; the periodic sweep catches the rest.
		if err := a.sessionRepo.Delete(session.ID); err != nil {
			a.logger.Warnw("failed to delete expired session", "error", err)
		}
		return false
	}

	session.UpdateActivity()
	if err := a.sessionRepo.Update(session); err != nil {
		a.logger.Warnw("failed to touch session activity", "error", err)
	}

	set, err := a.permissions.GetPermissionSet(c.Request.Context(), session.UserID)
	if err != nil {
		a.logger.Errorw("failed to load permissions", "user_id", session.UserID, "error", err)
		return false
	}

	c.Set(constants.ContextKeyUserID, session.UserID)
	c.Set(constants.ContextKeySessionID, session.ID)
	c.Set(constants.ContextKeyPermissions, set)

	a.maybePurgeExpired()
	return true
}

// maybePurgeExpired opportunistically sweeps expired sessions. There is no
// background scheduler; cleanup rides on regular traffic.
func (a *SessionAuth) maybePurgeExpired() {
	if rand.Intn(purgeProbability) != 0 {
		return
	}
	if err := a.sessionRepo.DeleteExpired(); err != nil {
		a.logger.Warnw("failed to purge expired sessions", "error", err)
	}
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentSessionID returns the session id for the request, or "".
func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeySessionID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// IsAuthenticated reports whether the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != 0
}
