package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/auth/usecases"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/shared/config"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

type AuthHandler struct {
	loginUC       *usecases.LoginUseCase
	logoutUC      *usecases.LogoutUseCase
	currentUserUC *usecases.CurrentUserUseCase
	cookieCfg     config.CookieConfig
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	currentUserUC *usecases.CurrentUserUseCase,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		logoutUC:      logoutUC,
		currentUserUC: currentUserUC,
		cookieCfg:     cookieCfg,
		logger:        logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie. The session id
// never appears in the response body, only in the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email and password are required"))
		return
	}

	cmd := usecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieCfg, result.SessionID, maxAge)
	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}

// Logout deletes the server side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	cmd := usecases.LogoutCommand{
		SessionID: middleware.CurrentSessionID(c),
		UserID:    middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	if err := h.logoutUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("logout failed", "error", err)
	}

	// Clear the cookie even if the session row was already gone.
	utils.ClearSessionCookie(c, h.cookieCfg)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser returns the authenticated user's profile, roles and
// effective permissions.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	result, err := h.currentUserUC.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
