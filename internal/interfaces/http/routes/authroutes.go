package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/interfaces/http/handlers"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	SessionAuth *middleware.SessionAuth
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.SessionAuth.Required(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.SessionAuth.Required(), cfg.AuthHandler.GetCurrentUser)
	}
}
