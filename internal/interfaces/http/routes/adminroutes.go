package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/interfaces/http/handlers"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	UserHandler   *handlers.UserHandler
	SystemHandler *handlers.SystemHandler
	SessionAuth   *middleware.SessionAuth
}

// SetupAdminRoutes configures user management and system maintenance routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.SessionAuth.Required())
	{
		users := admin.Group("/users")
		users.Use(middleware.RequirePermission(permission.PermManageUsers))
		{
			users.GET("", cfg.UserHandler.List)
			users.POST("", cfg.UserHandler.Create)
			users.PUT("/:id", cfg.UserHandler.Update)
			users.DELETE("/:id", cfg.UserHandler.Delete)
			users.PUT("/:id/roles", cfg.UserHandler.AssignRoles)
		}

		admin.GET("/roles", middleware.RequirePermission(permission.PermManageUsers), cfg.UserHandler.ListRoles)

		admin.GET("/audit-log", middleware.RequirePermission(permission.PermViewAuditLog), cfg.SystemHandler.ListAuditLog)

		db := admin.Group("/db")
		db.Use(middleware.RequirePermission(permission.Wildcard))
		{
			db.POST("/init", cfg.SystemHandler.InitDatabase)
			db.GET("/status", cfg.SystemHandler.DatabaseStatus)
		}
	}
}
