package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/interfaces/http/handlers"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
)

// DocumentRouteConfig holds dependencies for document routes.
type DocumentRouteConfig struct {
	DocumentHandler *handlers.DocumentHandler
	BookmarkHandler *handlers.BookmarkHandler
	SessionAuth     *middleware.SessionAuth
}

// SetupDocumentRoutes configures document, approval and bookmark routes.
// Read endpoints take optional auth so public documents stay reachable for
// anonymous visitors.
func SetupDocumentRoutes(engine *gin.Engine, cfg *DocumentRouteConfig) {
	documents := engine.Group("/api/documents")
	{
		documents.GET("", cfg.SessionAuth.Optional(), cfg.DocumentHandler.Search)
		documents.GET("/:slug", cfg.SessionAuth.Optional(), cfg.DocumentHandler.GetBySlug)
		documents.GET("/:slug/download", cfg.SessionAuth.Optional(), cfg.DocumentHandler.Download)

		authed := documents.Group("")
		authed.Use(cfg.SessionAuth.Required())
		{
			authed.POST("", middleware.RequirePermission(permission.PermEdit), cfg.DocumentHandler.Create)
			authed.PUT("/:id", middleware.RequirePermission(permission.PermEdit), cfg.DocumentHandler.Update)
			authed.PATCH("/:id/status", middleware.RequireAnyPermission(
				permission.PermEdit,
				permission.PermApprove,
				permission.PermPublish,
				permission.PermArchive,
			), cfg.DocumentHandler.ChangeStatus)
			authed.POST("/:id/versions", middleware.RequirePermission(permission.PermUpload), cfg.DocumentHandler.UploadVersion)
			authed.DELETE("/:id", middleware.RequirePermission(permission.PermDelete), cfg.DocumentHandler.Delete)

			authed.PUT("/:id/bookmark", cfg.BookmarkHandler.Add)
			authed.DELETE("/:id/bookmark", cfg.BookmarkHandler.Remove)
		}
	}

	// Alias kept so search clients do not have to know the collection URL.
	engine.GET("/api/search", cfg.SessionAuth.Optional(), cfg.DocumentHandler.Search)

	engine.GET("/api/approvals",
		cfg.SessionAuth.Required(),
		middleware.RequirePermission(permission.PermApprove),
		cfg.DocumentHandler.ListApprovals,
	)
	engine.GET("/api/dashboard", cfg.SessionAuth.Required(), cfg.DocumentHandler.Dashboard)
	engine.GET("/api/bookmarks", cfg.SessionAuth.Required(), cfg.BookmarkHandler.List)
}
