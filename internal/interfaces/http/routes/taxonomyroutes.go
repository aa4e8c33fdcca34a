package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/interfaces/http/handlers"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
)

// TaxonomyRouteConfig holds dependencies for taxonomy routes.
type TaxonomyRouteConfig struct {
	TaxonomyHandler *handlers.TaxonomyHandler
	SessionAuth     *middleware.SessionAuth
}

// SetupTaxonomyRoutes configures category, tag and business unit routes.
// Reads are public so the browse sidebar renders for anonymous visitors.
func SetupTaxonomyRoutes(engine *gin.Engine, cfg *TaxonomyRouteConfig) {
	engine.GET("/api/categories", cfg.TaxonomyHandler.GetCategoryTree)
	engine.GET("/api/tags", cfg.TaxonomyHandler.ListTags)
	engine.GET("/api/business-units", cfg.TaxonomyHandler.ListBusinessUnits)

	manage := engine.Group("/api")
	manage.Use(cfg.SessionAuth.Required())
	manage.Use(middleware.RequirePermission(permission.PermManageTaxonomy))
	{
		manage.POST("/categories", cfg.TaxonomyHandler.CreateCategory)
		manage.PUT("/categories/:id", cfg.TaxonomyHandler.UpdateCategory)
		manage.DELETE("/categories/:id", cfg.TaxonomyHandler.DeleteCategory)

		manage.POST("/tags", cfg.TaxonomyHandler.CreateTag)
		manage.DELETE("/tags/:id", cfg.TaxonomyHandler.DeleteTag)

		manage.POST("/business-units", cfg.TaxonomyHandler.CreateBusinessUnit)
		manage.DELETE("/business-units/:id", cfg.TaxonomyHandler.DeleteBusinessUnit)
	}
}
