// Package http wires repositories, use cases, handlers and middleware into
// the Gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/agewithcare/policyhub/internal/application/auth/usecases"
	"github.com/agewithcare/policyhub/internal/application/bookmark"
	documentusecases "github.com/agewithcare/policyhub/internal/application/document/usecases"
	permissionapp "github.com/agewithcare/policyhub/internal/application/permission"
	"github.com/agewithcare/policyhub/internal/application/taxonomy"
	userusecases "github.com/agewithcare/policyhub/internal/application/user/usecases"
	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/infrastructure/auth"
	"github.com/agewithcare/policyhub/internal/infrastructure/config"
	"github.com/agewithcare/policyhub/internal/infrastructure/repository"
	"github.com/agewithcare/policyhub/internal/interfaces/http/handlers"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/interfaces/http/routes"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/markdown"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

// Router holds the engine and the route dependencies.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	authHandler     *handlers.AuthHandler
	documentHandler *handlers.DocumentHandler
	taxonomyHandler *handlers.TaxonomyHandler
	bookmarkHandler *handlers.BookmarkHandler
	userHandler     *handlers.UserHandler
	systemHandler   *handlers.SystemHandler
	sessionAuth     *middleware.SessionAuth
	rateLimiter     *middleware.RateLimiter
	log             logger.Interface
}

// NewRouter builds the full dependency graph on top of the shared database,
// Redis and object store connections.
func NewRouter(db *gorm.DB, redisClient *redis.Client, store document.ObjectStore, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	versionRepo := repository.NewDocumentVersionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	unitRepo := repository.NewBusinessUnitRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	auditor := repository.NewAuditLogRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	renderer := markdown.NewService()
	sessionTTL := time.Duration(cfg.Auth.Session.TTLMinutes) * time.Minute

	permissionSvc := permissionapp.NewService(roleRepo, log)
	taxonomySvc := taxonomy.NewService(categoryRepo, tagRepo, unitRepo, log)
	bookmarkSvc := bookmark.NewService(bookmarkRepo, docRepo, log)

	loginUC := authusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, auditor, sessionTTL, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, auditor, log)
	currentUserUC := authusecases.NewCurrentUserUseCase(userRepo, roleRepo, log)

	createDocUC := documentusecases.NewCreateDocumentUseCase(docRepo, auditor, log)
	updateDocUC := documentusecases.NewUpdateDocumentUseCase(docRepo, auditor, log)
	getDocUC := documentusecases.NewGetDocumentUseCase(docRepo, versionRepo, renderer, log)
	searchDocsUC := documentusecases.NewSearchDocumentsUseCase(docRepo, log)
	changeStatusUC := documentusecases.NewChangeStatusUseCase(docRepo, auditor, log)
	uploadVersionUC := documentusecases.NewUploadVersionUseCase(docRepo, versionRepo, store, auditor, log)
	downloadUC := documentusecases.NewDownloadDocumentUseCase(docRepo, versionRepo, store, log)
	deleteDocUC := documentusecases.NewDeleteDocumentUseCase(docRepo, versionRepo, store, auditor, log)
	approvalsUC := documentusecases.NewListApprovalsUseCase(docRepo, log)
	dashboardUC := documentusecases.NewDashboardUseCase(docRepo, bookmarkRepo, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, roleRepo, hasher, auditor, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, auditor, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, sessionRepo, auditor, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, roleRepo, log)
	assignRolesUC := userusecases.NewAssignRolesUseCase(userRepo, roleRepo, auditor, log)

	sessionAuth := middleware.NewSessionAuth(sessionRepo, permissionSvc, log)
	rateLimiter := middleware.NewRateLimiter(
		redisClient,
		cfg.RateLimit.LoginLimit,
		time.Duration(cfg.RateLimit.LoginWindowSeconds)*time.Second,
	)

	return &Router{
		engine: engine,
		cfg:    cfg,
		authHandler: handlers.NewAuthHandler(
			loginUC, logoutUC, currentUserUC, cfg.Auth.Cookie,
		),
		documentHandler: handlers.NewDocumentHandler(
			createDocUC, updateDocUC, getDocUC, searchDocsUC, changeStatusUC,
			uploadVersionUC, downloadUC, deleteDocUC, approvalsUC, dashboardUC,
		),
		taxonomyHandler: handlers.NewTaxonomyHandler(taxonomySvc),
		bookmarkHandler: handlers.NewBookmarkHandler(bookmarkSvc),
		userHandler: handlers.NewUserHandler(
			createUserUC, updateUserUC, deleteUserUC, listUsersUC, assignRolesUC, roleRepo,
		),
		systemHandler: handlers.NewSystemHandler(db, cfg.Auth.Bootstrap, hasher, auditor),
		sessionAuth:   sessionAuth,
		rateLimiter:   rateLimiter,
		log:           log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		SessionAuth: r.sessionAuth,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupDocumentRoutes(r.engine, &routes.DocumentRouteConfig{
		DocumentHandler: r.documentHandler,
		BookmarkHandler: r.bookmarkHandler,
		SessionAuth:     r.sessionAuth,
	})

	routes.SetupTaxonomyRoutes(r.engine, &routes.TaxonomyRouteConfig{
		TaxonomyHandler: r.taxonomyHandler,
		SessionAuth:     r.sessionAuth,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		UserHandler:   r.userHandler,
		SystemHandler: r.systemHandler,
		SessionAuth:   r.sessionAuth,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
