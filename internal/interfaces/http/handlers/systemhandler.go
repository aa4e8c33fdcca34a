package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/infrastructure/migration"
	"github.com/agewithcare/policyhub/internal/shared/config"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

const auditLogDefaultLimit = 100

// SystemHandler serves the admin maintenance endpoints: schema status,
// on-demand migration and the audit trail.
type SystemHandler struct {
	db        *gorm.DB
	bootstrap config.BootstrapConfig
	hasher    user.PasswordHasher
	auditor   audit.Recorder
	logger    logger.Interface
}

func NewSystemHandler(
	db *gorm.DB,
	bootstrap config.BootstrapConfig,
	hasher user.PasswordHasher,
	auditor audit.Recorder,
) *SystemHandler {
	return &SystemHandler{
		db:        db,
		bootstrap: bootstrap,
		hasher:    hasher,
		auditor:   auditor,
		logger:    logger.NewLogger(),
	}
}

// InitDatabase re-runs the startup migration. Migration is idempotent, so
// this is safe to call on a live system.
func (h *SystemHandler) InitDatabase(c *gin.Context) {
	if err := migration.Run(h.db, h.bootstrap, h.hasher, h.logger); err != nil {
		h.logger.Errorw("on-demand migration failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("database initialization failed"))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Database initialized successfully", nil)
}

// DatabaseStatus reports connectivity and per-table row counts.
func (h *SystemHandler) DatabaseStatus(c *gin.Context) {
	counts, err := migration.Status(h.db)
	if err != nil {
		h.logger.Errorw("database status check failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("database status check failed"))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"connected": true, "tables": counts})
}

type AuditEntryResponse struct {
	ID         uint                   `json:"id"`
	ActorID    uint                   `json:"actor_id"`
	Action     string                 `json:"action"`
	ObjectType string                 `json:"object_type"`
	ObjectID   uint                   `json:"object_id"`
	Changes    map[string]interface{} `json:"changes,omitempty"`
	IPAddress  string                 `json:"ip_address"`
	RequestID  string                 `json:"request_id,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ListAuditLog returns recent audit entries, optionally filtered by actor.
func (h *SystemHandler) ListAuditLog(c *gin.Context) {
	actorID := parseQueryUint(c, "actor_id")
	limit := int(parseQueryUint(c, "limit"))
	if limit <= 0 || limit > 1000 {
		limit = auditLogDefaultLimit
	}

	entries, err := h.auditor.List(c.Request.Context(), actorID, limit)
	if err != nil {
		h.logger.Errorw("failed to list audit log", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to list audit log"))
		return
	}

	response := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, AuditEntryResponse{
			ID:         entry.ID,
			ActorID:    entry.ActorID,
			Action:     string(entry.Action),
			ObjectType: entry.ObjectType,
			ObjectID:   entry.ObjectID,
			Changes:    entry.Changes,
			IPAddress:  entry.IPAddress,
			RequestID:  entry.RequestID,
			CreatedAt:  entry.CreatedAt,
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}
