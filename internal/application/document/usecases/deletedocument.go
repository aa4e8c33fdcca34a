package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type DeleteDocumentCommand struct {
	DocumentID uint

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type DeleteDocumentUseCase struct {
	docRepo     document.Repository
	versionRepo document.VersionRepository
	store       document.ObjectStore
	auditor     audit.Recorder
	logger      logger.Interface
}

func NewDeleteDocumentUseCase(
	docRepo document.Repository,
	versionRepo document.VersionRepository,
	store document.ObjectStore,
	auditor audit.Recorder,
	logger logger.Interface,
) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		store:       store,
		auditor:     auditor,
		logger:      logger,
	}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	if cmd.DocumentID == 0 {
		return errors.NewValidationError("document ID is required")
	}

	doc, err := uc.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "document_id", cmd.DocumentID, "error", err)
		return errors.NewInternalError("failed to delete document")
	}
	if doc == nil {
		return errors.NewNotFoundError(fmt.Sprintf("document %d not found", cmd.DocumentID))
	}

	versions, err := uc.versionRepo.List(ctx, doc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list versions for delete", "document_id", doc.ID(), "error", err)
		return errors.NewInternalError("failed to delete document")
	}

	if err := uc.docRepo.Delete(ctx, doc.ID()); err != nil {
		uc.logger.Errorw("failed to delete document", "document_id", doc.ID(), "error", err)
		return errors.NewInternalError("failed to delete document")
	}

	// Stored files go after the rows; an orphaned object is recoverable, a
	// dangling row is not.
	for _, v := range versions {
		if err := uc.store.Remove(ctx, v.StorageKey); err != nil {
			uc.logger.Warnw("failed to remove version file", "key", v.StorageKey, "error", err)
		}
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionDocumentDelete, "document", doc.ID()).
		WithChange("title", doc.Title()).
		WithChange("slug", doc.Slug()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record document delete audit entry", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document deleted", "document_id", doc.ID(), "slug", doc.Slug())
	return nil
}
