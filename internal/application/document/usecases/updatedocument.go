package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type UpdateDocumentCommand struct {
	DocumentID      uint
	Title           string
	Summary         string
	Body            string
	ContentType     string
	CategoryID      uint
	SubcategoryID   *uint
	BusinessUnitID  *uint
	ReviewerID      *uint
	ApproverID      *uint
	EffectiveDate   *time.Time
	ReviewDue       *time.Time
	TagIDs          []uint
	DownloadAllowed bool
	PublicAccess    bool

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type UpdateDocumentResult struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
}

type UpdateDocumentUseCase struct {
	docRepo document.Repository
	auditor audit.Recorder
	logger  logger.Interface
}

func NewUpdateDocumentUseCase(docRepo document.Repository, auditor audit.Recorder, logger logger.Interface) *UpdateDocumentUseCase {
	return &UpdateDocumentUseCase{
		docRepo: docRepo,
		auditor: auditor,
		logger:  logger,
	}
}

func (uc *UpdateDocumentUseCase) Execute(ctx context.Context, cmd UpdateDocumentCommand) (*UpdateDocumentResult, error) {
	if cmd.DocumentID == 0 {
		return nil, errors.NewValidationError("document ID is required")
	}

	doc, err := uc.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "document_id", cmd.DocumentID, "error", err)
		return nil, errors.NewInternalError("failed to update document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %d not found", cmd.DocumentID))
	}

	contentType, err := vo.NewContentType(cmd.ContentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	oldTitle := doc.Title()

	if err := doc.UpdateDetails(document.UpdateDetailsParams{
		Title:           cmd.Title,
		Summary:         cmd.Summary,
		Body:            cmd.Body,
		ContentType:     contentType,
		CategoryID:      cmd.CategoryID,
		SubcategoryID:   cmd.SubcategoryID,
		BusinessUnitID:  cmd.BusinessUnitID,
		ReviewerID:      cmd.ReviewerID,
		ApproverID:      cmd.ApproverID,
		EffectiveDate:   cmd.EffectiveDate,
		ReviewDue:       cmd.ReviewDue,
		TagIDs:          cmd.TagIDs,
		DownloadAllowed: cmd.DownloadAllowed,
		PublicAccess:    cmd.PublicAccess,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Title changes get a fresh unique slug; the probe excludes this document
	// so an unchanged title keeps its slug.
	if doc.Title() != oldTitle {
		slug, err := document.UniqueSlug(ctx, uc.docRepo, doc.Title(), doc.ID())
		if err != nil {
			uc.logger.Errorw("failed to reassign slug", "document_id", doc.ID(), "error", err)
			return nil, errors.NewInternalError("failed to update document")
		}
		if err := doc.SetSlug(slug); err != nil {
			return nil, errors.NewInternalError("failed to update document")
		}
	}

	if err := uc.docRepo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to update document", "document_id", doc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update document")
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionDocumentUpdate, "document", doc.ID()).
		WithChange("title", doc.Title()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if oldTitle != doc.Title() {
		entry.WithChange("old_title", oldTitle)
	}
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record document update audit entry", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document updated", "document_id", doc.ID(), "slug", doc.Slug())

	return &UpdateDocumentResult{ID: doc.ID(), Slug: doc.Slug()}, nil
}
