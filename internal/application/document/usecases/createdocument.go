package usecases

import (
	"context"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type CreateDocumentCommand struct {
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

type CreateDocumentResult struct {
	ID     uint   `json:"id"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}

type CreateDocumentUseCase struct {
	docRepo document.Repository
	auditor audit.Recorder
	logger  logger.Interface
}

func NewCreateDocumentUseCase(docRepo document.Repository, auditor audit.Recorder, logger logger.Interface) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{
		docRepo: docRepo,
		auditor: auditor,
		logger:  logger,
	}
}

func (uc *CreateDocumentUseCase) Execute(ctx context.Context, cmd CreateDocumentCommand) (*CreateDocumentResult, error) {
	contentType, err := vo.NewContentType(cmd.ContentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	doc, err := document.NewDocument(document.NewDocumentParams{
		Title:           cmd.Title,
		Summary:         cmd.Summary,
		Body:            cmd.Body,
		ContentType:     contentType,
		OwnerID:         cmd.ActorID,
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
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	slug, err := document.UniqueSlug(ctx, uc.docRepo, cmd.Title, 0)
	if err != nil {
		uc.logger.Errorw("failed to assign slug", "title", cmd.Title, "error", err)
		return nil, errors.NewInternalError("failed to create document")
	}
	if err := doc.SetSlug(slug); err != nil {
		return nil, errors.NewInternalError("failed to create document")
	}

	if err := uc.docRepo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to create document", "slug", slug, "error", err)
		return nil, errors.NewInternalError("failed to create document")
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionDocumentCreate, "document", doc.ID()).
		WithChange("title", doc.Title()).
		WithChange("slug", doc.Slug()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record document create audit entry", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document created", "document_id", doc.ID(), "slug", doc.Slug())

	return &CreateDocumentResult{
		ID:     doc.ID(),
		Slug:   doc.Slug(),
		Status: doc.Status().String(),
	}, nil
}
