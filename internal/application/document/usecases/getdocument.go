package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/markdown"
)

const relatedDocumentsLimit = 5

type GetDocumentCommand struct {
	Slug string
	// CanView is the actor's view permission. Without it only published
	// documents flagged for public access are readable.
	CanView bool
}

type GetDocumentResult struct {
	Document DocumentDetail    `json:"document"`
	Versions []VersionInfo     `json:"versions"`
	Related  []DocumentSummary `json:"related"`
}

type GetDocumentUseCase struct {
	docRepo     document.Repository
	versionRepo document.VersionRepository
	renderer    markdown.Service
	logger      logger.Interface
}

func NewGetDocumentUseCase(
	docRepo document.Repository,
	versionRepo document.VersionRepository,
	renderer markdown.Service,
	logger logger.Interface,
) *GetDocumentUseCase {
	return &GetDocumentUseCase{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, cmd GetDocumentCommand) (*GetDocumentResult, error) {
	if cmd.Slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}

	doc, err := uc.docRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to get document", "slug", cmd.Slug, "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %s not found", cmd.Slug))
	}

	if !cmd.CanView && !(doc.PublicAccess() && doc.Status().IsPublished()) {
		// Hide existence from anonymous visitors rather than returning 403.
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %s not found", cmd.Slug))
	}

	bodyHTML, err := uc.renderer.ToHTMLSanitized(doc.Body())
	if err != nil {
		uc.logger.Warnw("failed to render document body", "document_id", doc.ID(), "error", err)
		bodyHTML = ""
	}

	versions, err := uc.versionRepo.List(ctx, doc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list versions", "document_id", doc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}

	related, err := uc.docRepo.ListRelated(ctx, doc.CategoryID(), doc.ID(), relatedDocumentsLimit)
	if err != nil {
		uc.logger.Warnw("failed to list related documents", "document_id", doc.ID(), "error", err)
		related = nil
	}

	allowed := doc.Status().AllowedTransitions()
	allowedStrings := make([]string, 0, len(allowed))
	for _, status := range allowed {
		allowedStrings = append(allowedStrings, status.String())
	}

	versionInfos := make([]VersionInfo, 0, len(versions))
	for _, v := range versions {
		versionInfos = append(versionInfos, toVersionInfo(v))
	}

	detail := DocumentDetail{
		DocumentSummary: toSummary(doc),
		Body:            doc.Body(),
		BodyHTML:        bodyHTML,
		ReviewerID:      doc.ReviewerID(),
		ApproverID:      doc.ApproverID(),
		SubcategoryID:   doc.SubcategoryID(),
		BusinessUnitID:  doc.BusinessUnitID(),
		TagIDs:          doc.TagIDs(),
		DownloadAllowed: doc.DownloadAllowed(),
		PublicAccess:    doc.PublicAccess(),
		AllowedStatuses: allowedStrings,
		CreatedAt:       doc.CreatedAt(),
	}

	return &GetDocumentResult{
		Document: detail,
		Versions: versionInfos,
		Related:  toSummaries(related),
	}, nil
}
