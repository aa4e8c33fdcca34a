package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

// downloadURLTTL is how long a presigned download link stays valid.
const downloadURLTTL = 15 * time.Minute

type DownloadDocumentCommand struct {
	Slug string
	// VersionNumber 0 means the current version.
	VersionNumber int
	// CanView is the actor's view permission; without it only public
	// published documents are downloadable.
	CanView bool
}

type DownloadDocumentResult struct {
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	VersionNumber int    `json:"version_number"`
	SizeBytes     int64  `json:"size_bytes"`
}

type DownloadDocumentUseCase struct {
	docRepo     document.Repository
	versionRepo document.VersionRepository
	store       document.ObjectStore
	logger      logger.Interface
}

func NewDownloadDocumentUseCase(
	docRepo document.Repository,
	versionRepo document.VersionRepository,
	store document.ObjectStore,
	logger logger.Interface,
) *DownloadDocumentUseCase {
	return &DownloadDocumentUseCase{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		store:       store,
		logger:      logger,
	}
}

func (uc *DownloadDocumentUseCase) Execute(ctx context.Context, cmd DownloadDocumentCommand) (*DownloadDocumentResult, error) {
	if cmd.Slug == "" {
		return nil, errors.NewValidationError("document slug is required")
	}

	doc, err := uc.docRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to get document", "slug", cmd.Slug, "error", err)
		return nil, errors.NewInternalError("failed to prepare download")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %s not found", cmd.Slug))
	}
	if !cmd.CanView && !(doc.PublicAccess() && doc.Status().IsPublished()) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %s not found", cmd.Slug))
	}
	if !doc.DownloadAllowed() {
		return nil, errors.NewForbiddenError("downloads are disabled for this document")
	}

	version, err := uc.resolveVersion(ctx, doc.ID(), cmd.VersionNumber)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.PresignGet(ctx, version.StorageKey, version.Filename, downloadURLTTL)
	if err != nil {
		uc.logger.Errorw("failed to presign download", "key", version.StorageKey, "error", err)
		return nil, errors.NewInternalError("failed to prepare download")
	}

	return &DownloadDocumentResult{
		URL:           url,
		Filename:      version.Filename,
		VersionNumber: version.VersionNumber,
		SizeBytes:     version.SizeBytes,
	}, nil
}

func (uc *DownloadDocumentUseCase) resolveVersion(ctx context.Context, documentID uint, versionNumber int) (*document.Version, error) {
	if versionNumber <= 0 {
		current, err := uc.versionRepo.GetCurrent(ctx, documentID)
		if err != nil {
			uc.logger.Errorw("failed to get current version", "document_id", documentID, "error", err)
			return nil, errors.NewInternalError("failed to prepare download")
		}
		if current == nil {
			return nil, errors.NewNotFoundError("document has no uploaded file")
		}
		return current, nil
	}

	versions, err := uc.versionRepo.List(ctx, documentID)
	if err != nil {
		uc.logger.Errorw("failed to list versions", "document_id", documentID, "error", err)
		return nil, errors.NewInternalError("failed to prepare download")
	}
	for _, v := range versions {
		if v.VersionNumber == versionNumber {
			return v, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("version %d not found", versionNumber))
}
