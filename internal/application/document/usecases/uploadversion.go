package usecases

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

// maxUploadBytes caps version uploads at 50 MiB.
const maxUploadBytes = 50 << 20

type UploadVersionCommand struct {
	DocumentID uint
	Filename   string
	Content    io.Reader
	ChangeNote string

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type UploadVersionResult struct {
	VersionID     uint   `json:"version_id"`
	VersionNumber int    `json:"version_number"`
	StorageKey    string `json:"storage_key"`
	Checksum      string `json:"checksum"`
	SizeBytes     int64  `json:"size_bytes"`
}

type UploadVersionUseCase struct {
	docRepo     document.Repository
	versionRepo document.VersionRepository
	store       document.ObjectStore
	auditor     audit.Recorder
	logger      logger.Interface
}

func NewUploadVersionUseCase(
	docRepo document.Repository,
	versionRepo document.VersionRepository,
	store document.ObjectStore,
	auditor audit.Recorder,
	logger logger.Interface,
) *UploadVersionUseCase {
	return &UploadVersionUseCase{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		store:       store,
		auditor:     auditor,
		logger:      logger,
	}
}

func (uc *UploadVersionUseCase) Execute(ctx context.Context, cmd UploadVersionCommand) (*UploadVersionResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	doc, err := uc.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "document_id", cmd.DocumentID, "error", err)
		return nil, errors.NewInternalError("failed to upload version")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %d not found", cmd.DocumentID))
	}
	if doc.Status().IsArchived() {
		return nil, errors.NewValidationError("cannot upload a version to an archived document")
	}

	content, err := io.ReadAll(io.LimitReader(cmd.Content, maxUploadBytes+1))
	if err != nil {
		uc.logger.Errorw("failed to read upload", "document_id", cmd.DocumentID, "error", err)
		return nil, errors.NewBadRequestError("failed to read uploaded file")
	}
	if len(content) == 0 {
		return nil, errors.NewValidationError("uploaded file is empty")
	}
	if len(content) > maxUploadBytes {
		return nil, errors.NewValidationError("uploaded file exceeds the 50 MiB limit")
	}

	sum := sha256.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	versionNumber, err := uc.versionRepo.NextVersionNumber(ctx, doc.ID())
	if err != nil {
		uc.logger.Errorw("failed to get next version number", "document_id", doc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to upload version")
	}

	version, err := document.NewVersion(doc.ID(), versionNumber, cmd.Filename, int64(len(content)), checksum, cmd.ActorID, cmd.ChangeNote)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.store.Put(ctx, version.StorageKey, bytes.NewReader(content), version.SizeBytes, version.FileType.MIMEType()); err != nil {
		uc.logger.Errorw("failed to store version file", "document_id", doc.ID(), "key", version.StorageKey, "error", err)
		return nil, errors.NewInternalError("failed to store uploaded file")
	}

	if err := uc.versionRepo.Add(ctx, version); err != nil {
		uc.logger.Errorw("failed to record version", "document_id", doc.ID(), "error", err)
		// Best effort cleanup of the orphaned object.
		if rmErr := uc.store.Remove(ctx, version.StorageKey); rmErr != nil {
			uc.logger.Warnw("failed to remove orphaned object", "key", version.StorageKey, "error", rmErr)
		}
		return nil, errors.NewInternalError("failed to upload version")
	}

	doc.SetFileType(version.FileType)
	if err := uc.docRepo.Update(ctx, doc); err != nil {
		uc.logger.Warnw("failed to update document file type", "document_id", doc.ID(), "error", err)
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionVersionUpload, "document", doc.ID()).
		WithChange("version_number", version.VersionNumber).
		WithChange("filename", version.Filename).
		WithChange("checksum", version.Checksum).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record version upload audit entry", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document version uploaded",
		"document_id", doc.ID(),
		"version_number", version.VersionNumber,
		"size_bytes", version.SizeBytes,
	)

	return &UploadVersionResult{
		VersionID:     version.ID,
		VersionNumber: version.VersionNumber,
		StorageKey:    version.StorageKey,
		Checksum:      version.Checksum,
		SizeBytes:     version.SizeBytes,
	}, nil
}

func (uc *UploadVersionUseCase) validateCommand(cmd UploadVersionCommand) error {
	if cmd.DocumentID == 0 {
		return errors.NewValidationError("document ID is required")
	}
	if cmd.Filename == "" {
		return errors.NewValidationError("filename is required")
	}
	if cmd.Content == nil {
		return errors.NewValidationError("file content is required")
	}
	return nil
}
