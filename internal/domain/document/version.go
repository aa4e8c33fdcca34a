package document

import (
	"fmt"
	"time"

	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Version is one stored revision of a document's file. Exactly one version
// per document carries the current flag at any time; the flip happens in the
// same transaction as the insert.
type Version struct {
	ID            uint
	DocumentID    uint
	VersionNumber int
	Filename      string
	StorageKey    string
	SizeBytes     int64
	Checksum      string
	FileType      vo.FileType
	UploadedBy    uint
	IsCurrent     bool
	ChangeNote    string
	CreatedAt     time.Time
}

// NewVersion builds the next revision record for a document. versionNumber
// must be strictly greater than the document's latest.
func NewVersion(documentID uint, versionNumber int, filename string, sizeBytes int64, checksum string, uploadedBy uint, changeNote string) (*Version, error) {
	if documentID == 0 {
		return nil, fmt.Errorf("document ID is required")
	}
	if versionNumber < 1 {
		return nil, fmt.Errorf("version number must be positive")
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if checksum == "" {
		return nil, fmt.Errorf("checksum is required")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader is required")
	}

	return &Version{
		DocumentID:    documentID,
		VersionNumber: versionNumber,
		Filename:      filename,
		StorageKey:    StorageKey(documentID, versionNumber, filename),
		SizeBytes:     sizeBytes,
		Checksum:      checksum,
		FileType:      vo.DetectFileType(filename),
		UploadedBy:    uploadedBy,
		IsCurrent:     true,
		ChangeNote:    changeNote,
		CreatedAt:     biztime.NowUTC(),
	}, nil
}

// StorageKey builds the object-store key for a document revision.
func StorageKey(documentID uint, versionNumber int, filename string) string {
	return fmt.Sprintf("documents/%d/v%d/%s", documentID, versionNumber, filename)
}
