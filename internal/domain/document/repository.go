package document

import (
	"context"
	"time"

	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/query"
)

// SearchFilter is the options bag for document search and listing. Zero
// values mean "no constraint". IncludeArchived must be set explicitly (or
// Status set to archived) for archived documents to appear.
type SearchFilter struct {
	query.BaseFilter
	Query           string
	ContentType     vo.ContentType
	Status          vo.DocumentStatus
	CategoryID      uint
	BusinessUnitID  uint
	OwnerID         uint
	TagIDs          []uint
	EffectiveFrom   *time.Time
	EffectiveTo     *time.Time
	IncludeArchived bool
	PublicOnly      bool
}

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Document, int64, error)
	// ListRelated returns other documents in the same category, most recent first.
	ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]*Document, error)
	// ListRecent returns the latest published documents.
	ListRecent(ctx context.Context, limit int) ([]*Document, error)
	// CountByStatus returns document counts keyed by workflow status.
	CountByStatus(ctx context.Context) (map[vo.DocumentStatus]int64, error)
}

type VersionRepository interface {
	// Add inserts the version and clears the current flag on the previous
	// revision in the same transaction.
	Add(ctx context.Context, v *Version) error
	List(ctx context.Context, documentID uint) ([]*Version, error)
	GetCurrent(ctx context.Context, documentID uint) (*Version, error)
	// NextVersionNumber returns 1 + the highest stored version number.
	NextVersionNumber(ctx context.Context, documentID uint) (int, error)
}
