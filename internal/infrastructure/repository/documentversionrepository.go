package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

type DocumentVersionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentVersionRepository(db *gorm.DB) document.VersionRepository {
	return &DocumentVersionRepositoryImpl{
		db:     db,
		mapper: mappers.NewDocumentMapper(),
	}
}

// Add inserts the version and clears the current flag on the previous
// revision in the same transaction, so exactly one version per document is
// ever current.
func (r *DocumentVersionRepositoryImpl) Add(ctx context.Context, v *document.Version) error {
	model := r.mapper.VersionToModel(v)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DocumentVersionModel{}).
			Where("document_id = ? AND is_current = ?", v.DocumentID, true).
			Update("is_current", false).Error; err != nil {
			return fmt.Errorf("failed to clear current version flag: %w", err)
		}

		model.IsCurrent = true
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create document version: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	v.ID = model.ID
	v.IsCurrent = true
	return nil
}

func (r *DocumentVersionRepositoryImpl) List(ctx context.Context, documentID uint) ([]*document.Version, error) {
	var modelList []*models.DocumentVersionModel

	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("version_number DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list document versions: %w", err)
	}

	versions := make([]*document.Version, 0, len(modelList))
	for _, model := range modelList {
		versions = append(versions, r.mapper.VersionToDomain(model))
	}

	return versions, nil
}

func (r *DocumentVersionRepositoryImpl) GetCurrent(ctx context.Context, documentID uint) (*document.Version, error) {
	var model models.DocumentVersionModel

	err := r.db.WithContext(ctx).
		Where("document_id = ? AND is_current = ?", documentID, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current version: %w", err)
	}

	return r.mapper.VersionToDomain(&model), nil
}

func (r *DocumentVersionRepositoryImpl) NextVersionNumber(ctx context.Context, documentID uint) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&models.DocumentVersionModel{}).
		Where("document_id = ?", documentID).
		Select("MAX(version_number)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get latest version number: %w", err)
	}

	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
