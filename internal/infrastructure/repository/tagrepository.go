package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/taxonomy"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
	"github.com/agewithcare/policyhub/internal/shared/errors"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TaxonomyMapper
}

func NewTagRepository(db *gorm.DB) taxonomy.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mappers.NewTaxonomyMapper(),
	}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *taxonomy.Tag) error {
	model := r.mapper.TagToModel(tag)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	tag.ID = model.ID
	return nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.DocumentTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to unlink tag from documents: %w", err)
		}

		result := tx.Delete(&models.TagModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete tag: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("tag not found")
		}
		return nil
	})
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*taxonomy.Tag, error) {
	var model models.TagModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag by ID: %w", err)
	}

	return r.mapper.TagToDomain(&model), nil
}

func (r *TagRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*taxonomy.Tag, error) {
	if len(ids) == 0 {
		return []*taxonomy.Tag{}, nil
	}

	var modelList []*models.TagModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags by IDs: %w", err)
	}

	tags := make([]*taxonomy.Tag, 0, len(modelList))
	for _, model := range modelList {
		tags = append(tags, r.mapper.TagToDomain(model))
	}

	return tags, nil
}

func (r *TagRepositoryImpl) List(ctx context.Context) ([]*taxonomy.Tag, error) {
	var modelList []*models.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*taxonomy.Tag, 0, len(modelList))
	for _, model := range modelList {
		tags = append(tags, r.mapper.TagToDomain(model))
	}

	return tags, nil
}

func (r *TagRepositoryImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.TagModel{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tag slug: %w", err)
	}
	return count > 0, nil
}
