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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TaxonomyMapper
}

func NewCategoryRepository(db *gorm.DB) taxonomy.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewTaxonomyMapper(),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *taxonomy.Category) error {
	model := r.mapper.CategoryToModel(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	category.ID = model.ID
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *taxonomy.Category) error {
	model := r.mapper.CategoryToModel(category)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*taxonomy.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return r.mapper.CategoryToDomain(&model), nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*taxonomy.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return r.mapper.CategoryToDomain(&model), nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*taxonomy.Category, error) {
	var modelList []*models.CategoryModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*taxonomy.Category, 0, len(modelList))
	for _, model := range modelList {
		categories = append(categories, r.mapper.CategoryToDomain(model))
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.CategoryModel{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}
	return count > 0, nil
}
