// Package taxonomy manages the browse structure: categories, tags and
// business units.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/domain/taxonomy"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type Service struct {
	categoryRepo taxonomy.CategoryRepository
	tagRepo      taxonomy.TagRepository
	unitRepo     taxonomy.BusinessUnitRepository
	logger       logger.Interface
}

func NewService(
	categoryRepo taxonomy.CategoryRepository,
	tagRepo taxonomy.TagRepository,
	unitRepo taxonomy.BusinessUnitRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		unitRepo:     unitRepo,
		logger:       logger,
	}
}

// CategoryTree returns root categories with their children for the browse page.
func (s *Service) CategoryTree(ctx context.Context) ([]*taxonomy.CategoryNode, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to load categories")
	}
	return taxonomy.BuildTree(categories), nil
}

func (s *Service) CreateCategory(ctx context.Context, name string, parentID *uint, sortOrder int) (*taxonomy.Category, error) {
	slug := document.Slugify(name)
	if slug == "" {
		return nil, errors.NewValidationError("category name is required")
	}

	taken, err := s.categoryRepo.ExistsBySlug(ctx, slug, 0)
	if err != nil {
		s.logger.Errorw("failed to check category slug", "slug", slug, "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}
	if taken {
		return nil, errors.NewConflictError(fmt.Sprintf("category %s already exists", slug))
	}

	if parentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, errors.NewInternalError("failed to create category")
		}
		if parent == nil {
			return nil, errors.NewValidationError("parent category not found")
		}
		// Nesting stops at one level.
		if !parent.IsRoot() {
			return nil, errors.NewValidationError("categories nest at most one level deep")
		}
	}

	category, err := taxonomy.NewCategory(name, slug, parentID, sortOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Errorw("failed to create category", "slug", slug, "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}

	s.logger.Infow("category created", "category_id", category.ID, "slug", slug)
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uint, name string, sortOrder int) (*taxonomy.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("failed to update category")
	}
	if category == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", id))
	}

	if name != "" && name != category.Name {
		slug := document.Slugify(name)
		taken, err := s.categoryRepo.ExistsBySlug(ctx, slug, id)
		if err != nil {
			return nil, errors.NewInternalError("failed to update category")
		}
		if taken {
			return nil, errors.NewConflictError(fmt.Sprintf("category %s already exists", slug))
		}
		category.Name = name
		category.Slug = slug
	}
	category.SortOrder = sortOrder

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Errorw("failed to update category", "category_id", id, "error", err)
		return nil, errors.NewInternalError("failed to update category")
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		s.logger.Errorw("failed to delete category", "category_id", id, "error", err)
		return errors.NewInternalError("failed to delete category")
	}
	return nil
}

func (s *Service) ListTags(ctx context.Context) ([]*taxonomy.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list tags", "error", err)
		return nil, errors.NewInternalError("failed to load tags")
	}
	return tags, nil
}

func (s *Service) CreateTag(ctx context.Context, name string) (*taxonomy.Tag, error) {
	slug := document.Slugify(name)
	if slug == "" {
		return nil, errors.NewValidationError("tag name is required")
	}

	taken, err := s.tagRepo.ExistsBySlug(ctx, slug, 0)
	if err != nil {
		return nil, errors.NewInternalError("failed to create tag")
	}
	if taken {
		return nil, errors.NewConflictError(fmt.Sprintf("tag %s already exists", slug))
	}

	tag, err := taxonomy.NewTag(name, slug)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		s.logger.Errorw("failed to create tag", "slug", slug, "error", err)
		return nil, errors.NewInternalError("failed to create tag")
	}
	return tag, nil
}

func (s *Service) DeleteTag(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		s.logger.Errorw("failed to delete tag", "tag_id", id, "error", err)
		return errors.NewInternalError("failed to delete tag")
	}
	return nil
}

func (s *Service) ListBusinessUnits(ctx context.Context) ([]*taxonomy.BusinessUnit, error) {
	units, err := s.unitRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list business units", "error", err)
		return nil, errors.NewInternalError("failed to load business units")
	}
	return units, nil
}

func (s *Service) CreateBusinessUnit(ctx context.Context, name string) (*taxonomy.BusinessUnit, error) {
	unit, err := taxonomy.NewBusinessUnit(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		s.logger.Errorw("failed to create business unit", "name", name, "error", err)
		return nil, errors.NewInternalError("failed to create business unit")
	}
	return unit, nil
}

func (s *Service) DeleteBusinessUnit(ctx context.Context, id uint) error {
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		s.logger.Errorw("failed to delete business unit", "business_unit_id", id, "error", err)
		return errors.NewInternalError("failed to delete business unit")
	}
	return nil
}
