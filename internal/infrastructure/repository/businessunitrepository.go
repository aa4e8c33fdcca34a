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

type BusinessUnitRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TaxonomyMapper
}

func NewBusinessUnitRepository(db *gorm.DB) taxonomy.BusinessUnitRepository {
	return &BusinessUnitRepositoryImpl{
		db:     db,
		mapper: mappers.NewTaxonomyMapper(),
	}
}

func (r *BusinessUnitRepositoryImpl) Create(ctx context.Context, unit *taxonomy.BusinessUnit) error {
	model := r.mapper.BusinessUnitToModel(unit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create business unit: %w", err)
	}

	unit.ID = model.ID
	return nil
}

func (r *BusinessUnitRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BusinessUnitModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete business unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("business unit not found")
	}

	return nil
}

func (r *BusinessUnitRepositoryImpl) GetByID(ctx context.Context, id uint) (*taxonomy.BusinessUnit, error) {
	var model models.BusinessUnitModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business unit by ID: %w", err)
	}

	return r.mapper.BusinessUnitToDomain(&model), nil
}

func (r *BusinessUnitRepositoryImpl) List(ctx context.Context) ([]*taxonomy.BusinessUnit, error) {
	var modelList []*models.BusinessUnitModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list business units: %w", err)
	}

	units := make([]*taxonomy.BusinessUnit, 0, len(modelList))
	for _, model := range modelList {
		units = append(units, r.mapper.BusinessUnitToDomain(model))
	}

	return units, nil
}
