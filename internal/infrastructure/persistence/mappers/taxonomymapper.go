package mappers

import (
	"github.com/agewithcare/policyhub/internal/domain/taxonomy"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

// TaxonomyMapper handles categories, tags and business units. These are plain
// records, so the mapping is direct in both directions.
type TaxonomyMapper interface {
	CategoryToModel(entity *taxonomy.Category) *models.CategoryModel
	CategoryToDomain(model *models.CategoryModel) *taxonomy.Category
	TagToModel(entity *taxonomy.Tag) *models.TagModel
	TagToDomain(model *models.TagModel) *taxonomy.Tag
	BusinessUnitToModel(entity *taxonomy.BusinessUnit) *models.BusinessUnitModel
	BusinessUnitToDomain(model *models.BusinessUnitModel) *taxonomy.BusinessUnit
}

type taxonomyMapperImpl struct{}

func NewTaxonomyMapper() TaxonomyMapper {
	return &taxonomyMapperImpl{}
}

func (m *taxonomyMapperImpl) CategoryToModel(entity *taxonomy.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Slug:      entity.Slug,
		ParentID:  entity.ParentID,
		SortOrder: entity.SortOrder,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *taxonomyMapperImpl) CategoryToDomain(model *models.CategoryModel) *taxonomy.Category {
	if model == nil {
		return nil
	}
	return &taxonomy.Category{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      model.Slug,
		ParentID:  model.ParentID,
		SortOrder: model.SortOrder,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *taxonomyMapperImpl) TagToModel(entity *taxonomy.Tag) *models.TagModel {
	if entity == nil {
		return nil
	}
	return &models.TagModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Slug:      entity.Slug,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *taxonomyMapperImpl) TagToDomain(model *models.TagModel) *taxonomy.Tag {
	if model == nil {
		return nil
	}
	return &taxonomy.Tag{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      model.Slug,
		CreatedAt: model.CreatedAt,
	}
}

func (m *taxonomyMapperImpl) BusinessUnitToModel(entity *taxonomy.BusinessUnit) *models.BusinessUnitModel {
	if entity == nil {
		return nil
	}
	return &models.BusinessUnitModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *taxonomyMapperImpl) BusinessUnitToDomain(model *models.BusinessUnitModel) *taxonomy.BusinessUnit {
	if model == nil {
		return nil
	}
	return &taxonomy.BusinessUnit{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}
