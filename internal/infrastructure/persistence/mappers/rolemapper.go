package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

// RoleMapper handles the conversion between Role entities and persistence
// models, including the JSON permission array.
type RoleMapper interface {
	ToModel(entity *permission.Role) (*models.RoleModel, error)
	ToDomain(model *models.RoleModel) (*permission.Role, error)
}

type roleMapperImpl struct{}

func NewRoleMapper() RoleMapper {
	return &roleMapperImpl{}
}

func (m *roleMapperImpl) ToModel(entity *permission.Role) (*models.RoleModel, error) {
	if entity == nil {
		return nil, nil
	}
	perms, err := json.Marshal(entity.Permissions())
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions for role %s: %w", entity.Slug(), err)
	}
	return &models.RoleModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Slug:        entity.Slug(),
		Description: entity.Description(),
		Permissions: datatypes.JSON(perms),
		IsSystem:    entity.IsSystem(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *roleMapperImpl) ToDomain(model *models.RoleModel) (*permission.Role, error) {
	if model == nil {
		return nil, nil
	}
	var perms []string
	if len(model.Permissions) > 0 {
		if err := json.Unmarshal(model.Permissions, &perms); err != nil {
			return nil, fmt.Errorf("failed to decode permissions for role %s: %w", model.Slug, err)
		}
	}
	return permission.ReconstructRole(model.ID, model.Name, model.Slug, model.Description, perms, model.IsSystem, model.CreatedAt, model.UpdatedAt)
}
