package mappers

import (
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User aggregates and persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email().String(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		Status:       entity.Status().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *userMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in database for user %d: %w", model.ID, err)
	}
	status, err := valueobjects.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in database for user %d: %w", model.ID, err)
	}

	return user.ReconstructUser(model.ID, email, model.Name, status, model.PasswordHash, model.CreatedAt, model.UpdatedAt)
}
