package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

type RoleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoleMapper
}

func NewRoleRepository(db *gorm.DB) permission.RoleRepository {
	return &RoleRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoleMapper(),
	}
}

func (r *RoleRepositoryImpl) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	var model models.RoleModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RoleRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*permission.Role, error) {
	var model models.RoleModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by slug: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RoleRepositoryImpl) List(ctx context.Context) ([]*permission.Role, error) {
	var modelList []*models.RoleModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*permission.Role, 0, len(modelList))
	for _, model := range modelList {
		role, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map role model: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, role *permission.Role) error {
	model, err := r.mapper.ToModel(role)
	if err != nil {
		return fmt.Errorf("failed to map role entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	if err := role.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set role ID: %w", err)
	}

	return nil
}

func (r *RoleRepositoryImpl) GetUserRoles(ctx context.Context, userID uint) ([]*permission.Role, error) {
	var modelList []*models.RoleModel

	err := r.db.WithContext(ctx).
		Joins("JOIN "+(models.UserRoleModel{}).TableName()+" ur ON ur.role_id = "+(models.RoleModel{}).TableName()+".id").
		Where("ur.user_id = ?", userID).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}

	roles := make([]*permission.Role, 0, len(modelList))
	for _, model := range modelList {
		role, mapErr := r.mapper.ToDomain(model)
		if mapErr != nil {
			return nil, fmt.Errorf("failed to map role model: %w", mapErr)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

func (r *RoleRepositoryImpl) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint, assignedBy uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear user roles: %w", err)
		}

		now := biztime.NowUTC()
		for _, roleID := range roleIDs {
			row := &models.UserRoleModel{
				UserID:     userID,
				RoleID:     roleID,
				AssignedAt: now,
				AssignedBy: assignedBy,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to assign role %d: %w", roleID, err)
			}
		}

		return nil
	})
}

func (r *RoleRepositoryImpl) GetAssignments(ctx context.Context, userID uint) ([]*permission.RoleAssignment, error) {
	var rows []*models.UserRoleModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get role assignments: %w", err)
	}

	assignments := make([]*permission.RoleAssignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, &permission.RoleAssignment{
			UserID:     row.UserID,
			RoleID:     row.RoleID,
			AssignedAt: row.AssignedAt,
			AssignedBy: row.AssignedBy,
		})
	}

	return assignments, nil
}
