// Package permission computes effective permissions for authenticated users.
package permission

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

// Service resolves a user's roles into a PermissionSet. The set is computed
// once per request by the auth middleware and cached in the request context;
// nothing here caches across requests, so role changes apply on the next
// request.
type Service struct {
	roleRepo permission.RoleRepository
	logger   logger.Interface
}

func NewService(roleRepo permission.RoleRepository, logger logger.Interface) *Service {
	return &Service{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// GetPermissionSet returns the union of permissions across all of the user's
// roles. A user with no roles gets an empty set, which denies everything.
func (s *Service) GetPermissionSet(ctx context.Context, userID uint) (permission.PermissionSet, error) {
	roles, err := s.roleRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return permission.PermissionSet{}, fmt.Errorf("failed to load roles for user %d: %w", userID, err)
	}

	return permission.NewPermissionSet(roles), nil
}

// GetRoles returns the user's assigned roles.
func (s *Service) GetRoles(ctx context.Context, userID uint) ([]*permission.Role, error) {
	roles, err := s.roleRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles for user %d: %w", userID, err)
	}
	return roles, nil
}
