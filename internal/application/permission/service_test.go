package permission

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type mockRoleRepository struct {
	rolesByUser map[uint][]*permission.Role
	err         error
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	return nil, nil
}

func (m *mockRoleRepository) GetBySlug(ctx context.Context, slug string) (*permission.Role, error) {
	return nil, nil
}

func (m *mockRoleRepository) List(ctx context.Context) ([]*permission.Role, error) {
	return nil, nil
}

func (m *mockRoleRepository) Create(ctx context.Context, role *permission.Role) error {
	return nil
}

func (m *mockRoleRepository) GetUserRoles(ctx context.Context, userID uint) ([]*permission.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rolesByUser[userID], nil
}

func (m *mockRoleRepository) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint, assignedBy uint) error {
	return nil
}

func (m *mockRoleRepository) GetAssignments(ctx context.Context, userID uint) ([]*permission.RoleAssignment, error) {
	return nil, nil
}

func makeRole(t *testing.T, id uint, slug string, perms []string) *permission.Role {
	t.Helper()
	role, err := permission.ReconstructRole(id, slug, slug, "", perms, true, time.Now(), time.Now())
	require.NoError(t, err)
	return role
}

func TestService_GetPermissionSet(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	t.Run("unions permissions across roles", func(t *testing.T) {
		repo := &mockRoleRepository{rolesByUser: map[uint][]*permission.Role{
			1: {
				makeRole(t, 1, permission.RoleReader, []string{permission.PermView}),
				makeRole(t, 2, permission.RoleContributor, []string{permission.PermView, permission.PermUpload, permission.PermEdit}),
			},
		}}
		svc := NewService(repo, log)

		set, err := svc.GetPermissionSet(ctx, 1)
		require.NoError(t, err)
		assert.True(t, set.Has(permission.PermView))
		assert.True(t, set.Has(permission.PermUpload))
		assert.True(t, set.Has(permission.PermEdit))
		assert.False(t, set.Has(permission.PermApprove))
	})

	t.Run("wildcard grants everything", func(t *testing.T) {
		repo := &mockRoleRepository{rolesByUser: map[uint][]*permission.Role{
			1: {makeRole(t, 5, permission.RoleSystemOwner, []string{permission.Wildcard})},
		}}
		svc := NewService(repo, log)

		set, err := svc.GetPermissionSet(ctx, 1)
		require.NoError(t, err)
		assert.True(t, set.Has(permission.PermManageUsers))
		assert.True(t, set.Has(permission.PermDelete))
		assert.True(t, set.HasWildcard())
	})

	t.Run("no roles yields empty set that denies everything", func(t *testing.T) {
		repo := &mockRoleRepository{rolesByUser: map[uint][]*permission.Role{}}
		svc := NewService(repo, log)

		set, err := svc.GetPermissionSet(ctx, 42)
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
		assert.False(t, set.Has(permission.PermView))
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		repo := &mockRoleRepository{err: fmt.Errorf("connection lost")}
		svc := NewService(repo, log)

		_, err := svc.GetPermissionSet(ctx, 1)
		assert.Error(t, err)
	})
}
