package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRole(t *testing.T, slug string, perms []string) *Role {
	t.Helper()
	role, err := NewRole(slug, slug, "", perms)
	require.NoError(t, err)
	return role
}

func TestPermissionSet_Union(t *testing.T) {
	reader := mustRole(t, RoleReader, SeededRolePermissions[RoleReader])
	contributor := mustRole(t, RoleContributor, SeededRolePermissions[RoleContributor])

	set := NewPermissionSet([]*Role{reader, contributor})

	assert.True(t, set.Has(PermView))
	assert.True(t, set.Has(PermUpload))
	assert.True(t, set.Has(PermEdit))
	assert.False(t, set.Has(PermApprove))
	assert.False(t, set.Has(PermManageUsers))
	assert.False(t, set.HasWildcard())
}

func TestPermissionSet_WildcardGrantsAll(t *testing.T) {
	owner := mustRole(t, RoleSystemOwner, SeededRolePermissions[RoleSystemOwner])

	set := NewPermissionSet([]*Role{owner})

	assert.True(t, set.HasWildcard())
	assert.True(t, set.Has(PermView))
	assert.True(t, set.Has(PermManageUsers))
	assert.True(t, set.Has("some_future_permission"))
}

func TestPermissionSet_EmptyDeniesAll(t *testing.T) {
	set := NewPermissionSet(nil)

	assert.True(t, set.IsEmpty())
	assert.False(t, set.Has(PermView))
	assert.False(t, set.Has(Wildcard))
}

func TestPermissionSet_FromTokens(t *testing.T) {
	set := NewPermissionSetFromTokens([]string{PermView, PermApprove})

	assert.True(t, set.Has(PermView))
	assert.True(t, set.Has(PermApprove))
	assert.False(t, set.Has(PermDelete))
}

func TestRole_HasPermission(t *testing.T) {
	tests := []struct {
		name    string
		perms   []string
		check   string
		granted bool
	}{
		{"direct member", []string{PermView, PermUpload}, PermUpload, true},
		{"not a member", []string{PermView}, PermApprove, false},
		{"wildcard", []string{Wildcard}, PermDelete, true},
		{"empty list", nil, PermView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := mustRole(t, "test", tt.perms)
			assert.Equal(t, tt.granted, role.HasPermission(tt.check))
		})
	}
}
