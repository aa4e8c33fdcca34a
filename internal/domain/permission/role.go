package permission

import (
	"fmt"
	"time"
)

// Well-known role slugs. Roles are seeded at migration time, not created ad hoc.
const (
	RoleReader        = "reader"
	RoleContributor   = "contributor"
	RoleApprover      = "approver"
	RoleAdministrator = "administrator"
	RoleSystemOwner   = "system_owner"
)

// Permission tokens. A role's permission list is an immutable string array
// interpreted at read time; Wildcard grants everything.
const (
	Wildcard             = "*"
	PermView             = "view"
	PermUpload           = "upload"
	PermEdit             = "edit"
	PermApprove          = "approve"
	PermPublish          = "publish"
	PermArchive          = "archive"
	PermDelete           = "delete"
	PermManageUsers      = "manage_users"
	PermManageTaxonomy   = "manage_taxonomy"
	PermViewAuditLog     = "view_audit_log"
)

// SeededRolePermissions defines the permission list for each seeded role.
var SeededRolePermissions = map[string][]string{
	RoleReader:        {PermView},
	RoleContributor:   {PermView, PermUpload, PermEdit},
	RoleApprover:      {PermView, PermUpload, PermEdit, PermApprove, PermPublish},
	RoleAdministrator: {PermView, PermUpload, PermEdit, PermApprove, PermPublish, PermArchive, PermDelete, PermManageUsers, PermManageTaxonomy, PermViewAuditLog},
	RoleSystemOwner:   {Wildcard},
}

// Role is a named, seeded set of permission strings.
type Role struct {
	id          uint
	name        string
	slug        string
	description string
	permissions []string
	isSystem    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRole(name, slug, description string, permissions []string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("role slug is required")
	}
	if len(slug) > 50 {
		return nil, fmt.Errorf("role slug too long (max 50 characters)")
	}

	now := time.Now().UTC()
	return &Role{
		name:        name,
		slug:        slug,
		description: description,
		permissions: append([]string(nil), permissions...),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRole(id uint, name, slug, description string, permissions []string, isSystem bool, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	return &Role{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		permissions: append([]string(nil), permissions...),
		isSystem:    isSystem,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() uint            { return r.id }
func (r *Role) Name() string        { return r.name }
func (r *Role) Slug() string        { return r.slug }
func (r *Role) Description() string { return r.description }
func (r *Role) IsSystem() bool      { return r.isSystem }
func (r *Role) CreatedAt() time.Time { return r.createdAt }
func (r *Role) UpdatedAt() time.Time { return r.updatedAt }

// Permissions returns a copy of the role's permission list.
func (r *Role) Permissions() []string {
	return append([]string(nil), r.permissions...)
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

// HasPermission reports whether the role grants the permission directly or
// via the wildcard.
func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.permissions {
		if p == Wildcard || p == perm {
			return true
		}
	}
	return false
}
