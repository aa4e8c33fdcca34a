package permission

import (
	"context"
	"time"
)

// RoleAssignment is the join row linking a user to a role, carrying who
// granted it and when.
type RoleAssignment struct {
	UserID     uint
	RoleID     uint
	AssignedAt time.Time
	AssignedBy uint
}

type RoleRepository interface {
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetBySlug(ctx context.Context, slug string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	Create(ctx context.Context, role *Role) error
	// GetUserRoles returns all roles assigned to the user; an empty slice
	// (not an error) when none are assigned.
	GetUserRoles(ctx context.Context, userID uint) ([]*Role, error)
	// ReplaceUserRoles atomically replaces the user's role assignments.
	ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint, assignedBy uint) error
	GetAssignments(ctx context.Context, userID uint) ([]*RoleAssignment, error)
}
