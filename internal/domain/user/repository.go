package user

import (
	"context"

	"github.com/agewithcare/policyhub/internal/shared/query"
)

// ListFilter narrows user listing for the admin console.
type ListFilter struct {
	query.BaseFilter
	Status string
	Search string
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}
