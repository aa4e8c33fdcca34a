package taxonomy

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	// List returns all categories ordered by sort order then name.
	List(ctx context.Context) ([]*Category, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type BusinessUnitRepository interface {
	Create(ctx context.Context, unit *BusinessUnit) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*BusinessUnit, error)
	List(ctx context.Context) ([]*BusinessUnit, error)
}
