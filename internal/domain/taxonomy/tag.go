package taxonomy

import (
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Tag is a flat label attached to documents through a join table.
type Tag struct {
	ID        uint
	Name      string
	Slug      string
	CreatedAt time.Time
}

func NewTag(name, slug string) (*Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 50 {
		return nil, fmt.Errorf("tag name too long (max 50 characters)")
	}
	if slug == "" {
		return nil, fmt.Errorf("tag slug is required")
	}
	return &Tag{Name: name, Slug: slug, CreatedAt: biztime.NowUTC()}, nil
}

// BusinessUnit is the organisational unit a document applies to.
type BusinessUnit struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

func NewBusinessUnit(name string) (*BusinessUnit, error) {
	if name == "" {
		return nil, fmt.Errorf("business unit name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("business unit name too long (max 100 characters)")
	}
	return &BusinessUnit{Name: name, CreatedAt: biztime.NowUTC()}, nil
}
