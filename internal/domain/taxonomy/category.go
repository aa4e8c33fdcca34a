package taxonomy

import (
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Category is a browse heading for documents. One level of nesting is used:
// a category either has no parent or points at a root category.
type Category struct {
	ID        uint
	Name      string
	Slug      string
	ParentID  *uint
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCategory(name, slug string, parentID *uint, sortOrder int) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("category slug is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name too long (max 100 characters)")
	}

	now := biztime.NowUTC()
	return &Category{
		Name:      name,
		Slug:      slug,
		ParentID:  parentID,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsRoot reports whether this is a top-level category.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category with its children, for the browse tree.
type CategoryNode struct {
	Category *Category
	Children []*Category
}

// BuildTree arranges a flat category list into root nodes with children,
// ordered by sort order as returned from the repository.
func BuildTree(categories []*Category) []*CategoryNode {
	var roots []*CategoryNode
	index := make(map[uint]*CategoryNode)

	for _, c := range categories {
		if c.IsRoot() {
			node := &CategoryNode{Category: c}
			roots = append(roots, node)
			index[c.ID] = node
		}
	}
	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := index[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		}
	}
	return roots
}
