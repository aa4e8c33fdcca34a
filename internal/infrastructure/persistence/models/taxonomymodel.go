package models

import (
	"time"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// CategoryModel is a self-referential browse heading; one level of nesting
// is used in practice.
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Slug      string `gorm:"uniqueIndex;not null;size:100"`
	ParentID  *uint  `gorm:"index"`
	SortOrder int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type TagModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:50"`
	Slug      string `gorm:"uniqueIndex;not null;size:50"`
	CreatedAt time.Time
}

func (TagModel) TableName() string {
	return constants.TableTags
}

type BusinessUnitModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
}

func (BusinessUnitModel) TableName() string {
	return constants.TableBusinessUnits
}
