package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// RoleModel stores a role with its permission list as an immutable JSON
// string array, interpreted at read time.
type RoleModel struct {
	ID          uint           `gorm:"primarykey"`
	Name        string         `gorm:"not null;size:50"`
	Slug        string         `gorm:"uniqueIndex;not null;size:50"`
	Description string         `gorm:"type:text"`
	Permissions datatypes.JSON `gorm:"not null"`
	IsSystem    bool           `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}

// UserRoleModel is the join row between users and roles, carrying who
// assigned the role and when.
type UserRoleModel struct {
	UserID     uint      `gorm:"primarykey"`
	RoleID     uint      `gorm:"primarykey"`
	AssignedAt time.Time `gorm:"not null"`
	AssignedBy uint
}

func (UserRoleModel) TableName() string {
	return constants.TableUserRoles
}
