package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// AuditLogModel is the append-only audit trail. Rows are never updated.
type AuditLogModel struct {
	ID         uint   `gorm:"primarykey"`
	ActorID    uint   `gorm:"not null;index"`
	Action     string `gorm:"not null;size:50;index"`
	ObjectType string `gorm:"size:50"`
	ObjectID   uint   `gorm:"index"`
	Changes    datatypes.JSON
	IPAddress  string `gorm:"size:45"`
	UserAgent  string `gorm:"size:512"`
	RequestID  string `gorm:"size:64"`
	CreatedAt  time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}

// BookmarkModel joins users to the documents they pinned.
type BookmarkModel struct {
	UserID     uint `gorm:"primarykey"`
	DocumentID uint `gorm:"primarykey;index"`
	CreatedAt  time.Time
}

func (BookmarkModel) TableName() string {
	return constants.TableBookmarks
}
