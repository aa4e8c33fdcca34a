package models

import (
	"time"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// SessionModel is the persistence model for login sessions.
type SessionModel struct {
	ID             string    `gorm:"primarykey;size:64"`
	UserID         uint      `gorm:"not null;index"`
	IPAddress      string    `gorm:"size:45"`
	UserAgent      string    `gorm:"size:512"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	LastActivityAt time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
