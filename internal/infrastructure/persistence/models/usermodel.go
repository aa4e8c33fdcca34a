package models

import (
	"time"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// UserModel is the persistence model for users; the anti-corruption layer
// between domain and database.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"size:255"`
	Status       string `gorm:"not null;default:active;size:20;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
