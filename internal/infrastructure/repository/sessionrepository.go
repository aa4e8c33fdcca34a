package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
	"github.com/agewithcare/policyhub/internal/shared/errors"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) user.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) Create(session *user.Session) error {
	model := r.mapper.ToModel(session)

	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepositoryImpl) GetByID(sessionID string) (*user.Session, error) {
	var model models.SessionModel

	if err := r.db.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepositoryImpl) GetByUserID(userID uint) ([]*user.Session, error) {
	var modelList []*models.SessionModel
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get sessions by user: %w", err)
	}

	sessions := make([]*user.Session, 0, len(modelList))
	for _, model := range modelList {
		sessions = append(sessions, r.mapper.ToDomain(model))
	}

	return sessions, nil
}

func (r *SessionRepositoryImpl) Update(session *user.Session) error {
	model := r.mapper.ToModel(session)

	result := r.db.Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("session not found")
	}

	return nil
}

func (r *SessionRepositoryImpl) Delete(sessionID string) error {
	if err := r.db.Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepositoryImpl) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions for user: %w", err)
	}
	return nil
}

// DeleteExpired lazily purges sessions past their expiry. Called
// opportunistically from the auth middleware, not from a scheduler.
func (r *SessionRepositoryImpl) DeleteExpired() error {
	if err := r.db.Where("expires_at < ?", biztime.NowUTC()).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
