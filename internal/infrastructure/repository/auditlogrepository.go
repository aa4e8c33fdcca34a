package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) audit.Recorder {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepositoryImpl) Record(ctx context.Context, entry *audit.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return fmt.Errorf("failed to map audit entry to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	entry.ID = model.ID
	return nil
}

func (r *AuditLogRepositoryImpl) List(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{}).Order("created_at DESC")

	if actorID > 0 {
		query = query.Where("actor_id = ?", actorID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []*models.AuditLogModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(modelList))
	for _, model := range modelList {
		entry, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map audit model: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
