package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between audit entries and persistence
// models, including the JSON change payload.
type AuditLogMapper interface {
	ToModel(entry *audit.Entry) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*audit.Entry, error)
}

type auditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &auditLogMapperImpl{}
}

func (m *auditLogMapperImpl) ToModel(entry *audit.Entry) (*models.AuditLogModel, error) {
	if entry == nil {
		return nil, nil
	}
	var changes datatypes.JSON
	if len(entry.Changes) > 0 {
		raw, err := json.Marshal(entry.Changes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode audit changes: %w", err)
		}
		changes = datatypes.JSON(raw)
	}
	return &models.AuditLogModel{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     string(entry.Action),
		ObjectType: entry.ObjectType,
		ObjectID:   entry.ObjectID,
		Changes:    changes,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		RequestID:  entry.RequestID,
		CreatedAt:  entry.CreatedAt,
	}, nil
}

func (m *auditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	if model == nil {
		return nil, nil
	}
	changes := map[string]interface{}{}
	if len(model.Changes) > 0 {
		if err := json.Unmarshal(model.Changes, &changes); err != nil {
			return nil, fmt.Errorf("failed to decode audit changes for entry %d: %w", model.ID, err)
		}
	}
	return &audit.Entry{
		ID:         model.ID,
		ActorID:    model.ActorID,
		Action:     audit.Action(model.Action),
		ObjectType: model.ObjectType,
		ObjectID:   model.ObjectID,
		Changes:    changes,
		IPAddress:  model.IPAddress,
		UserAgent:  model.UserAgent,
		RequestID:  model.RequestID,
		CreatedAt:  model.CreatedAt,
	}, nil
}
