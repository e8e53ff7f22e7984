package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
)

type AuditLogMapper interface {
	ToModel(l *audit.Log) *models.AuditLogModel
	ToEntity(model *models.AuditLogModel) (*audit.Log, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(l *audit.Log) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:                l.ID(),
		CaseID:            l.CaseID(),
		ActionType:        l.Action().String(),
		ActionDescription: l.Description(),
		PerformedByID:     l.PerformedByID(),
		PerformedByName:   l.PerformedByName(),
		Timestamp:         toMillis(l.Timestamp()),
		OldValues:         datatypes.JSON(l.OldValues()),
		NewValues:         datatypes.JSON(l.NewValues()),
	}
}

func (m *AuditLogMapperImpl) ToEntity(model *models.AuditLogModel) (*audit.Log, error) {
	if model == nil {
		return nil, nil
	}
	action, err := audit.ParseActionType(model.ActionType)
	if err != nil {
		return nil, fmt.Errorf("audit log %d: %w", model.ID, err)
	}
	return audit.ReconstructLog(
		model.ID,
		model.CaseID,
		action,
		model.ActionDescription,
		model.PerformedByID,
		model.PerformedByName,
		fromMillis(model.Timestamp),
		jsonOrNil(model.OldValues),
		jsonOrNil(model.NewValues),
	), nil
}

// jsonOrNil maps SQL NULL, which the JSON scanner reports as "null", back to nil.
func jsonOrNil(j datatypes.JSON) []byte {
	if len(j) == 0 || string(j) == "null" {
		return nil
	}
	return []byte(j)
}
