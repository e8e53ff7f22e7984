package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// AuditLogRepositoryImpl implements audit.Repository. It exposes no update
// or delete.
type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

func NewAuditLogRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

func (r *AuditLogRepositoryImpl) Append(ctx context.Context, log *audit.Log) error {
	model := r.mapper.ToModel(log)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit log", "case_id", model.CaseID, "action", model.ActionType, "error", err)
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return log.SetID(model.ID)
}

// ListByCase returns the trail newest first.
func (r *AuditLogRepositoryImpl) ListByCase(ctx context.Context, caseID uint) ([]*audit.Log, error) {
	var rows []*models.AuditLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("case_id = ?", caseID).
		Order("timestamp DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list audit logs", "case_id", caseID, "error", err)
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	logs := make([]*audit.Log, 0, len(rows))
	for _, row := range rows {
		entry, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, fmt.Errorf("failed to map audit log %d: %w", row.ID, err)
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
