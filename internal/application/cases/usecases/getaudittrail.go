package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type GetAuditTrailQuery struct {
	CaseID uint
}

// GetAuditTrailUseCase lists the audit entries of a case, newest first. The
// case itself may be gone; its delete entry is still returned.
type GetAuditTrailUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewGetAuditTrailUseCase(auditRepo audit.Repository, logger logger.Interface) *GetAuditTrailUseCase {
	return &GetAuditTrailUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *GetAuditTrailUseCase) Execute(ctx context.Context, query GetAuditTrailQuery) ([]*dto.AuditLogDTO, error) {
	if query.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	logs, err := uc.auditRepo.ListByCase(ctx, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to load audit trail", "case_id", query.CaseID, "error", err)
		return nil, errors.WrapPersistence(err, "failed to load audit trail")
	}
	return dto.ToAuditLogDTOs(logs), nil
}
