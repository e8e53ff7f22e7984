package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// UpdateCaseCommand replaces the editable fields of a case. SolverID names
// the employee who solved it; when nil the modifier is recorded.
type UpdateCaseCommand struct {
	CaseID uint
	CaseInput
	ModifiedByID uint
	SolverID     *uint
}

type UpdateCaseUseCase struct {
	caseRepo   cases.CaseRepository
	employees  EmployeeDirectory
	categories CategoryDirectory
	recorder   *AuditRecorder
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewUpdateCaseUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	recorder *AuditRecorder,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{
		caseRepo:   caseRepo,
		employees:  employees,
		categories: categories,
		recorder:   recorder,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateCaseUseCase) Execute(ctx context.Context, cmd UpdateCaseCommand) (*dto.CaseDTO, error) {
	log := logger.FromContext(ctx, uc.logger)
	log.Infow("executing update case use case", "case_id", cmd.CaseID, "modified_by", cmd.ModifiedByID)

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	modifier, err := requireEmployee(ctx, uc.employees, cmd.ModifiedByID, "modifier")
	if err != nil {
		return nil, err
	}
	if cmd.SolverID != nil {
		if _, err := requireEmployee(ctx, uc.employees, *cmd.SolverID, "solver"); err != nil {
			return nil, err
		}
	}
	if err := requireCategory(ctx, uc.categories, details.CategoryID); err != nil {
		return nil, err
	}

	var result *dto.CaseDTO
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := requireCase(txCtx, uc.caseRepo, cmd.CaseID)
		if err != nil {
			return err
		}
		before, err := uc.recorder.Snapshot(txCtx, c)
		if err != nil {
			return err
		}

		now := biztime.NowUTC()
		if err := c.Update(details, modifier.ID(), cmd.SolverID, now); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.caseRepo.Update(txCtx, c); err != nil {
			log.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
			return errors.WrapPersistence(err, "failed to update case")
		}
		if err := uc.recorder.RecordUpdate(txCtx, before, c, modifier, now); err != nil {
			return err
		}

		names, err := uc.recorder.names.forCase(txCtx, c)
		if err != nil {
			return err
		}
		result = dto.ToCaseDTO(c, names)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("case updated successfully", "case_id", cmd.CaseID, "status", result.Status)
	return result, nil
}
