package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type DeleteCaseCommand struct {
	CaseID      uint
	DeletedByID uint
}

type DeleteCaseUseCase struct {
	caseRepo  cases.CaseRepository
	employees EmployeeDirectory
	recorder  *AuditRecorder
	txMgr     db.Transactor
	logger    logger.Interface
}

func NewDeleteCaseUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	recorder *AuditRecorder,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteCaseUseCase {
	return &DeleteCaseUseCase{
		caseRepo:  caseRepo,
		employees: employees,
		recorder:  recorder,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute removes the case and everything attached to it, then appends the
// delete entry. That entry is the only trace of the case that remains.
func (uc *DeleteCaseUseCase) Execute(ctx context.Context, cmd DeleteCaseCommand) error {
	log := logger.FromContext(ctx, uc.logger)
	log.Infow("executing delete case use case", "case_id", cmd.CaseID, "deleted_by", cmd.DeletedByID)

	deleter, err := requireEmployee(ctx, uc.employees, cmd.DeletedByID, "deleter")
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := requireCase(txCtx, uc.caseRepo, cmd.CaseID)
		if err != nil {
			return err
		}
		before, err := uc.recorder.Snapshot(txCtx, c)
		if err != nil {
			return err
		}

		if err := uc.caseRepo.Delete(txCtx, cmd.CaseID); err != nil {
			log.Errorw("failed to delete case", "case_id", cmd.CaseID, "error", err)
			return errors.WrapPersistence(err, "failed to delete case")
		}
		return uc.recorder.RecordDelete(txCtx, before, deleter, biztime.NowUTC())
	})
	if err != nil {
		return err
	}

	log.Infow("case deleted successfully", "case_id", cmd.CaseID)
	return nil
}
