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

type CreateCaseCommand struct {
	CaseInput
	CreatedByID uint
}

type CreateCaseUseCase struct {
	caseRepo   cases.CaseRepository
	employees  EmployeeDirectory
	categories CategoryDirectory
	recorder   *AuditRecorder
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateCaseUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	recorder *AuditRecorder,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateCaseUseCase {
	return &CreateCaseUseCase{
		caseRepo:   caseRepo,
		employees:  employees,
		categories: categories,
		recorder:   recorder,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error) {
	log := logger.FromContext(ctx, uc.logger)
	log.Infow("executing create case use case", "customer_name", cmd.CustomerName, "created_by", cmd.CreatedByID)

	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	creator, err := requireEmployee(ctx, uc.employees, cmd.CreatedByID, "creator")
	if err != nil {
		return nil, err
	}
	if err := requireCategory(ctx, uc.categories, details.CategoryID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	c, err := cases.NewCase(details, creator.ID(), now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *dto.CaseDTO
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.caseRepo.Create(txCtx, c); err != nil {
			log.Errorw("failed to create case", "error", err)
			return errors.WrapPersistence(err, "failed to create case")
		}
		if err := uc.recorder.RecordCreate(txCtx, c, creator, now); err != nil {
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

	log.Infow("case created successfully", "case_id", c.ID(), "created_by", creator.ID())
	return result, nil
}
