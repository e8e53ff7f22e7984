package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// ListCasesUseCase returns every case, newest first.
type ListCasesUseCase struct {
	caseRepo cases.CaseRepository
	names    *nameResolver
	logger   logger.Interface
}

func NewListCasesUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *ListCasesUseCase {
	return &ListCasesUseCase{
		caseRepo: caseRepo,
		names:    newNameResolver(employees, categories),
		logger:   logger,
	}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context) ([]*dto.CaseDTO, error) {
	list, err := uc.caseRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "error", err)
		return nil, errors.WrapPersistence(err, "failed to list cases")
	}
	names, err := uc.names.all(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCaseDTOs(list, names), nil
}
