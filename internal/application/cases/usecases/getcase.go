package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type GetCaseQuery struct {
	CaseID uint
}

type GetCaseUseCase struct {
	caseRepo cases.CaseRepository
	names    *nameResolver
	logger   logger.Interface
}

func NewGetCaseUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *GetCaseUseCase {
	return &GetCaseUseCase{
		caseRepo: caseRepo,
		names:    newNameResolver(employees, categories),
		logger:   logger,
	}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error) {
	c, err := requireCase(ctx, uc.caseRepo, query.CaseID)
	if err != nil {
		return nil, err
	}
	names, err := uc.names.forCase(ctx, c)
	if err != nil {
		uc.logger.Errorw("failed to resolve case names", "case_id", query.CaseID, "error", err)
		return nil, err
	}
	return dto.ToCaseDTO(c, names), nil
}
