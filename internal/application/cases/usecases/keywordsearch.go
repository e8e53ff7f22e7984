package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

type KeywordSearchQuery struct {
	Keyword string
}

// KeywordSearchUseCase matches one keyword against the customer name,
// subscriber number, phone, category name and status. A blank keyword lists
// every case.
type KeywordSearchUseCase struct {
	caseRepo cases.CaseRepository
	names    *nameResolver
	logger   logger.Interface
}

func NewKeywordSearchUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *KeywordSearchUseCase {
	return &KeywordSearchUseCase{
		caseRepo: caseRepo,
		names:    newNameResolver(employees, categories),
		logger:   logger,
	}
}

func (uc *KeywordSearchUseCase) Execute(ctx context.Context, query KeywordSearchQuery) ([]*dto.CaseDTO, error) {
	var (
		list []*cases.Case
		err  error
	)
	if textnorm.IsBlank(query.Keyword) {
		list, err = uc.caseRepo.List(ctx)
	} else {
		list, err = uc.caseRepo.KeywordSearch(ctx, query.Keyword)
	}
	if err != nil {
		uc.logger.Errorw("failed to search cases by keyword", "error", err)
		return nil, errors.WrapPersistence(err, "failed to search cases")
	}

	names, err := uc.names.all(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCaseDTOs(list, names), nil
}
