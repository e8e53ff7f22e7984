package usecases

import (
	"context"
	"strconv"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

type ListCorrespondencesQuery struct {
	CaseID uint
}

// ListCorrespondencesUseCase returns the correspondences of a case in
// sequence order.
type ListCorrespondencesUseCase struct {
	caseRepo           cases.CaseRepository
	correspondenceRepo cases.CorrespondenceRepository
	employees          EmployeeDirectory
	logger             logger.Interface
}

func NewListCorrespondencesUseCase(
	caseRepo cases.CaseRepository,
	correspondenceRepo cases.CorrespondenceRepository,
	employees EmployeeDirectory,
	logger logger.Interface,
) *ListCorrespondencesUseCase {
	return &ListCorrespondencesUseCase{
		caseRepo:           caseRepo,
		correspondenceRepo: correspondenceRepo,
		employees:          employees,
		logger:             logger,
	}
}

func (uc *ListCorrespondencesUseCase) Execute(ctx context.Context, query ListCorrespondencesQuery) ([]*dto.CorrespondenceDTO, error) {
	if _, err := requireCase(ctx, uc.caseRepo, query.CaseID); err != nil {
		return nil, err
	}
	list, err := uc.correspondenceRepo.ListByCase(ctx, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to list correspondences", "case_id", query.CaseID, "error", err)
		return nil, errors.WrapPersistence(err, "failed to list correspondences")
	}
	names, err := employeeNames(ctx, uc.employees)
	if err != nil {
		return nil, err
	}
	return dto.ToCorrespondenceDTOs(list, names), nil
}

type SearchCorrespondencesQuery struct {
	YearlyNumber string
}

// SearchCorrespondencesUseCase finds correspondences whose yearly number
// contains the fragment, latest sent first.
type SearchCorrespondencesUseCase struct {
	correspondenceRepo cases.CorrespondenceRepository
	employees          EmployeeDirectory
	logger             logger.Interface
}

func NewSearchCorrespondencesUseCase(
	correspondenceRepo cases.CorrespondenceRepository,
	employees EmployeeDirectory,
	logger logger.Interface,
) *SearchCorrespondencesUseCase {
	return &SearchCorrespondencesUseCase{
		correspondenceRepo: correspondenceRepo,
		employees:          employees,
		logger:             logger,
	}
}

func (uc *SearchCorrespondencesUseCase) Execute(ctx context.Context, query SearchCorrespondencesQuery) ([]*dto.CorrespondenceDTO, error) {
	if textnorm.IsBlank(query.YearlyNumber) {
		return []*dto.CorrespondenceDTO{}, nil
	}
	list, err := uc.correspondenceRepo.SearchByYearlyNumber(ctx, query.YearlyNumber)
	if err != nil {
		uc.logger.Errorw("failed to search correspondences", "fragment", query.YearlyNumber, "error", err)
		return nil, errors.WrapPersistence(err, "failed to search correspondences")
	}
	names, err := employeeNames(ctx, uc.employees)
	if err != nil {
		return nil, err
	}
	return dto.ToCorrespondenceDTOs(list, names), nil
}

type PreviewYearlySequenceQuery struct {
	// Year defaults to the current business year when zero.
	Year int
}

type PreviewYearlySequenceResult struct {
	Year           int    `json:"year"`
	Next           int    `json:"next"`
	SequenceNumber string `json:"sequence_number"`
}

// PreviewYearlySequenceUseCase reports the yearly number the next
// correspondence would receive. Nothing is reserved; a concurrent writer may
// take the number first.
type PreviewYearlySequenceUseCase struct {
	counter cases.SequenceCounter
	logger  logger.Interface
}

func NewPreviewYearlySequenceUseCase(counter cases.SequenceCounter, logger logger.Interface) *PreviewYearlySequenceUseCase {
	return &PreviewYearlySequenceUseCase{counter: counter, logger: logger}
}

func (uc *PreviewYearlySequenceUseCase) Execute(ctx context.Context, query PreviewYearlySequenceQuery) (*PreviewYearlySequenceResult, error) {
	year := query.Year
	if year == 0 {
		year = biztime.YearOf(biztime.NowUTC())
	}
	if year < 1 || year > 9999 {
		return nil, errors.NewValidationError("invalid year", strconv.Itoa(year))
	}

	next, err := uc.counter.PeekYearlySequence(ctx, year)
	if err != nil {
		uc.logger.Errorw("failed to preview yearly sequence", "year", year, "error", err)
		return nil, errors.WrapPersistence(err, "failed to preview yearly sequence")
	}
	return &PreviewYearlySequenceResult{
		Year:           year,
		Next:           next,
		SequenceNumber: cases.FormatYearlySequence(year, next),
	}, nil
}
