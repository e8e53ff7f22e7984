package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// SearchCasesQuery is the sparse search request. Mode "comprehensive" (or
// its desk label) with a non-blank Term matches the term anywhere; otherwise
// every non-blank field narrows the result. Advanced results are ordered by
// creation date, the rest by most recent activity.
type SearchCasesQuery struct {
	Mode string
	Term string

	CustomerName       string
	SubscriberNumber   string
	Address            string
	Status             string
	CategoryName       string
	EmployeeName       string
	ProblemDescription string
	ActionsTaken       string
	CorrespondenceText string
	AttachmentText     string

	Year      *int
	DateField string

	Advanced bool
}

func (q SearchCasesQuery) toCriteria() (cases.SearchCriteria, error) {
	criteria := cases.SearchCriteria{
		Mode:               cases.ParseSearchMode(q.Mode),
		Term:               q.Term,
		CustomerName:       q.CustomerName,
		SubscriberNumber:   q.SubscriberNumber,
		Address:            q.Address,
		CategoryName:       q.CategoryName,
		EmployeeName:       q.EmployeeName,
		ProblemDescription: q.ProblemDescription,
		ActionsTaken:       q.ActionsTaken,
		CorrespondenceText: q.CorrespondenceText,
		AttachmentText:     q.AttachmentText,
		Year:               q.Year,
		Ordering:           cases.OrderByRecentActivity,
	}
	if q.Advanced {
		criteria.Ordering = cases.OrderByNewest
	}

	if q.Status != "" {
		status, err := vo.ParseCaseStatus(q.Status)
		if err != nil {
			return criteria, errors.NewValidationError(err.Error())
		}
		criteria.Status = &status
	}

	field, err := cases.ParseDateField(q.DateField)
	if err != nil {
		return criteria, errors.NewValidationError(err.Error())
	}
	criteria.DateField = field
	return criteria, nil
}

type SearchCasesUseCase struct {
	caseRepo cases.CaseRepository
	names    *nameResolver
	logger   logger.Interface
}

func NewSearchCasesUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *SearchCasesUseCase {
	return &SearchCasesUseCase{
		caseRepo: caseRepo,
		names:    newNameResolver(employees, categories),
		logger:   logger,
	}
}

func (uc *SearchCasesUseCase) Execute(ctx context.Context, query SearchCasesQuery) ([]*dto.CaseDTO, error) {
	criteria, err := query.toCriteria()
	if err != nil {
		return nil, err
	}

	list, err := uc.caseRepo.Search(ctx, criteria)
	if err != nil {
		uc.logger.Errorw("failed to search cases", "mode", criteria.Mode, "error", err)
		return nil, errors.WrapPersistence(err, "failed to search cases")
	}
	names, err := uc.names.all(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Debugw("case search completed", "mode", criteria.Mode, "results", len(list))
	return dto.ToCaseDTOs(list, names), nil
}
