package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/employee/dto"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

type ListEmployeesQuery struct {
	ActiveOnly bool
}

type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewListEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, query ListEmployeesQuery) ([]*dto.EmployeeDTO, error) {
	list, err := uc.employeeRepo.List(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, errors.WrapPersistence(err, "failed to list employees")
	}
	return dto.ToEmployeeDTOs(list), nil
}

type SearchEmployeesQuery struct {
	Term string
}

// SearchEmployeesUseCase matches active employees by name, position or
// performance number. A blank term lists every active employee.
type SearchEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewSearchEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *SearchEmployeesUseCase {
	return &SearchEmployeesUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *SearchEmployeesUseCase) Execute(ctx context.Context, query SearchEmployeesQuery) ([]*dto.EmployeeDTO, error) {
	var (
		list []*employee.Employee
		err  error
	)
	if textnorm.IsBlank(query.Term) {
		list, err = uc.employeeRepo.List(ctx, true)
	} else {
		list, err = uc.employeeRepo.Search(ctx, query.Term)
	}
	if err != nil {
		uc.logger.Errorw("failed to search employees", "error", err)
		return nil, errors.WrapPersistence(err, "failed to search employees")
	}
	return dto.ToEmployeeDTOs(list), nil
}
