package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/employee/dto"
)

type CreateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd CreateEmployeeCommand) (*dto.EmployeeDTO, error)
}

type DeactivateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd DeactivateEmployeeCommand) error
}

type ListEmployeesExecutor interface {
	Execute(ctx context.Context, query ListEmployeesQuery) ([]*dto.EmployeeDTO, error)
}

type SearchEmployeesExecutor interface {
	Execute(ctx context.Context, query SearchEmployeesQuery) ([]*dto.EmployeeDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
