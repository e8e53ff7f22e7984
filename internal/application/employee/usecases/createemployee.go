package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/employee/dto"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type CreateEmployeeCommand struct {
	Name              string
	Position          string
	PerformanceNumber string
}

type CreateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewCreateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*dto.EmployeeDTO, error) {
	uc.logger.Infow("executing create employee use case", "performance_number", cmd.PerformanceNumber)

	e, err := employee.NewEmployee(cmd.Name, cmd.Position, cmd.PerformanceNumber, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.employeeRepo.ExistsByPerformanceNumber(ctx, e.PerformanceNumber())
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to check performance number")
	}
	if exists {
		return nil, errors.NewConflictError("performance number already in use", e.PerformanceNumber())
	}

	if err := uc.employeeRepo.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to create employee", "error", err)
		return nil, errors.WrapPersistence(err, "failed to create employee")
	}

	uc.logger.Infow("employee created successfully", "employee_id", e.ID())
	return dto.ToEmployeeDTO(e), nil
}
