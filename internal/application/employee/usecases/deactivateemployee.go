package usecases

import (
	"context"
	"strconv"

	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type DeactivateEmployeeCommand struct {
	EmployeeID uint
}

// DeactivateEmployeeUseCase soft-deletes an employee. Cases keep resolving
// the name; the employee can no longer log in.
type DeactivateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewDeactivateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *DeactivateEmployeeUseCase {
	return &DeactivateEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *DeactivateEmployeeUseCase) Execute(ctx context.Context, cmd DeactivateEmployeeCommand) error {
	e, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID)
	if err != nil {
		return errors.WrapPersistence(err, "failed to load employee")
	}
	if e == nil {
		return errors.NewNotFoundError("employee not found", strconv.FormatUint(uint64(cmd.EmployeeID), 10))
	}
	if !e.IsActive() {
		return nil
	}

	e.Deactivate()
	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to deactivate employee", "employee_id", cmd.EmployeeID, "error", err)
		return errors.WrapPersistence(err, "failed to deactivate employee")
	}

	uc.logger.Infow("employee deactivated", "employee_id", cmd.EmployeeID)
	return nil
}
