package usecases

import (
	"context"
	"strconv"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/mapper"
)

// nameResolver turns the ids held by a case into display names.
type nameResolver struct {
	employees  EmployeeDirectory
	categories CategoryDirectory
}

func newNameResolver(employees EmployeeDirectory, categories CategoryDirectory) *nameResolver {
	return &nameResolver{employees: employees, categories: categories}
}

// forCase resolves only the names c refers to. Unknown ids are left out.
func (r *nameResolver) forCase(ctx context.Context, c *cases.Case) (cases.NameLookup, error) {
	names := cases.NameLookup{
		Categories: make(map[uint]string, 1),
		Employees:  make(map[uint]string, 3),
	}

	cat, err := r.categories.GetByID(ctx, c.CategoryID())
	if err != nil {
		return names, errors.WrapPersistence(err, "failed to resolve category")
	}
	if cat != nil {
		names.Categories[cat.ID()] = cat.Name()
	}

	meta := c.Metadata()
	ids := []uint{meta.CreatedByID}
	if meta.ModifiedByID != nil {
		ids = append(ids, *meta.ModifiedByID)
	}
	if meta.SolvedByID != nil {
		ids = append(ids, *meta.SolvedByID)
	}
	for _, id := range ids {
		if _, ok := names.Employees[id]; ok {
			continue
		}
		emp, err := r.employees.GetByID(ctx, id)
		if err != nil {
			return names, errors.WrapPersistence(err, "failed to resolve employee")
		}
		if emp != nil {
			names.Employees[id] = emp.Name()
		}
	}
	return names, nil
}

// all loads every category and employee name, deactivated employees
// included.
func (r *nameResolver) all(ctx context.Context) (cases.NameLookup, error) {
	categories, err := r.categories.List(ctx)
	if err != nil {
		return cases.NameLookup{}, errors.WrapPersistence(err, "failed to load categories")
	}
	employees, err := r.employees.List(ctx, false)
	if err != nil {
		return cases.NameLookup{}, errors.WrapPersistence(err, "failed to load employees")
	}

	return cases.NameLookup{
		Categories: mapper.Index(categories, (*category.Category).ID, (*category.Category).Name),
		Employees:  mapper.Index(employees, (*employee.Employee).ID, (*employee.Employee).Name),
	}, nil
}

// requireEmployee resolves an acting employee or fails with NotFound.
func requireEmployee(ctx context.Context, employees EmployeeDirectory, id uint, role string) (*employee.Employee, error) {
	if id == 0 {
		return nil, errors.NewValidationError(role + " ID is required")
	}
	emp, err := employees.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to resolve employee")
	}
	if emp == nil {
		return nil, errors.NewNotFoundError(role+" not found", strconv.FormatUint(uint64(id), 10))
	}
	return emp, nil
}

// requireCase loads a case or fails with NotFound.
func requireCase(ctx context.Context, repo cases.CaseRepository, id uint) (*cases.Case, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to load case")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("case not found", strconv.FormatUint(uint64(id), 10))
	}
	return c, nil
}

// employeeNames maps every employee id to its name, deactivated employees
// included.
func employeeNames(ctx context.Context, employees EmployeeDirectory) (map[uint]string, error) {
	list, err := employees.List(ctx, false)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to load employees")
	}
	return mapper.Index(list, (*employee.Employee).ID, (*employee.Employee).Name), nil
}
