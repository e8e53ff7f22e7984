package mappers

import (
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
)

// DirectoryMapper converts employees and issue categories.
type DirectoryMapper interface {
	EmployeeToModel(e *employee.Employee) *models.EmployeeModel
	EmployeeToEntity(model *models.EmployeeModel) *employee.Employee
	CategoryToModel(c *category.Category) *models.IssueCategoryModel
	CategoryToEntity(model *models.IssueCategoryModel) *category.Category
}

type DirectoryMapperImpl struct{}

func NewDirectoryMapper() DirectoryMapper {
	return &DirectoryMapperImpl{}
}

func (m *DirectoryMapperImpl) EmployeeToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:                e.ID(),
		Name:              e.Name(),
		Position:          e.Position(),
		PerformanceNumber: e.PerformanceNumber(),
		IsActive:          e.IsActive(),
		CreatedAt:         toMillis(e.CreatedAt()),
	}
}

func (m *DirectoryMapperImpl) EmployeeToEntity(model *models.EmployeeModel) *employee.Employee {
	if model == nil {
		return nil
	}
	return employee.ReconstructEmployee(
		model.ID,
		model.Name,
		model.Position,
		model.PerformanceNumber,
		model.IsActive,
		fromMillis(model.CreatedAt),
	)
}

func (m *DirectoryMapperImpl) CategoryToModel(c *category.Category) *models.IssueCategoryModel {
	return &models.IssueCategoryModel{
		ID:           c.ID(),
		CategoryName: c.Name(),
		Description:  c.Description(),
		ColorCode:    c.ColorCode(),
	}
}

func (m *DirectoryMapperImpl) CategoryToEntity(model *models.IssueCategoryModel) *category.Category {
	if model == nil {
		return nil
	}
	return category.ReconstructCategory(model.ID, model.CategoryName, model.Description, model.ColorCode)
}
