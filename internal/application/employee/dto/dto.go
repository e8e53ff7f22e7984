package dto

import (
	"time"

	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/mapper"
)

type EmployeeDTO struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Position          string    `json:"position"`
	PerformanceNumber string    `json:"performance_number"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToEmployeeDTO(e *employee.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}
	return &EmployeeDTO{
		ID:                e.ID(),
		Name:              e.Name(),
		Position:          e.Position(),
		PerformanceNumber: e.PerformanceNumber(),
		IsActive:          e.IsActive(),
		CreatedAt:         e.CreatedAt(),
	}
}

func ToEmployeeDTOs(list []*employee.Employee) []*EmployeeDTO {
	return mapper.MapSlice(list, ToEmployeeDTO)
}
