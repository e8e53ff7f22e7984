package employee

import (
	"fmt"
	"strings"
	"time"
)

// Employee is a desk operator. Employees are deactivated, never deleted,
// because cases keep referring to them.
type Employee struct {
	id                uint
	name              string
	position          string
	performanceNumber string
	active            bool
	createdAt         time.Time
}

func NewEmployee(name, position, performanceNumber string, now time.Time) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}
	if len([]rune(name)) > 100 {
		return nil, fmt.Errorf("employee name exceeds maximum length of 100 characters")
	}
	performanceNumber = strings.TrimSpace(performanceNumber)
	if performanceNumber == "" {
		return nil, fmt.Errorf("performance number is required")
	}
	if len(performanceNumber) > 20 {
		return nil, fmt.Errorf("performance number exceeds maximum length of 20 characters")
	}

	return &Employee{
		name:              name,
		position:          strings.TrimSpace(position),
		performanceNumber: performanceNumber,
		active:            true,
		createdAt:         now,
	}, nil
}

func ReconstructEmployee(id uint, name, position, performanceNumber string, active bool, createdAt time.Time) *Employee {
	return &Employee{
		id:                id,
		name:              name,
		position:          position,
		performanceNumber: performanceNumber,
		active:            active,
		createdAt:         createdAt,
	}
}

// Deactivate soft-deletes the employee. It is idempotent.
func (e *Employee) Deactivate() {
	e.active = false
}

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Employee) ID() uint                  { return e.id }
func (e *Employee) Name() string              { return e.name }
func (e *Employee) Position() string          { return e.position }
func (e *Employee) PerformanceNumber() string { return e.performanceNumber }
func (e *Employee) IsActive() bool            { return e.active }
func (e *Employee) CreatedAt() time.Time      { return e.createdAt }
