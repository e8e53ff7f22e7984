// Package seed loads the reference data a fresh desk needs: the default
// administrator and the issue categories.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Employees  []EmployeeSeed `yaml:"employees"`
	Categories []CategorySeed `yaml:"categories"`
}

type EmployeeSeed struct {
	Name              string `yaml:"name"`
	Position          string `yaml:"position"`
	PerformanceNumber string `yaml:"performance_number"`
}

type CategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// Result counts the rows created by a run.
type Result struct {
	EmployeesCreated  int
	CategoriesCreated int
}

// Parse decodes seed data. A nil or empty input yields the built-in set.
func Parse(raw []byte) (*Data, error) {
	if len(raw) == 0 {
		raw = defaultSeed
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Default returns the built-in seed data.
func Default() *Data {
	data, err := Parse(nil)
	if err != nil {
		panic(err)
	}
	return data
}

type Seeder struct {
	employees  employee.Repository
	categories category.Repository
	logger     logger.Interface
}

func NewSeeder(employees employee.Repository, categories category.Repository, logger logger.Interface) *Seeder {
	return &Seeder{
		employees:  employees,
		categories: categories,
		logger:     logger,
	}
}

// Run inserts the records that are not present yet. Existing employees are
// matched by performance number and categories by name, so running it
// twice changes nothing.
func (s *Seeder) Run(ctx context.Context, data *Data) (*Result, error) {
	result := &Result{}
	now := biztime.NowUTC()

	for _, e := range data.Employees {
		exists, err := s.employees.ExistsByPerformanceNumber(ctx, e.PerformanceNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		entity, err := employee.NewEmployee(e.Name, e.Position, e.PerformanceNumber, now)
		if err != nil {
			return nil, fmt.Errorf("invalid seed employee %q: %w", e.Name, err)
		}
		if err := s.employees.Create(ctx, entity); err != nil {
			return nil, err
		}
		result.EmployeesCreated++
	}

	for _, c := range data.Categories {
		existing, err := s.categories.GetByName(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		entity, err := category.NewCategory(c.Name, c.Description, c.Color)
		if err != nil {
			return nil, fmt.Errorf("invalid seed category %q: %w", c.Name, err)
		}
		if err := s.categories.Create(ctx, entity); err != nil {
			return nil, err
		}
		result.CategoriesCreated++
	}

	s.logger.Infow("seed data applied",
		"employees_created", result.EmployeesCreated,
		"categories_created", result.CategoriesCreated)

	return result, nil
}
