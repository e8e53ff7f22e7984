package usecases

import (
	"context"
	"strconv"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/mapper"
)

// GetLookupsUseCase gathers the values offered by search and edit forms:
// case years, categories, statuses and active employees.
type GetLookupsUseCase struct {
	caseRepo   cases.CaseRepository
	employees  EmployeeDirectory
	categories CategoryDirectory
	logger     logger.Interface
}

func NewGetLookupsUseCase(
	caseRepo cases.CaseRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *GetLookupsUseCase {
	return &GetLookupsUseCase{
		caseRepo:   caseRepo,
		employees:  employees,
		categories: categories,
		logger:     logger,
	}
}

func (uc *GetLookupsUseCase) Execute(ctx context.Context) (*dto.LookupsDTO, error) {
	years, err := uc.caseRepo.AvailableYears(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load case years", "error", err)
		return nil, errors.WrapPersistence(err, "failed to load case years")
	}
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to load categories")
	}
	employees, err := uc.employees.List(ctx, true)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to load employees")
	}

	statuses := make([]dto.StatusDTO, 0, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		statuses = append(statuses, dto.StatusDTO{Code: s.String(), Label: s.Label()})
	}

	return &dto.LookupsDTO{
		Years:      years,
		Categories: mapper.MapSlice(categories, dto.ToCategoryDTO),
		Statuses:   statuses,
		Employees: mapper.MapSlice(employees, func(e *employee.Employee) *dto.EmployeeRefDTO {
			return &dto.EmployeeRefDTO{ID: e.ID(), Name: e.Name()}
		}),
	}, nil
}

// ListCategoriesUseCase returns the category directory ordered by name.
type ListCategoriesUseCase struct {
	categories CategoryDirectory
	logger     logger.Interface
}

func NewListCategoriesUseCase(categories CategoryDirectory, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.WrapPersistence(err, "failed to load categories")
	}
	return mapper.MapSlice(list, dto.ToCategoryDTO), nil
}

type GetCategoryUseCase struct {
	categories CategoryDirectory
	logger     logger.Interface
}

func NewGetCategoryUseCase(categories CategoryDirectory, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{categories: categories, logger: logger}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	cat, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get category", "category_id", id, "error", err)
		return nil, errors.WrapPersistence(err, "failed to load category")
	}
	if cat == nil {
		return nil, errors.NewNotFoundError("category not found", strconv.FormatUint(uint64(id), 10))
	}
	return dto.ToCategoryDTO(cat), nil
}
