package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	apperrors "github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
	logger logger.Interface
}

func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mappers.NewDirectoryMapper(),
		logger: logger,
	}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.EmployeeToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("performance number already in use", model.PerformanceNumber)
		}
		r.logger.Errorw("failed to create employee", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.EmployeeToModel(e)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":               model.Name,
			"position":           model.Position,
			"performance_number": model.PerformanceNumber,
			"is_active":          model.IsActive,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("performance number already in use", model.PerformanceNumber)
		}
		r.logger.Errorw("failed to update employee", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("employee not found", strconv.FormatUint(uint64(model.ID), 10))
	}
	return nil
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	return r.take(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *EmployeeRepositoryImpl) GetActiveByPerformanceNumber(ctx context.Context, performanceNumber string) (*employee.Employee, error) {
	return r.take(db.GetTxFromContext(ctx, r.db).
		Where("performance_number = ? AND is_active = ?", strings.TrimSpace(performanceNumber), true))
}

func (r *EmployeeRepositoryImpl) ExistsByPerformanceNumber(ctx context.Context, performanceNumber string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{}).
		Where("performance_number = ?", strings.TrimSpace(performanceNumber)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check performance number: %w", err)
	}
	return count > 0, nil
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*employee.Employee, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	return r.find(query.Order("name ASC"))
}

// Search matches active employees by name, position or performance number.
func (r *EmployeeRepositoryImpl) Search(ctx context.Context, term string) ([]*employee.Employee, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("is_active = ?", true)
	if !textnorm.IsBlank(term) {
		p := textnorm.ContainsPattern(term)
		preds := predicatesFor(query)
		query = query.Where("("+preds.like("name")+" OR "+preds.like("COALESCE(position, '')")+" OR "+preds.like("performance_number")+")", p, p, p)
	}
	return r.find(query.Order("name ASC"))
}

func (r *EmployeeRepositoryImpl) take(query *gorm.DB) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := query.Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee", "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return r.mapper.EmployeeToEntity(&model), nil
}

func (r *EmployeeRepositoryImpl) find(query *gorm.DB) ([]*employee.Employee, error) {
	var rows []*models.EmployeeModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to query employees", "error", err)
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}

	result := make([]*employee.Employee, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.mapper.EmployeeToEntity(row))
	}
	return result, nil
}
