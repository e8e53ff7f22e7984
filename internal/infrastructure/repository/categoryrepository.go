package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	apperrors "github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
	logger logger.Interface
}

func NewCategoryRepository(db *gorm.DB, logger logger.Interface) category.Repository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewDirectoryMapper(),
		logger: logger,
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *category.Category) error {
	model := r.mapper.CategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("category already exists", model.CategoryName)
		}
		r.logger.Errorw("failed to create category", "name", model.CategoryName, "error", err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	return r.take(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *CategoryRepositoryImpl) GetByName(ctx context.Context, name string) (*category.Category, error) {
	return r.take(db.GetTxFromContext(ctx, r.db).Where("category_name = ?", strings.TrimSpace(name)))
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*category.Category, error) {
	var rows []*models.IssueCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("category_name ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*category.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.mapper.CategoryToEntity(row))
	}
	return result, nil
}

func (r *CategoryRepositoryImpl) take(query *gorm.DB) (*category.Category, error) {
	var model models.IssueCategoryModel
	if err := query.Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get category", "error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.CategoryToEntity(&model), nil
}
