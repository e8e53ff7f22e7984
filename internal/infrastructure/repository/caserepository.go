package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/db"
	apperrors "github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// CaseRepositoryImpl implements the cases.CaseRepository interface
type CaseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
	logger logger.Interface
}

// NewCaseRepository creates a new case repository instance
func NewCaseRepository(db *gorm.DB, logger logger.Interface) cases.CaseRepository {
	return &CaseRepositoryImpl{
		db:     db,
		mapper: mappers.NewCaseMapper(),
		logger: logger,
	}
}

func (r *CaseRepositoryImpl) Create(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create case", "customer_name", model.CustomerName, "error", err)
		return fmt.Errorf("failed to create case: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set case ID: %w", err)
	}
	return nil
}

func (r *CaseRepositoryImpl) Update(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CaseModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_by_id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update case", "case_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("case not found", strconv.FormatUint(uint64(model.ID), 10))
	}
	return nil
}

func (r *CaseRepositoryImpl) Delete(ctx context.Context, caseID uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.CorrespondenceModel{},
			&models.AttachmentModel{},
			&models.AuditLogModel{},
		}
		for _, model := range dependents {
			if err := tx.Where("case_id = ?", caseID).Delete(model).Error; err != nil {
				r.logger.Errorw("failed to delete case dependents", "case_id", caseID, "error", err)
				return fmt.Errorf("failed to delete case dependents: %w", err)
			}
		}

		if err := tx.Where("scope = ? AND scope_key = ?", scopeCase, caseScopeKey(caseID)).
			Delete(&models.SequenceCounterModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete case sequence counter: %w", err)
		}

		result := tx.Delete(&models.CaseModel{}, caseID)
		if result.Error != nil {
			r.logger.Errorw("failed to delete case", "case_id", caseID, "error", result.Error)
			return fmt.Errorf("failed to delete case: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("case not found", strconv.FormatUint(uint64(caseID), 10))
		}
		return nil
	})
}

func (r *CaseRepositoryImpl) GetByID(ctx context.Context, caseID uint) (*cases.Case, error) {
	var model models.CaseModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get case", "case_id", caseID, "error", err)
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CaseRepositoryImpl) List(ctx context.Context) ([]*cases.Case, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Scopes(orderBy(cases.OrderByNewest)))
}

func (r *CaseRepositoryImpl) Search(ctx context.Context, criteria cases.SearchCriteria) ([]*cases.Case, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Scopes(searchScopes(criteria)...))
}

func (r *CaseRepositoryImpl) KeywordSearch(ctx context.Context, keyword string) ([]*cases.Case, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Scopes(keywordScope(keyword), orderBy(cases.OrderByNewest)))
}

// AvailableYears returns the distinct creation years, newest first.
func (r *CaseRepositoryImpl) AvailableYears(ctx context.Context) ([]int, error) {
	var createdAt []int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CaseModel{}).Pluck("created_at", &createdAt).Error; err != nil {
		r.logger.Errorw("failed to load case creation dates", "error", err)
		return nil, fmt.Errorf("failed to load case years: %w", err)
	}

	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, ms := range createdAt {
		year := biztime.YearOf(fromMillis(ms))
		if _, ok := seen[year]; !ok {
			seen[year] = struct{}{}
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (r *CaseRepositoryImpl) find(query *gorm.DB) ([]*cases.Case, error) {
	var caseModels []*models.CaseModel
	if err := query.Find(&caseModels).Error; err != nil {
		r.logger.Errorw("failed to query cases", "error", err)
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	return r.mapper.ToEntities(caseModels)
}
