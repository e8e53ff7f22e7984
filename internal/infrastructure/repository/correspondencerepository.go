package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	apperrors "github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/textnorm"
)

type CorrespondenceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
	logger logger.Interface
}

func NewCorrespondenceRepository(db *gorm.DB, logger logger.Interface) cases.CorrespondenceRepository {
	return &CorrespondenceRepositoryImpl{
		db:     db,
		mapper: mappers.NewCaseMapper(),
		logger: logger,
	}
}

func (r *CorrespondenceRepositoryImpl) Create(ctx context.Context, c *cases.Correspondence) error {
	model := r.mapper.CorrespondenceToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("correspondence sequence number already taken",
				"case_id", model.CaseID,
				"case_sequence_number", model.CaseSequenceNumber,
				"yearly_sequence_number", model.YearlySequenceNumber,
			)
			return apperrors.NewSequenceConflictError("correspondence sequence number already taken", model.YearlySequenceNumber)
		}
		r.logger.Errorw("failed to create correspondence", "case_id", model.CaseID, "error", err)
		return fmt.Errorf("failed to create correspondence: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CorrespondenceRepositoryImpl) GetByID(ctx context.Context, id uint) (*cases.Correspondence, error) {
	var model models.CorrespondenceModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get correspondence", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get correspondence: %w", err)
	}
	return r.mapper.CorrespondenceToEntity(&model), nil
}

func (r *CorrespondenceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CorrespondenceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete correspondence", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete correspondence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("correspondence not found", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

// ListByCase returns the case's correspondences in sequence order.
func (r *CorrespondenceRepositoryImpl) ListByCase(ctx context.Context, caseID uint) ([]*cases.Correspondence, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).
		Where("case_id = ?", caseID).
		Order("case_sequence_number ASC"))
}

func (r *CorrespondenceRepositoryImpl) SearchByYearlyNumber(ctx context.Context, fragment string) ([]*cases.Correspondence, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if !textnorm.IsBlank(fragment) {
		query = query.Where(predicatesFor(query).like("yearly_sequence_number"), textnorm.ContainsPattern(fragment))
	}
	return r.find(query.Order("sent_at DESC").Order("id DESC"))
}

func (r *CorrespondenceRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CorrespondenceModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count correspondences: %w", err)
	}
	return total, nil
}

func (r *CorrespondenceRepositoryImpl) find(query *gorm.DB) ([]*cases.Correspondence, error) {
	var rows []*models.CorrespondenceModel
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to query correspondences", "error", err)
		return nil, fmt.Errorf("failed to query correspondences: %w", err)
	}

	result := make([]*cases.Correspondence, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.mapper.CorrespondenceToEntity(row))
	}
	return result, nil
}
