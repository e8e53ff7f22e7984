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
)

type AttachmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
	logger logger.Interface
}

func NewAttachmentRepository(db *gorm.DB, logger logger.Interface) cases.AttachmentRepository {
	return &AttachmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewCaseMapper(),
		logger: logger,
	}
}

func (r *AttachmentRepositoryImpl) Create(ctx context.Context, a *cases.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attachment", "case_id", model.CaseID, "file_name", model.FileName, "error", err)
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AttachmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*cases.Attachment, error) {
	var model models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get attachment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return r.mapper.AttachmentToEntity(&model), nil
}

func (r *AttachmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete attachment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("attachment not found", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

func (r *AttachmentRepositoryImpl) ListByCase(ctx context.Context, caseID uint) ([]*cases.Attachment, error) {
	var rows []*models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("case_id = ?", caseID).
		Order("uploaded_at DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list attachments", "case_id", caseID, "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	result := make([]*cases.Attachment, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.mapper.AttachmentToEntity(row))
	}
	return result, nil
}

func (r *AttachmentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AttachmentModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}
	return total, nil
}
