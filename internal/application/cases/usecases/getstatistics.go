package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type GetStatisticsUseCase struct {
	caseRepo           cases.CaseRepository
	correspondenceRepo cases.CorrespondenceRepository
	attachmentRepo     cases.AttachmentRepository
	names              *nameResolver
	logger             logger.Interface
}

func NewGetStatisticsUseCase(
	caseRepo cases.CaseRepository,
	correspondenceRepo cases.CorrespondenceRepository,
	attachmentRepo cases.AttachmentRepository,
	employees EmployeeDirectory,
	categories CategoryDirectory,
	logger logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		caseRepo:           caseRepo,
		correspondenceRepo: correspondenceRepo,
		attachmentRepo:     attachmentRepo,
		names:              newNameResolver(employees, categories),
		logger:             logger,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*dto.StatisticsDTO, error) {
	list, err := uc.caseRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load cases for statistics", "error", err)
		return nil, errors.WrapPersistence(err, "failed to load cases")
	}
	attachments, err := uc.attachmentRepo.Count(ctx)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to count attachments")
	}
	correspondences, err := uc.correspondenceRepo.Count(ctx)
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to count correspondences")
	}
	names, err := uc.names.all(ctx)
	if err != nil {
		return nil, err
	}

	stats := cases.ComputeStatistics(cases.StatisticsInput{
		Cases:                list,
		Names:                names,
		TotalAttachments:     attachments,
		TotalCorrespondences: correspondences,
		Now:                  biztime.NowUTC(),
		Location:             biztime.Location(),
	})
	return dto.ToStatisticsDTO(stats), nil
}
