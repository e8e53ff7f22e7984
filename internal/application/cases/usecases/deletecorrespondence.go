package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type DeleteCorrespondenceCommand struct {
	CorrespondenceID uint
}

// DeleteCorrespondenceUseCase removes a correspondence. Its numbers are not
// handed out again. A missing correspondence is not an error.
type DeleteCorrespondenceUseCase struct {
	correspondenceRepo cases.CorrespondenceRepository
	logger             logger.Interface
}

func NewDeleteCorrespondenceUseCase(correspondenceRepo cases.CorrespondenceRepository, logger logger.Interface) *DeleteCorrespondenceUseCase {
	return &DeleteCorrespondenceUseCase{correspondenceRepo: correspondenceRepo, logger: logger}
}

func (uc *DeleteCorrespondenceUseCase) Execute(ctx context.Context, cmd DeleteCorrespondenceCommand) error {
	err := uc.correspondenceRepo.Delete(ctx, cmd.CorrespondenceID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to delete correspondence", "correspondence_id", cmd.CorrespondenceID, "error", err)
		return errors.WrapPersistence(err, "failed to delete correspondence")
	}
	if err == nil {
		uc.logger.Infow("correspondence deleted", "correspondence_id", cmd.CorrespondenceID)
	}
	return nil
}
