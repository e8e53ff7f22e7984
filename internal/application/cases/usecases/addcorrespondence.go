package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/constants"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type AddCorrespondenceCommand struct {
	CaseID      uint
	Sender      string
	Content     string
	SentAt      *time.Time
	CreatedByID uint
}

// AddCorrespondenceUseCase numbers and stores a correspondence. Both
// sequence numbers are drawn from their counters inside the same unit of
// work as the insert, under the per-case and per-year locks.
type AddCorrespondenceUseCase struct {
	caseRepo           cases.CaseRepository
	correspondenceRepo cases.CorrespondenceRepository
	counter            cases.SequenceCounter
	employees          EmployeeDirectory
	locker             SequenceLocker
	txMgr              db.Transactor
	maxAttempts        int
	logger             logger.Interface
}

func NewAddCorrespondenceUseCase(
	caseRepo cases.CaseRepository,
	correspondenceRepo cases.CorrespondenceRepository,
	counter cases.SequenceCounter,
	employees EmployeeDirectory,
	locker SequenceLocker,
	txMgr db.Transactor,
	maxAttempts int,
	logger logger.Interface,
) *AddCorrespondenceUseCase {
	if maxAttempts < 1 {
		maxAttempts = constants.DefaultSequenceRetryAttempts
	}
	return &AddCorrespondenceUseCase{
		caseRepo:           caseRepo,
		correspondenceRepo: correspondenceRepo,
		counter:            counter,
		employees:          employees,
		locker:             locker,
		txMgr:              txMgr,
		maxAttempts:        maxAttempts,
		logger:             logger,
	}
}

func (uc *AddCorrespondenceUseCase) Execute(ctx context.Context, cmd AddCorrespondenceCommand) (*dto.CorrespondenceDTO, error) {
	log := logger.FromContext(ctx, uc.logger)
	log.Infow("executing add correspondence use case", "case_id", cmd.CaseID, "created_by", cmd.CreatedByID)

	creator, err := requireEmployee(ctx, uc.employees, cmd.CreatedByID, "creator")
	if err != nil {
		return nil, err
	}
	if _, err := requireCase(ctx, uc.caseRepo, cmd.CaseID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	sentAt := now
	if cmd.SentAt != nil && !cmd.SentAt.IsZero() {
		sentAt = cmd.SentAt.UTC().Truncate(time.Millisecond)
	}
	// Validate before taking any lock.
	if _, err := cases.NewCorrespondence(cmd.CaseID, cmd.Sender, cmd.Content, sentAt, creator.ID(), now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	year := biztime.YearOf(sentAt)

	unlock, err := uc.lock(ctx, cmd.CaseID, year)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// a retry must restart the whole unit of work, which is impossible when
	// the caller owns the transaction
	attempts := uc.maxAttempts
	if db.InTransaction(ctx) {
		attempts = 1
	}

	var created *cases.Correspondence
	for attempt := 1; attempt <= attempts; attempt++ {
		created, err = uc.insert(ctx, cmd, sentAt, year, creator.ID(), now)
		if err == nil {
			break
		}
		if !errors.IsSequenceConflictError(err) {
			return nil, err
		}
		if attempt == attempts {
			break
		}
		log.Warnw("correspondence sequence conflict, retrying",
			"case_id", cmd.CaseID,
			"year", year,
			"attempt", attempt,
			"error", err,
		)
		// the failed attempt rolled its draws back; move the counters past
		// the stored numbers or the next attempt draws the same ones
		if rerr := uc.counter.Resync(ctx, cmd.CaseID, year); rerr != nil {
			log.Errorw("failed to resync sequence counters", "case_id", cmd.CaseID, "year", year, "error", rerr)
			return nil, errors.WrapPersistence(rerr, "failed to resync sequence counters")
		}
	}
	if err != nil {
		log.Errorw("correspondence sequence retries exhausted", "case_id", cmd.CaseID, "attempts", attempts)
		return nil, err
	}

	log.Infow("correspondence added successfully",
		"correspondence_id", created.ID(),
		"case_id", cmd.CaseID,
		"case_sequence", created.CaseSequenceNumber(),
		"yearly_sequence", created.YearlySequenceNumber(),
	)
	return dto.ToCorrespondenceDTO(created, map[uint]string{creator.ID(): creator.Name()}), nil
}

// lock takes the case lock, then the year lock. The order is fixed so two
// writers can never wait on each other.
func (uc *AddCorrespondenceUseCase) lock(ctx context.Context, caseID uint, year int) (func(), error) {
	unlockCase, err := uc.locker.Lock(ctx, "case:"+strconv.FormatUint(uint64(caseID), 10))
	if err != nil {
		uc.logger.Errorw("failed to acquire case sequence lock", "case_id", caseID, "error", err)
		return nil, errors.NewSequenceConflictError("correspondence numbering is busy, try again", err.Error())
	}
	unlockYear, err := uc.locker.Lock(ctx, "year:"+strconv.Itoa(year))
	if err != nil {
		unlockCase()
		uc.logger.Errorw("failed to acquire yearly sequence lock", "year", year, "error", err)
		return nil, errors.NewSequenceConflictError("correspondence numbering is busy, try again", err.Error())
	}
	return func() {
		unlockYear()
		unlockCase()
	}, nil
}

func (uc *AddCorrespondenceUseCase) insert(
	ctx context.Context,
	cmd AddCorrespondenceCommand,
	sentAt time.Time,
	year int,
	creatorID uint,
	now time.Time,
) (*cases.Correspondence, error) {
	c, err := cases.NewCorrespondence(cmd.CaseID, cmd.Sender, cmd.Content, sentAt, creatorID, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		caseSeq, err := uc.counter.NextCaseSequence(txCtx, cmd.CaseID)
		if err != nil {
			return errors.WrapPersistence(err, "failed to draw case sequence number")
		}
		yearlySeq, err := uc.counter.NextYearlySequence(txCtx, year)
		if err != nil {
			return errors.WrapPersistence(err, "failed to draw yearly sequence number")
		}
		if err := c.AssignSequence(caseSeq, cases.FormatYearlySequence(year, yearlySeq)); err != nil {
			return errors.NewInternalError("invalid sequence number", err.Error())
		}
		if err := uc.correspondenceRepo.Create(txCtx, c); err != nil {
			return errors.WrapPersistence(err, "failed to create correspondence")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
