package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

const (
	scopeCase = "case"
	scopeYear = "year"
)

func caseScopeKey(caseID uint) string {
	return strconv.FormatUint(uint64(caseID), 10)
}

func yearScopeKey(year int) string {
	return strconv.Itoa(year)
}

// SequenceCounterRepositoryImpl keeps one row per (scope, key) holding the
// last number handed out. A missing row is seeded from the correspondences
// already stored, so databases that predate the counter table continue
// their numbering.
type SequenceCounterRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSequenceCounterRepository(db *gorm.DB, logger logger.Interface) cases.SequenceCounter {
	return &SequenceCounterRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SequenceCounterRepositoryImpl) NextCaseSequence(ctx context.Context, caseID uint) (int, error) {
	return r.next(ctx, scopeCase, caseScopeKey(caseID), func(tx *gorm.DB) (int, error) {
		return r.caseSeed(tx, caseID)
	})
}

func (r *SequenceCounterRepositoryImpl) NextYearlySequence(ctx context.Context, year int) (int, error) {
	return r.next(ctx, scopeYear, yearScopeKey(year), func(tx *gorm.DB) (int, error) {
		return r.yearSeed(tx, year)
	})
}

// PeekYearlySequence reports the number the next correspondence of year
// would receive. Nothing is reserved.
func (r *SequenceCounterRepositoryImpl) PeekYearlySequence(ctx context.Context, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	counter, err := r.load(tx, scopeYear, yearScopeKey(year))
	if err != nil {
		return 0, err
	}
	if counter != nil {
		return counter.Value + 1, nil
	}
	seed, err := r.yearSeed(tx, year)
	if err != nil {
		return 0, err
	}
	return seed + 1, nil
}

func (r *SequenceCounterRepositoryImpl) Resync(ctx context.Context, caseID uint, year int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		caseMax, err := r.caseSeed(tx, caseID)
		if err != nil {
			return err
		}
		if err := r.raise(tx, scopeCase, caseScopeKey(caseID), caseMax); err != nil {
			return err
		}
		yearMax, err := r.yearSeed(tx, year)
		if err != nil {
			return err
		}
		return r.raise(tx, scopeYear, yearScopeKey(year), yearMax)
	})
}

// raise sets the counter to floor unless it already is at or above it.
// Counters never move down.
func (r *SequenceCounterRepositoryImpl) raise(tx *gorm.DB, scope, key string, floor int) error {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SequenceCounterModel{Scope: scope, ScopeKey: key, Value: floor}).Error; err != nil {
		r.logger.Errorw("failed to seed sequence counter", "scope", scope, "key", key, "error", err)
		return fmt.Errorf("failed to seed sequence counter: %w", err)
	}
	result := tx.Model(&models.SequenceCounterModel{}).
		Where("scope = ? AND scope_key = ? AND value < ?", scope, key, floor).
		UpdateColumn("value", floor)
	if result.Error != nil {
		r.logger.Errorw("failed to resync sequence counter", "scope", scope, "key", key, "error", result.Error)
		return fmt.Errorf("failed to resync sequence counter: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Warnw("sequence counter was behind stored numbers", "scope", scope, "key", key, "value", floor)
	}
	return nil
}

func (r *SequenceCounterRepositoryImpl) next(ctx context.Context, scope, key string, seed func(*gorm.DB) (int, error)) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	counter, err := r.load(tx, scope, key)
	if err != nil {
		return 0, err
	}
	if counter == nil {
		start, err := seed(tx)
		if err != nil {
			return 0, err
		}
		// a concurrent writer may have inserted the row first; its value wins
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SequenceCounterModel{Scope: scope, ScopeKey: key, Value: start}).Error; err != nil {
			r.logger.Errorw("failed to seed sequence counter", "scope", scope, "key", key, "error", err)
			return 0, fmt.Errorf("failed to seed sequence counter: %w", err)
		}
	}

	if err := tx.Model(&models.SequenceCounterModel{}).
		Where("scope = ? AND scope_key = ?", scope, key).
		UpdateColumn("value", gorm.Expr("value + ?", 1)).Error; err != nil {
		r.logger.Errorw("failed to increment sequence counter", "scope", scope, "key", key, "error", err)
		return 0, fmt.Errorf("failed to increment sequence counter: %w", err)
	}

	counter, err = r.load(tx, scope, key)
	if err != nil {
		return 0, err
	}
	if counter == nil {
		return 0, fmt.Errorf("sequence counter %s/%s vanished", scope, key)
	}
	return counter.Value, nil
}

func (r *SequenceCounterRepositoryImpl) load(tx *gorm.DB, scope, key string) (*models.SequenceCounterModel, error) {
	var counter models.SequenceCounterModel
	err := tx.Where("scope = ? AND scope_key = ?", scope, key).Take(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to load sequence counter", "scope", scope, "key", key, "error", err)
		return nil, fmt.Errorf("failed to load sequence counter: %w", err)
	}
	return &counter, nil
}

func (r *SequenceCounterRepositoryImpl) caseSeed(tx *gorm.DB, caseID uint) (int, error) {
	var maxSeq int
	if err := tx.Model(&models.CorrespondenceModel{}).
		Where("case_id = ?", caseID).
		Select("COALESCE(MAX(case_sequence_number), 0)").
		Scan(&maxSeq).Error; err != nil {
		return 0, fmt.Errorf("failed to compute case sequence seed: %w", err)
	}
	return maxSeq, nil
}

// yearSeed parses the stored yearly numbers in Go. They are text, so a
// lexical MAX breaks once a year passes 9999 correspondences.
func (r *SequenceCounterRepositoryImpl) yearSeed(tx *gorm.DB, year int) (int, error) {
	var numbers []string
	if err := tx.Model(&models.CorrespondenceModel{}).
		Where("yearly_sequence_number LIKE ?", fmt.Sprintf("%04d-%%", year)).
		Pluck("yearly_sequence_number", &numbers).Error; err != nil {
		return 0, fmt.Errorf("failed to compute yearly sequence seed: %w", err)
	}

	maxSeq := 0
	for _, s := range numbers {
		y, n, err := cases.ParseYearlySequence(s)
		if err != nil || y != year {
			r.logger.Warnw("skipping malformed yearly sequence number", "value", s)
			continue
		}
		if n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq, nil
}
