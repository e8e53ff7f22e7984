package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/db"
	apperrors "github.com/orris-inc/casedesk/internal/shared/errors"
)

func TestSequenceCounter_NextIsDense(t *testing.T) {
	gdb := setupTestDB(t)
	counter := NewSequenceCounterRepository(gdb, testLogger())
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := counter.NextCaseSequence(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err := counter.NextCaseSequence(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "each case numbers independently")

	n, err = counter.NextYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = counter.NextYearlySequence(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "numbering restarts each year")
}

func TestSequenceCounter_SeedsFromStoredCorrespondences(t *testing.T) {
	gdb := setupTestDB(t)
	counter := NewSequenceCounterRepository(gdb, testLogger())
	ctx := context.Background()

	rows := []models.CorrespondenceModel{
		{CaseID: 5, CaseSequenceNumber: 1, YearlySequenceNumber: "2024-0009", MessageContent: "a", SentAt: 1, CreatedByID: 1, CreatedAt: 1},
		{CaseID: 5, CaseSequenceNumber: 4, YearlySequenceNumber: "2024-10000", MessageContent: "b", SentAt: 1, CreatedByID: 1, CreatedAt: 1},
		{CaseID: 6, CaseSequenceNumber: 1, YearlySequenceNumber: "2023-0050", MessageContent: "c", SentAt: 1, CreatedByID: 1, CreatedAt: 1},
	}
	require.NoError(t, gdb.Create(&rows).Error)

	peek, err := counter.PeekYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 10001, peek)

	n, err := counter.NextYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 10001, n)

	peek, err = counter.PeekYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 10002, peek)

	n, err = counter.NextCaseSequence(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSequenceCounter_RollsBackWithTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	counter := NewSequenceCounterRepository(gdb, testLogger())
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	n, err := counter.NextYearlySequence(ctx, 2024)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := counter.NextYearlySequence(txCtx, 2024)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		return errors.New("insert failed")
	})
	require.Error(t, err)

	peek, err := counter.PeekYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, peek)
}

func TestSequenceCounter_ResyncCatchesUpWithStoredNumbers(t *testing.T) {
	gdb := setupTestDB(t)
	counter := NewSequenceCounterRepository(gdb, testLogger())
	ctx := context.Background()

	rows := []models.CorrespondenceModel{
		{CaseID: 7, CaseSequenceNumber: 1, YearlySequenceNumber: "2024-0001", MessageContent: "a", SentAt: 1, CreatedByID: 1, CreatedAt: 1},
		{CaseID: 7, CaseSequenceNumber: 2, YearlySequenceNumber: "2024-0002", MessageContent: "b", SentAt: 1, CreatedByID: 1, CreatedAt: 1},
	}
	require.NoError(t, gdb.Create(&rows).Error)

	// counters that fell behind the stored rows would redraw taken numbers
	require.NoError(t, gdb.Create(&[]models.SequenceCounterModel{
		{Scope: scopeCase, ScopeKey: caseScopeKey(7), Value: 0},
		{Scope: scopeYear, ScopeKey: yearScopeKey(2024), Value: 0},
	}).Error)

	require.NoError(t, counter.Resync(ctx, 7, 2024))

	n, err := counter.NextCaseSequence(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = counter.NextYearlySequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	t.Run("never lowers a counter", func(t *testing.T) {
		_, err := counter.NextYearlySequence(ctx, 2024)
		require.NoError(t, err)
		require.NoError(t, counter.Resync(ctx, 7, 2024))

		peek, err := counter.PeekYearlySequence(ctx, 2024)
		require.NoError(t, err)
		assert.Equal(t, 5, peek)
	})

	t.Run("seeds missing counters", func(t *testing.T) {
		require.NoError(t, counter.Resync(ctx, 8, 2030))

		n, err := counter.NextCaseSequence(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		n, err = counter.NextYearlySequence(ctx, 2030)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestCorrespondenceRepository_DuplicateSequenceIsConflict(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCorrespondenceRepository(gdb, testLogger())
	ctx := context.Background()

	first, err := cases.NewCorrespondence(1, "desk", "first", date(2024, 1, 1), 1, date(2024, 1, 1))
	require.NoError(t, err)
	require.NoError(t, first.AssignSequence(1, "2024-0001"))
	require.NoError(t, repo.Create(ctx, first))

	clash, err := cases.NewCorrespondence(2, "desk", "second", date(2024, 1, 1), 1, date(2024, 1, 1))
	require.NoError(t, err)
	require.NoError(t, clash.AssignSequence(1, "2024-0001"))
	err = repo.Create(ctx, clash)
	require.Error(t, err)
	assert.True(t, apperrors.IsSequenceConflictError(err))
}

func TestCorrespondenceRepository_Queries(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCorrespondenceRepository(gdb, testLogger())
	ctx := context.Background()

	for i, yearly := range []string{"2024-0001", "2024-0002", "2025-0001"} {
		c, err := cases.NewCorrespondence(1, "desk", "msg", date(2024, 1, i+1), 1, date(2024, 1, i+1))
		require.NoError(t, err)
		require.NoError(t, c.AssignSequence(i+1, yearly))
		require.NoError(t, repo.Create(ctx, c))
	}

	list, err := repo.ListByCase(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 1, list[0].CaseSequenceNumber())
	assert.Equal(t, 3, list[2].CaseSequenceNumber())

	found, err := repo.SearchByYearlyNumber(ctx, "2024-")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "2024-0002", found[0].YearlySequenceNumber())

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.NoError(t, repo.Delete(ctx, list[1].ID()))
	err = repo.Delete(ctx, list[1].ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	missing, err := repo.GetByID(ctx, list[1].ID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
