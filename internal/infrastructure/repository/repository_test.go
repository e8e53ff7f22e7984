package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/infrastructure/database"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every connection of :memory: is a separate database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func createTestCase(t *testing.T, repo cases.CaseRepository, mutate func(d *cases.Details), createdBy uint, createdAt time.Time) *cases.Case {
	t.Helper()
	d := cases.Details{
		CustomerName: "Customer",
		CategoryID:   1,
		Status:       vo.StatusNew,
	}
	if mutate != nil {
		mutate(&d)
	}
	c, err := cases.NewCase(d, createdBy, createdAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

func caseIDs(list []*cases.Case) []uint {
	ids := make([]uint, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID())
	}
	return ids
}
