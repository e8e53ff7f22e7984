package usecases

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/infrastructure/database"
	"github.com/orris-inc/casedesk/internal/infrastructure/lock"
	"github.com/orris-inc/casedesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/casedesk/internal/infrastructure/repository"
	"github.com/orris-inc/casedesk/internal/shared/db"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// desk wires the use cases to an in-memory SQLite store.
type desk struct {
	db         *gorm.DB
	employees  employee.Repository
	categories category.Repository
	auditRepo  audit.Repository

	create          *CreateCaseUseCase
	update          *UpdateCaseUseCase
	remove          *DeleteCaseUseCase
	get             *GetCaseUseCase
	search          *SearchCasesUseCase
	stats           *GetStatisticsUseCase
	trail           *GetAuditTrailUseCase
	addCorr         *AddCorrespondenceUseCase
	listCorr        *ListCorrespondencesUseCase
	preview         *PreviewYearlySequenceUseCase
	addAttachment   *AddAttachmentUseCase
	listAttachments *ListAttachmentsUseCase

	adminID   uint
	agentID   uint
	billingID uint
}

func newDesk(t *testing.T) *desk {
	t.Helper()
	gdb, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	d := &desk{
		db:         gdb,
		employees:  repository.NewEmployeeRepository(gdb, log),
		categories: repository.NewCategoryRepository(gdb, log),
		auditRepo:  repository.NewAuditLogRepository(gdb, log),
	}
	d.wire(t, d.auditRepo)

	ctx := context.Background()
	admin, err := employee.NewEmployee("مدير النظام", "Admin", "1", time.Now())
	require.NoError(t, err)
	require.NoError(t, d.employees.Create(ctx, admin))
	agent, err := employee.NewEmployee("Sara", "Agent", "1002", time.Now())
	require.NoError(t, err)
	require.NoError(t, d.employees.Create(ctx, agent))
	billing, err := category.NewCategory("مشاكل الفواتير", "", "#FF0000")
	require.NoError(t, err)
	require.NoError(t, d.categories.Create(ctx, billing))

	d.adminID, d.agentID, d.billingID = admin.ID(), agent.ID(), billing.ID()
	return d
}

func (d *desk) wire(t *testing.T, auditRepo audit.Repository) {
	t.Helper()
	log := logger.NewNopLogger()
	caseRepo := repository.NewCaseRepository(d.db, log)
	corrRepo := repository.NewCorrespondenceRepository(d.db, log)
	attRepo := repository.NewAttachmentRepository(d.db, log)
	counter := repository.NewSequenceCounterRepository(d.db, log)
	txMgr := db.NewTransactionManager(d.db)
	recorder := NewAuditRecorder(auditRepo, d.employees, d.categories, log)

	d.create = NewCreateCaseUseCase(caseRepo, d.employees, d.categories, recorder, txMgr, log)
	d.update = NewUpdateCaseUseCase(caseRepo, d.employees, d.categories, recorder, txMgr, log)
	d.remove = NewDeleteCaseUseCase(caseRepo, d.employees, recorder, txMgr, log)
	d.get = NewGetCaseUseCase(caseRepo, d.employees, d.categories, log)
	d.search = NewSearchCasesUseCase(caseRepo, d.employees, d.categories, log)
	d.stats = NewGetStatisticsUseCase(caseRepo, corrRepo, attRepo, d.employees, d.categories, log)
	d.trail = NewGetAuditTrailUseCase(d.auditRepo, log)
	d.addCorr = NewAddCorrespondenceUseCase(caseRepo, corrRepo, counter, d.employees, lock.NewMemoryLocker(), txMgr, 3, log)
	d.listCorr = NewListCorrespondencesUseCase(caseRepo, corrRepo, d.employees, log)
	d.preview = NewPreviewYearlySequenceUseCase(counter, log)
	d.addAttachment = NewAddAttachmentUseCase(caseRepo, attRepo, d.employees, log)
	d.listAttachments = NewListAttachmentsUseCase(caseRepo, attRepo, d.employees, log)
}

func (d *desk) newCase(t *testing.T, name string, mutate func(in *CaseInput)) uint {
	t.Helper()
	in := CaseInput{CustomerName: name, CategoryID: d.billingID, Status: "new"}
	if mutate != nil {
		mutate(&in)
	}
	c, err := d.create.Execute(context.Background(), CreateCaseCommand{CaseInput: in, CreatedByID: d.adminID})
	require.NoError(t, err)
	return c.ID
}

func (d *desk) correspond(t *testing.T, caseID uint, content string, sentAt time.Time) (int, string) {
	t.Helper()
	c, err := d.addCorr.Execute(context.Background(), AddCorrespondenceCommand{
		CaseID:      caseID,
		Content:     content,
		SentAt:      &sentAt,
		CreatedByID: d.agentID,
	})
	require.NoError(t, err)
	return c.CaseSequenceNumber, c.YearlySequenceNumber
}

func TestDesk_CreateWritesOneAuditEntry(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()

	id := d.newCase(t, "Ahmed", nil)

	got, err := d.get.Execute(ctx, GetCaseQuery{CaseID: id})
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", got.CustomerName)
	assert.Equal(t, "مشاكل الفواتير", got.CategoryName)

	trail, err := d.trail.Execute(ctx, GetAuditTrailQuery{CaseID: id})
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, "create", trail[0].ActionType)
	assert.Contains(t, string(trail[0].NewValues), "Ahmed")
	assert.Empty(t, trail[0].OldValues)
	assert.Equal(t, "مدير النظام", trail[0].PerformedByName)
}

func TestDesk_CorrespondenceSequencesAreDense(t *testing.T) {
	d := newDesk(t)
	first := d.newCase(t, "Ahmed", nil)
	second := d.newCase(t, "Mona", nil)

	sent := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	type entry struct {
		caseID uint
		seq    int
		yearly string
	}
	var entries []entry
	for i, caseID := range []uint{first, second, first, first, second} {
		seq, yearly := d.correspond(t, caseID, fmt.Sprintf("message %d", i), sent.Add(time.Duration(i)*time.Hour))
		entries = append(entries, entry{caseID, seq, yearly})
	}

	var firstSeqs, secondSeqs []int
	var yearly []string
	for _, e := range entries {
		if e.caseID == first {
			firstSeqs = append(firstSeqs, e.seq)
		} else {
			secondSeqs = append(secondSeqs, e.seq)
		}
		yearly = append(yearly, e.yearly)
	}
	assert.Equal(t, []int{1, 2, 3}, firstSeqs)
	assert.Equal(t, []int{1, 2}, secondSeqs)
	assert.Equal(t, []string{"2024-0001", "2024-0002", "2024-0003", "2024-0004", "2024-0005"}, yearly)

	// another year starts again at one
	_, other := d.correspond(t, first, "new year", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-0001", other)

	preview, err := d.preview.Execute(context.Background(), PreviewYearlySequenceQuery{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "2024-0006", preview.SequenceNumber)

	listed, err := d.listCorr.Execute(context.Background(), ListCorrespondencesQuery{CaseID: first})
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, 1, listed[0].CaseSequenceNumber)
	assert.Equal(t, "Sara", listed[0].CreatedByName)
}

func TestDesk_ConcurrentCorrespondenceKeepsSequencesUnique(t *testing.T) {
	d := newDesk(t)
	caseID := d.newCase(t, "Ahmed", nil)
	sent := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	results := make(chan int, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := d.addCorr.Execute(context.Background(), AddCorrespondenceCommand{
				CaseID:      caseID,
				Content:     fmt.Sprintf("message %d", i),
				SentAt:      &sent,
				CreatedByID: d.agentID,
			})
			if err != nil {
				errs <- err
				return
			}
			results <- c.CaseSequenceNumber
		}(i)
	}
	wg.Wait()
	close(errs)
	close(results)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	var seqs []int
	for s := range results {
		seqs = append(seqs, s)
	}
	sort.Ints(seqs)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seqs)
}

func TestDesk_CorrespondenceRecoversFromLaggingCounters(t *testing.T) {
	tests := []struct {
		name   string
		scopes []string
	}{
		{name: "yearly counter behind", scopes: []string{"year"}},
		{name: "both counters behind", scopes: []string{"case", "year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesk(t)
			caseID := d.newCase(t, "Ahmed", nil)
			sent := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

			seq, yearly := d.correspond(t, caseID, "first", sent)
			require.Equal(t, 1, seq)
			require.Equal(t, "2024-0001", yearly)

			// e.g. a counter row restored from an older backup
			require.NoError(t, d.db.Model(&models.SequenceCounterModel{}).
				Where("scope IN ?", tt.scopes).
				UpdateColumn("value", 0).Error)

			seq, yearly = d.correspond(t, caseID, "second", sent.Add(time.Hour))
			assert.Equal(t, 2, seq)
			assert.Equal(t, "2024-0002", yearly)

			var stored int64
			require.NoError(t, d.db.Model(&models.CorrespondenceModel{}).Where("case_id = ?", caseID).Count(&stored).Error)
			assert.Equal(t, int64(2), stored)
		})
	}
}

func TestDesk_UpdateRecordsOldAndNewStatus(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()
	id := d.newCase(t, "Ahmed", nil)

	solver := d.agentID
	updated, err := d.update.Execute(ctx, UpdateCaseCommand{
		CaseID:       id,
		CaseInput:    CaseInput{CustomerName: "Ahmed", CategoryID: d.billingID, Status: "solved"},
		ModifiedByID: d.adminID,
		SolverID:     &solver,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sara", updated.SolvedByName)

	trail, err := d.trail.Execute(ctx, GetAuditTrailQuery{CaseID: id})
	require.NoError(t, err)
	require.Len(t, trail, 2)
	latest := trail[0]
	assert.Equal(t, "update", latest.ActionType)
	assert.Contains(t, string(latest.OldValues), `"status":"new"`)
	assert.Contains(t, string(latest.NewValues), `"status":"solved"`)
	assert.Contains(t, latest.ChangedFields, "status")
	assert.NotContains(t, latest.ChangedFields, "customer_name")
}

func TestDesk_ComprehensiveSearchCoversRelatedText(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()

	inProblem := d.newCase(t, "Ahmed", func(in *CaseInput) { in.ProblemDescription = "فاتورة مرتفعة" })
	inCorrespondence := d.newCase(t, "Mona", nil)
	inAttachment := d.newCase(t, "Khaled", nil)
	d.newCase(t, "Omar", func(in *CaseInput) { in.ProblemDescription = "انقطاع المياه" })

	d.correspond(t, inCorrespondence, "أرسلنا نسخة من الفاتورة", time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))
	size := int64(2048)
	_, err := d.addAttachment.Execute(ctx, AddAttachmentCommand{
		CaseID:       inAttachment,
		FileName:     "scan.pdf",
		FilePath:     "/data/scan.pdf",
		Description:  "صورة فاتورة",
		FileSize:     &size,
		UploadedByID: d.agentID,
	})
	require.NoError(t, err)

	found, err := d.search.Execute(ctx, SearchCasesQuery{Mode: "شامل", Term: "فاتورة"})
	require.NoError(t, err)

	var ids []uint
	for _, c := range found {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []uint{inProblem, inCorrespondence, inAttachment}, ids)

	found, err = d.search.Execute(ctx, SearchCasesQuery{Mode: "comprehensive", Term: "scan.PDF"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inAttachment, found[0].ID)
}

func TestDesk_StatusOnlySearchIsSparse(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()

	closed := d.newCase(t, "Ahmed", func(in *CaseInput) { in.Status = "closed" })
	d.newCase(t, "Mona", nil)
	d.newCase(t, "Khaled", func(in *CaseInput) { in.Status = "in_progress" })

	found, err := d.search.Execute(ctx, SearchCasesQuery{Status: "مغلقة"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, closed, found[0].ID)
}

func TestDesk_DeleteCascadesAndLeavesTombstone(t *testing.T) {
	d := newDesk(t)
	ctx := context.Background()
	id := d.newCase(t, "Ahmed", nil)
	d.correspond(t, id, "hello", time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC))
	_, err := d.addAttachment.Execute(ctx, AddAttachmentCommand{
		CaseID: id, FileName: "a.png", FilePath: "/data/a.png", UploadedByID: d.adminID,
	})
	require.NoError(t, err)

	require.NoError(t, d.remove.Execute(ctx, DeleteCaseCommand{CaseID: id, DeletedByID: d.adminID}))

	_, err = d.get.Execute(ctx, GetCaseQuery{CaseID: id})
	assert.True(t, errors.IsNotFoundError(err))

	var correspondences, attachments int64
	require.NoError(t, d.db.Model(&models.CorrespondenceModel{}).Where("case_id = ?", id).Count(&correspondences).Error)
	require.NoError(t, d.db.Model(&models.AttachmentModel{}).Where("case_id = ?", id).Count(&attachments).Error)
	assert.Zero(t, correspondences)
	assert.Zero(t, attachments)

	trail, err := d.trail.Execute(ctx, GetAuditTrailQuery{CaseID: id})
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, "delete", trail[0].ActionType)
	assert.Contains(t, string(trail[0].OldValues), "Ahmed")

	err = d.remove.Execute(ctx, DeleteCaseCommand{CaseID: id, DeletedByID: d.adminID})
	assert.True(t, errors.IsNotFoundError(err))
	trail, err = d.trail.Execute(ctx, GetAuditTrailQuery{CaseID: id})
	require.NoError(t, err)
	assert.Len(t, trail, 1)
}

func TestDesk_StatisticsOnEmptyCollection(t *testing.T) {
	d := newDesk(t)

	stats, err := d.stats.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalCases)
	assert.Zero(t, stats.AverageResolutionDays)
	assert.Empty(t, stats.MostCommonCategory)
	assert.Nil(t, stats.LastCaseDate)
}

func TestDesk_StatisticsStatusCountsAddUp(t *testing.T) {
	d := newDesk(t)
	for i, status := range []string{"new", "new", "in_progress", "solved", "closed"} {
		s := status
		d.newCase(t, fmt.Sprintf("Customer %d", i), func(in *CaseInput) { in.Status = s })
	}

	stats, err := d.stats.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalCases)
	assert.Equal(t, stats.TotalCases, stats.NewCases+stats.InProgressCases+stats.SolvedCases+stats.ClosedCases)
	assert.Equal(t, 3, stats.ActiveCases)
	assert.Equal(t, "مشاكل الفواتير", stats.MostCommonCategory)
	assert.Equal(t, "مدير النظام", stats.MostActiveEmployee)
}

type failingAuditRepository struct {
	audit.Repository
}

func (failingAuditRepository) Append(context.Context, *audit.Log) error {
	return fmt.Errorf("audit store unavailable")
}

func TestDesk_AuditFailureRollsBackCaseWrite(t *testing.T) {
	d := newDesk(t)
	d.wire(t, failingAuditRepository{Repository: d.auditRepo})

	_, err := d.create.Execute(context.Background(), CreateCaseCommand{
		CaseInput:   CaseInput{CustomerName: "Ahmed", CategoryID: d.billingID, Status: "new"},
		CreatedByID: d.adminID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsPersistenceError(err))

	var count int64
	require.NoError(t, d.db.Model(&models.CaseModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
