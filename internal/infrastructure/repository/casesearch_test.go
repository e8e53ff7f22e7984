package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
)

type searchFixture struct {
	repo      cases.CaseRepository
	water     *cases.Case
	billing   *cases.Case
	unrelated *cases.Case
}

func setupSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	gdb := setupTestDB(t)
	ctx := context.Background()
	log := testLogger()

	catRepo := NewCategoryRepository(gdb, log)
	leak, err := category.NewCategory("Water Leak", "", "#3498db")
	require.NoError(t, err)
	require.NoError(t, catRepo.Create(ctx, leak))
	bill, err := category.NewCategory("Billing", "", "")
	require.NoError(t, err)
	require.NoError(t, catRepo.Create(ctx, bill))

	empRepo := NewEmployeeRepository(gdb, log)
	sara, err := employee.NewEmployee("Sara", "Agent", "101", time.Now())
	require.NoError(t, err)
	require.NoError(t, empRepo.Create(ctx, sara))
	omar, err := employee.NewEmployee("Omar", "Agent", "102", time.Now())
	require.NoError(t, err)
	require.NoError(t, empRepo.Create(ctx, omar))

	repo := NewCaseRepository(gdb, log)
	received := date(2023, 12, 30)
	f := &searchFixture{repo: repo}
	f.water = createTestCase(t, repo, func(d *cases.Details) {
		d.CustomerName = "Ahmed Hassan"
		d.SubscriberNumber = "SUB-100"
		d.Address = "Nile Street 5"
		d.CategoryID = leak.ID()
		d.ProblemDescription = "Pipe burst near 50% valve"
		d.ReceivedDate = &received
	}, sara.ID(), date(2024, 1, 3))
	f.billing = createTestCase(t, repo, func(d *cases.Details) {
		d.CustomerName = "Mona Ali"
		d.SubscriberNumber = "SUB-200"
		d.Phone = "0100200300"
		d.CategoryID = bill.ID()
		d.Status = vo.StatusInProgress
		d.ActionsTaken = "invoice reviewed"
	}, omar.ID(), date(2024, 2, 3))
	f.unrelated = createTestCase(t, repo, func(d *cases.Details) {
		d.CustomerName = "Zaid"
		d.Address = "Rue ÉMILE Zola"
		d.CategoryID = bill.ID()
	}, omar.ID(), date(2023, 6, 1))

	corrRepo := NewCorrespondenceRepository(gdb, log)
	corr, err := cases.NewCorrespondence(f.billing.ID(), "desk", "Refund approved for SUB-200", date(2024, 2, 4), omar.ID(), date(2024, 2, 4))
	require.NoError(t, err)
	require.NoError(t, corr.AssignSequence(1, "2024-0001"))
	require.NoError(t, corrRepo.Create(ctx, corr))

	attRepo := NewAttachmentRepository(gdb, log)
	att, err := cases.NewAttachment(f.unrelated.ID(), "contract_scan.pdf", "/f/1", "pdf", "signed contract", nil, omar.ID(), date(2023, 6, 2))
	require.NoError(t, err)
	require.NoError(t, attRepo.Create(ctx, att))

	return f
}

func TestCaseRepository_SearchComprehensive(t *testing.T) {
	f := setupSearchFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		term string
		want []uint
	}{
		{name: "customer name is case insensitive", term: "ahmed", want: []uint{f.water.ID()}},
		{name: "correspondence content", term: "refund", want: []uint{f.billing.ID()}},
		{name: "attachment description", term: "CONTRACT", want: []uint{f.unrelated.ID()}},
		{name: "subscriber prefix matches two cases", term: "sub-", want: []uint{f.billing.ID(), f.water.ID()}},
		{name: "percent is literal", term: "50%", want: []uint{f.water.ID()}},
		{name: "underscore is literal", term: "t_s", want: []uint{f.unrelated.ID()}},
		{name: "accented capitals fold", term: "émile", want: []uint{f.unrelated.ID()}},
		{name: "accented term folds", term: "Émile zola", want: []uint{f.unrelated.ID()}},
		{name: "decomposed accent composes", term: "E\u0301MILE", want: []uint{f.unrelated.ID()}},
		{name: "no match", term: "nothing here", want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.repo.Search(ctx, cases.SearchCriteria{
				Mode:     cases.SearchModeComprehensive,
				Term:     tt.term,
				Ordering: cases.OrderByNewest,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, caseIDs(result))
		})
	}
}

func TestCaseRepository_SearchFields(t *testing.T) {
	f := setupSearchFixture(t)
	ctx := context.Background()
	inProgress := vo.StatusInProgress
	year2024 := 2024
	year2023 := 2023
	epoch := 1970

	// billing is modified but never solved; water is solved; unrelated is neither
	billing := f.billing.Details()
	billing.ActionsTaken = "invoice corrected"
	require.NoError(t, f.billing.Update(billing, f.billing.CreatedByID(), nil, date(2024, 3, 1)))
	require.NoError(t, f.repo.Update(ctx, f.billing))
	water := f.water.Details()
	water.Status = vo.StatusSolved
	require.NoError(t, f.water.Update(water, f.billing.CreatedByID(), nil, date(2024, 4, 1)))
	require.NoError(t, f.repo.Update(ctx, f.water))

	tests := []struct {
		name     string
		criteria cases.SearchCriteria
		want     []uint
	}{
		{
			name:     "empty criteria returns everything",
			criteria: cases.SearchCriteria{Ordering: cases.OrderByNewest},
			want:     []uint{f.billing.ID(), f.water.ID(), f.unrelated.ID()},
		},
		{
			name:     "status",
			criteria: cases.SearchCriteria{Status: &inProgress},
			want:     []uint{f.billing.ID()},
		},
		{
			name:     "category name equality",
			criteria: cases.SearchCriteria{CategoryName: "Billing", Ordering: cases.OrderByNewest},
			want:     []uint{f.billing.ID(), f.unrelated.ID()},
		},
		{
			name:     "employee name",
			criteria: cases.SearchCriteria{EmployeeName: "Sara"},
			want:     []uint{f.water.ID()},
		},
		{
			name:     "fields are combined with AND",
			criteria: cases.SearchCriteria{CustomerName: "mona", Address: "nile"},
			want:     []uint{},
		},
		{
			name:     "correspondence text",
			criteria: cases.SearchCriteria{CorrespondenceText: "refund"},
			want:     []uint{f.billing.ID()},
		},
		{
			name:     "attachment file name",
			criteria: cases.SearchCriteria{AttachmentText: "scan"},
			want:     []uint{f.unrelated.ID()},
		},
		{
			name:     "year on creation date",
			criteria: cases.SearchCriteria{Year: &year2024, Ordering: cases.OrderByNewest},
			want:     []uint{f.billing.ID(), f.water.ID()},
		},
		{
			name:     "year on received date skips cases without one",
			criteria: cases.SearchCriteria{Year: &year2023, DateField: cases.DateFieldReceived},
			want:     []uint{f.water.ID()},
		},
		{
			name:     "year on modified date skips never modified cases",
			criteria: cases.SearchCriteria{Year: &year2024, DateField: cases.DateFieldModified, Ordering: cases.OrderByNewest},
			want:     []uint{f.billing.ID(), f.water.ID()},
		},
		{
			name:     "year on solved date skips unsolved cases",
			criteria: cases.SearchCriteria{Year: &year2024, DateField: cases.DateFieldSolved, Ordering: cases.OrderByNewest},
			want:     []uint{f.water.ID()},
		},
		{
			name:     "null modified date is not the epoch",
			criteria: cases.SearchCriteria{Year: &epoch, DateField: cases.DateFieldModified},
			want:     []uint{},
		},
		{
			name:     "null solved date is not the epoch",
			criteria: cases.SearchCriteria{Year: &epoch, DateField: cases.DateFieldSolved},
			want:     []uint{},
		},
		{
			name:     "comprehensive with blank term falls back to fields",
			criteria: cases.SearchCriteria{Mode: cases.SearchModeComprehensive, Term: "  ", Status: &inProgress},
			want:     []uint{f.billing.ID()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.repo.Search(ctx, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, caseIDs(result))
		})
	}
}

func TestCaseRepository_SearchOrdersByRecentActivity(t *testing.T) {
	f := setupSearchFixture(t)
	ctx := context.Background()

	d := f.unrelated.Details()
	d.Phone = "123"
	require.NoError(t, f.unrelated.Update(d, 1, nil, date(2024, 5, 1)))
	require.NoError(t, f.repo.Update(ctx, f.unrelated))

	result, err := f.repo.Search(ctx, cases.SearchCriteria{Ordering: cases.OrderByRecentActivity})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.unrelated.ID(), f.billing.ID(), f.water.ID()}, caseIDs(result))
}

func TestEmployeeRepository_SearchFoldsAccentedNames(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEmployeeRepository(gdb, testLogger())
	ctx := context.Background()

	emp, err := employee.NewEmployee("ÉLODIE Martin", "Agent", "301", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, emp))

	found, err := repo.Search(ctx, "élodie")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, emp.ID(), found[0].ID())
}

func TestCaseRepository_KeywordSearch(t *testing.T) {
	f := setupSearchFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		keyword string
		want    []uint
	}{
		{name: "phone", keyword: "0100", want: []uint{f.billing.ID()}},
		{name: "category name", keyword: "leak", want: []uint{f.water.ID()}},
		{name: "status label", keyword: "قيد التنفيذ", want: []uint{f.billing.ID()}},
		{name: "blank keyword returns all", keyword: " ", want: []uint{f.billing.ID(), f.water.ID(), f.unrelated.ID()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.repo.KeywordSearch(ctx, tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, caseIDs(result))
		})
	}
}
