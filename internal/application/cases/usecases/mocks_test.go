package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
)

type mockCaseRepository struct {
	mock.Mock
}

func (m *mockCaseRepository) Create(ctx context.Context, c *cases.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCaseRepository) Update(ctx context.Context, c *cases.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCaseRepository) Delete(ctx context.Context, caseID uint) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *mockCaseRepository) GetByID(ctx context.Context, caseID uint) (*cases.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Case), args.Error(1)
}

func (m *mockCaseRepository) List(ctx context.Context) ([]*cases.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Case), args.Error(1)
}

func (m *mockCaseRepository) Search(ctx context.Context, criteria cases.SearchCriteria) ([]*cases.Case, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Case), args.Error(1)
}

func (m *mockCaseRepository) KeywordSearch(ctx context.Context, keyword string) ([]*cases.Case, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Case), args.Error(1)
}

func (m *mockCaseRepository) AvailableYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type mockCorrespondenceRepository struct {
	mock.Mock
}

func (m *mockCorrespondenceRepository) Create(ctx context.Context, c *cases.Correspondence) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCorrespondenceRepository) GetByID(ctx context.Context, id uint) (*cases.Correspondence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Correspondence), args.Error(1)
}

func (m *mockCorrespondenceRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCorrespondenceRepository) ListByCase(ctx context.Context, caseID uint) ([]*cases.Correspondence, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Correspondence), args.Error(1)
}

func (m *mockCorrespondenceRepository) SearchByYearlyNumber(ctx context.Context, fragment string) ([]*cases.Correspondence, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Correspondence), args.Error(1)
}

func (m *mockCorrespondenceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAttachmentRepository struct {
	mock.Mock
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *cases.Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*cases.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.Attachment), args.Error(1)
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAttachmentRepository) ListByCase(ctx context.Context, caseID uint) ([]*cases.Attachment, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cases.Attachment), args.Error(1)
}

func (m *mockAttachmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSequenceCounter struct {
	mock.Mock
}

func (m *mockSequenceCounter) Resync(ctx context.Context, caseID uint, year int) error {
	return m.Called(ctx, caseID, year).Error(0)
}

func (m *mockSequenceCounter) NextCaseSequence(ctx context.Context, caseID uint) (int, error) {
	args := m.Called(ctx, caseID)
	return args.Int(0), args.Error(1)
}

func (m *mockSequenceCounter) NextYearlySequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *mockSequenceCounter) PeekYearlySequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

type mockAuditRepository struct {
	mock.Mock
}

func (m *mockAuditRepository) Append(ctx context.Context, log *audit.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAuditRepository) ListByCase(ctx context.Context, caseID uint) ([]*audit.Log, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Log), args.Error(1)
}

type mockEmployeeDirectory struct {
	mock.Mock
}

func (m *mockEmployeeDirectory) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *mockEmployeeDirectory) List(ctx context.Context, activeOnly bool) ([]*employee.Employee, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employee.Employee), args.Error(1)
}

type mockCategoryDirectory struct {
	mock.Mock
}

func (m *mockCategoryDirectory) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryDirectory) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

type mockLocker struct {
	mock.Mock
	released []string
}

func (m *mockLocker) Lock(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func() { m.released = append(m.released, key) }, nil
}

// passthroughTx runs the unit of work without a store.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}
