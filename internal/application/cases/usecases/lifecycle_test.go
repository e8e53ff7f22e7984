package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type lifecycleFixture struct {
	caseRepo   *mockCaseRepository
	auditRepo  *mockAuditRepository
	employees  *mockEmployeeDirectory
	categories *mockCategoryDirectory
	tx         *passthroughTx
	recorder   *AuditRecorder
	admin      *employee.Employee
	agent      *employee.Employee
	billing    *category.Category
}

func newLifecycleFixture() *lifecycleFixture {
	f := &lifecycleFixture{
		caseRepo:   new(mockCaseRepository),
		auditRepo:  new(mockAuditRepository),
		employees:  new(mockEmployeeDirectory),
		categories: new(mockCategoryDirectory),
		tx:         &passthroughTx{},
		admin:      employee.ReconstructEmployee(1, "Admin", "Supervisor", "1", true, time.Now()),
		agent:      employee.ReconstructEmployee(2, "Sara", "Agent", "1002", true, time.Now()),
		billing:    category.ReconstructCategory(3, "Billing", "", "#FF0000"),
	}
	f.recorder = NewAuditRecorder(f.auditRepo, f.employees, f.categories, logger.NewNopLogger())

	f.employees.On("GetByID", mock.Anything, uint(1)).Return(f.admin, nil).Maybe()
	f.employees.On("GetByID", mock.Anything, uint(2)).Return(f.agent, nil).Maybe()
	f.employees.On("GetByID", mock.Anything, uint(99)).Return(nil, nil).Maybe()
	f.categories.On("GetByID", mock.Anything, uint(3)).Return(f.billing, nil).Maybe()
	f.categories.On("GetByID", mock.Anything, uint(42)).Return(nil, nil).Maybe()
	return f
}

func validInput() CaseInput {
	return CaseInput{
		CustomerName: "Ahmed",
		CategoryID:   3,
		Status:       "new",
		DebtAmount:   "150.5",
	}
}

func existingCase(id uint, status vo.CaseStatus) *cases.Case {
	return cases.ReconstructCase(id, cases.Details{
		CustomerName: "Ahmed",
		CategoryID:   3,
		Status:       status,
	}, cases.Metadata{
		CreatedByID: 1,
		CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
}

func decodeValues(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestCreateCaseUseCase_Success(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("Create", mock.Anything, mock.AnythingOfType("*cases.Case")).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*cases.Case).SetID(10)
		}).Return(nil)

	var logged *audit.Log
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Log")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*audit.Log) }).
		Return(nil)

	uc := NewCreateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), CreateCaseCommand{CaseInput: validInput(), CreatedByID: 1})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, "Billing", result.CategoryName)
	assert.Equal(t, "Admin", result.CreatedByName)
	require.NotNil(t, result.DebtAmount)
	assert.InDelta(t, 150.5, *result.DebtAmount, 0.0001)
	assert.Equal(t, 1, f.tx.calls)

	require.NotNil(t, logged)
	assert.Equal(t, audit.ActionCreate, logged.Action())
	assert.Equal(t, uint(10), logged.CaseID())
	assert.Equal(t, "Admin", logged.PerformedByName())
	assert.Empty(t, logged.OldValues())
	assert.Equal(t, "Ahmed", decodeValues(t, logged.NewValues())["customer_name"])
	assert.Contains(t, logged.Description(), "Ahmed")
}

func TestCreateCaseUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input func(in *CaseInput)
	}{
		{"missing customer name", func(in *CaseInput) { in.CustomerName = "  " }},
		{"missing status", func(in *CaseInput) { in.Status = "" }},
		{"unknown status", func(in *CaseInput) { in.Status = "pending" }},
		{"malformed debt", func(in *CaseInput) { in.DebtAmount = "abc" }},
		{"negative reading", func(in *CaseInput) { in.LastMeterReading = "-4" }},
		{"missing category", func(in *CaseInput) { in.CategoryID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLifecycleFixture()
			in := validInput()
			tt.input(&in)

			uc := NewCreateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), CreateCaseCommand{CaseInput: in, CreatedByID: 1})

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
			f.caseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCaseUseCase_UnknownReferences(t *testing.T) {
	tests := []struct {
		name    string
		creator uint
		catID   uint
	}{
		{"unknown creator", 99, 3},
		{"unknown category", 1, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLifecycleFixture()
			in := validInput()
			in.CategoryID = tt.catID

			uc := NewCreateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
			_, err := uc.Execute(context.Background(), CreateCaseCommand{CaseInput: in, CreatedByID: tt.creator})

			require.Error(t, err)
			assert.True(t, errors.IsNotFoundError(err))
			f.caseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCaseUseCase_AuditFailureFailsOperation(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { _ = args.Get(1).(*cases.Case).SetID(11) }).
		Return(nil)
	f.auditRepo.On("Append", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	uc := NewCreateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), CreateCaseCommand{CaseInput: validInput(), CreatedByID: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsPersistenceError(err))
}

func TestUpdateCaseUseCase_SolvesCase(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("GetByID", mock.Anything, uint(10)).Return(existingCase(10, vo.StatusNew), nil)
	f.caseRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	var logged *audit.Log
	f.auditRepo.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*audit.Log) }).
		Return(nil)

	in := validInput()
	in.Status = "solved"
	in.ActionsTaken = "meter replaced"
	solver := uint(2)

	uc := NewUpdateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), UpdateCaseCommand{
		CaseID:       10,
		CaseInput:    in,
		ModifiedByID: 1,
		SolverID:     &solver,
	})

	require.NoError(t, err)
	assert.Equal(t, "solved", result.Status)
	assert.Equal(t, "Sara", result.SolvedByName)
	assert.Equal(t, "Admin", result.ModifiedByName)
	require.NotNil(t, result.SolvedAt)

	require.NotNil(t, logged)
	assert.Equal(t, audit.ActionUpdate, logged.Action())
	assert.Equal(t, "new", decodeValues(t, logged.OldValues())["status"])
	assert.Equal(t, "solved", decodeValues(t, logged.NewValues())["status"])
	assert.Equal(t, "Admin", logged.PerformedByName())
}

func TestUpdateCaseUseCase_MissingCase(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("GetByID", mock.Anything, uint(77)).Return(nil, nil)

	uc := NewUpdateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), UpdateCaseCommand{CaseID: 77, CaseInput: validInput(), ModifiedByID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	f.caseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestUpdateCaseUseCase_UnknownModifier(t *testing.T) {
	f := newLifecycleFixture()

	uc := NewUpdateCaseUseCase(f.caseRepo, f.employees, f.categories, f.recorder, f.tx, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), UpdateCaseCommand{CaseID: 10, CaseInput: validInput(), ModifiedByID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	f.caseRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDeleteCaseUseCase_WritesTombstone(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("GetByID", mock.Anything, uint(10)).Return(existingCase(10, vo.StatusClosed), nil)
	f.caseRepo.On("Delete", mock.Anything, uint(10)).Return(nil)

	var logged *audit.Log
	f.auditRepo.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { logged = args.Get(1).(*audit.Log) }).
		Return(nil)

	uc := NewDeleteCaseUseCase(f.caseRepo, f.employees, f.recorder, f.tx, logger.NewNopLogger())
	err := uc.Execute(context.Background(), DeleteCaseCommand{CaseID: 10, DeletedByID: 2})

	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.Equal(t, audit.ActionDelete, logged.Action())
	assert.Equal(t, uint(10), logged.CaseID())
	assert.Empty(t, logged.NewValues())
	assert.Equal(t, "closed", decodeValues(t, logged.OldValues())["status"])
	assert.Equal(t, "Sara", logged.PerformedByName())
	f.caseRepo.AssertExpectations(t)
}

func TestDeleteCaseUseCase_MissingCaseHasNoSideEffects(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("GetByID", mock.Anything, uint(5)).Return(nil, nil)

	uc := NewDeleteCaseUseCase(f.caseRepo, f.employees, f.recorder, f.tx, logger.NewNopLogger())
	err := uc.Execute(context.Background(), DeleteCaseCommand{CaseID: 5, DeletedByID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	f.caseRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestDeleteCaseUseCase_StoreFailure(t *testing.T) {
	f := newLifecycleFixture()
	f.caseRepo.On("GetByID", mock.Anything, uint(10)).Return(existingCase(10, vo.StatusNew), nil)
	f.caseRepo.On("Delete", mock.Anything, uint(10)).Return(fmt.Errorf("database is locked"))

	uc := NewDeleteCaseUseCase(f.caseRepo, f.employees, f.recorder, f.tx, logger.NewNopLogger())
	err := uc.Execute(context.Background(), DeleteCaseCommand{CaseID: 10, DeletedByID: 1})

	require.Error(t, err)
	assert.True(t, errors.IsPersistenceError(err))
	f.auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
