package usecases

import (
	"context"

	"github.com/orris-inc/casedesk/internal/application/cases/dto"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
)

// EmployeeDirectory resolves employees, including deactivated ones.
type EmployeeDirectory interface {
	GetByID(ctx context.Context, id uint) (*employee.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]*employee.Employee, error)
}

// CategoryDirectory resolves issue categories.
type CategoryDirectory interface {
	GetByID(ctx context.Context, id uint) (*category.Category, error)
	List(ctx context.Context) ([]*category.Category, error)
}

// SequenceLocker serializes correspondence numbering per key. The returned
// function releases the lock.
type SequenceLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type CreateCaseExecutor interface {
	Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error)
}

type UpdateCaseExecutor interface {
	Execute(ctx context.Context, cmd UpdateCaseCommand) (*dto.CaseDTO, error)
}

type DeleteCaseExecutor interface {
	Execute(ctx context.Context, cmd DeleteCaseCommand) error
}

type GetCaseExecutor interface {
	Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error)
}

type ListCasesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CaseDTO, error)
}

type SearchCasesExecutor interface {
	Execute(ctx context.Context, query SearchCasesQuery) ([]*dto.CaseDTO, error)
}

type KeywordSearchExecutor interface {
	Execute(ctx context.Context, query KeywordSearchQuery) ([]*dto.CaseDTO, error)
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context) (*dto.StatisticsDTO, error)
}

type GetLookupsExecutor interface {
	Execute(ctx context.Context) (*dto.LookupsDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type GetCategoryExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.CategoryDTO, error)
}

type GetAuditTrailExecutor interface {
	Execute(ctx context.Context, query GetAuditTrailQuery) ([]*dto.AuditLogDTO, error)
}

type AddCorrespondenceExecutor interface {
	Execute(ctx context.Context, cmd AddCorrespondenceCommand) (*dto.CorrespondenceDTO, error)
}

type DeleteCorrespondenceExecutor interface {
	Execute(ctx context.Context, cmd DeleteCorrespondenceCommand) error
}

type ListCorrespondencesExecutor interface {
	Execute(ctx context.Context, query ListCorrespondencesQuery) ([]*dto.CorrespondenceDTO, error)
}

type SearchCorrespondencesExecutor interface {
	Execute(ctx context.Context, query SearchCorrespondencesQuery) ([]*dto.CorrespondenceDTO, error)
}

type PreviewYearlySequenceExecutor interface {
	Execute(ctx context.Context, query PreviewYearlySequenceQuery) (*PreviewYearlySequenceResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) error
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error)
}
