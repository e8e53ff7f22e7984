package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/domain/audit"
	"github.com/orris-inc/casedesk/internal/domain/cases"
	"github.com/orris-inc/casedesk/internal/domain/category"
	"github.com/orris-inc/casedesk/internal/domain/employee"
	"github.com/orris-inc/casedesk/internal/infrastructure/repository"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	employeeRepo       employee.Repository
	categoryRepo       category.Repository
	caseRepo           cases.CaseRepository
	correspondenceRepo cases.CorrespondenceRepository
	attachmentRepo     cases.AttachmentRepository
	sequenceCounter    cases.SequenceCounter
	auditRepo          audit.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		employeeRepo:       repository.NewEmployeeRepository(db, log),
		categoryRepo:       repository.NewCategoryRepository(db, log),
		caseRepo:           repository.NewCaseRepository(db, log),
		correspondenceRepo: repository.NewCorrespondenceRepository(db, log),
		attachmentRepo:     repository.NewAttachmentRepository(db, log),
		sequenceCounter:    repository.NewSequenceCounterRepository(db, log),
		auditRepo:          repository.NewAuditLogRepository(db, log),
	}
}
