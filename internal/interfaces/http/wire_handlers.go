package http

import (
	"github.com/orris-inc/casedesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	caseHandler           *handlers.CaseHandler
	correspondenceHandler *handlers.CorrespondenceHandler
	attachmentHandler     *handlers.AttachmentHandler
	employeeHandler       *handlers.EmployeeHandler
	authHandler           *handlers.AuthHandler
	lookupHandler         *handlers.LookupHandler
}

func newHandlers(u *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		caseHandler: handlers.NewCaseHandler(
			u.createCaseUC, u.updateCaseUC, u.deleteCaseUC, u.getCaseUC,
			u.listCasesUC, u.searchCasesUC, u.keywordSearchUC, u.auditTrailUC,
			log.Named("cases"),
		),
		correspondenceHandler: handlers.NewCorrespondenceHandler(
			u.addCorrespondenceUC, u.deleteCorrespondenceUC, u.listCorrespondencesUC,
			u.searchCorrespondencesUC, u.previewSequenceUC,
			log.Named("correspondence"),
		),
		attachmentHandler: handlers.NewAttachmentHandler(
			u.addAttachmentUC, u.deleteAttachmentUC, u.listAttachmentsUC,
			log.Named("attachments"),
		),
		employeeHandler: handlers.NewEmployeeHandler(
			u.createEmployeeUC, u.deactivateEmployeeUC, u.listEmployeesUC, u.searchEmployeesUC,
			log.Named("employees"),
		),
		authHandler:   handlers.NewAuthHandler(u.loginUC, log.Named("auth")),
		lookupHandler: handlers.NewLookupHandler(u.lookupsUC, u.categoriesUC, u.categoryUC, u.statisticsUC, log.Named("lookups")),
	}
}
