package http

import (
	caseUsecases "github.com/orris-inc/casedesk/internal/application/cases/usecases"
	employeeUsecases "github.com/orris-inc/casedesk/internal/application/employee/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Cases
	createCaseUC    *caseUsecases.CreateCaseUseCase
	updateCaseUC    *caseUsecases.UpdateCaseUseCase
	deleteCaseUC    *caseUsecases.DeleteCaseUseCase
	getCaseUC       *caseUsecases.GetCaseUseCase
	listCasesUC     *caseUsecases.ListCasesUseCase
	searchCasesUC   *caseUsecases.SearchCasesUseCase
	keywordSearchUC *caseUsecases.KeywordSearchUseCase
	auditTrailUC    *caseUsecases.GetAuditTrailUseCase

	// Correspondence & attachments
	addCorrespondenceUC     *caseUsecases.AddCorrespondenceUseCase
	deleteCorrespondenceUC  *caseUsecases.DeleteCorrespondenceUseCase
	listCorrespondencesUC   *caseUsecases.ListCorrespondencesUseCase
	searchCorrespondencesUC *caseUsecases.SearchCorrespondencesUseCase
	previewSequenceUC       *caseUsecases.PreviewYearlySequenceUseCase
	addAttachmentUC         *caseUsecases.AddAttachmentUseCase
	deleteAttachmentUC      *caseUsecases.DeleteAttachmentUseCase
	listAttachmentsUC       *caseUsecases.ListAttachmentsUseCase

	// Lookups
	lookupsUC    *caseUsecases.GetLookupsUseCase
	categoriesUC *caseUsecases.ListCategoriesUseCase
	categoryUC   *caseUsecases.GetCategoryUseCase
	statisticsUC *caseUsecases.GetStatisticsUseCase

	// Employees
	createEmployeeUC     *employeeUsecases.CreateEmployeeUseCase
	deactivateEmployeeUC *employeeUsecases.DeactivateEmployeeUseCase
	listEmployeesUC      *employeeUsecases.ListEmployeesUseCase
	searchEmployeesUC    *employeeUsecases.SearchEmployeesUseCase
	loginUC              *employeeUsecases.LoginUseCase
}

func newUseCases(c *Container) *allUseCases {
	r := c.repos
	log := c.log
	recorder := caseUsecases.NewAuditRecorder(r.auditRepo, r.employeeRepo, r.categoryRepo, log)

	return &allUseCases{
		createCaseUC:    caseUsecases.NewCreateCaseUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, recorder, c.txManager, log),
		updateCaseUC:    caseUsecases.NewUpdateCaseUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, recorder, c.txManager, log),
		deleteCaseUC:    caseUsecases.NewDeleteCaseUseCase(r.caseRepo, r.employeeRepo, recorder, c.txManager, log),
		getCaseUC:       caseUsecases.NewGetCaseUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, log),
		listCasesUC:     caseUsecases.NewListCasesUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, log),
		searchCasesUC:   caseUsecases.NewSearchCasesUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, log),
		keywordSearchUC: caseUsecases.NewKeywordSearchUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, log),
		auditTrailUC:    caseUsecases.NewGetAuditTrailUseCase(r.auditRepo, log),

		addCorrespondenceUC: caseUsecases.NewAddCorrespondenceUseCase(
			r.caseRepo, r.correspondenceRepo, r.sequenceCounter, r.employeeRepo,
			c.locker, c.txManager, c.cfg.Business.SequenceRetryAttempts, log,
		),
		deleteCorrespondenceUC:  caseUsecases.NewDeleteCorrespondenceUseCase(r.correspondenceRepo, log),
		listCorrespondencesUC:   caseUsecases.NewListCorrespondencesUseCase(r.caseRepo, r.correspondenceRepo, r.employeeRepo, log),
		searchCorrespondencesUC: caseUsecases.NewSearchCorrespondencesUseCase(r.correspondenceRepo, r.employeeRepo, log),
		previewSequenceUC:       caseUsecases.NewPreviewYearlySequenceUseCase(r.sequenceCounter, log),
		addAttachmentUC:         caseUsecases.NewAddAttachmentUseCase(r.caseRepo, r.attachmentRepo, r.employeeRepo, log),
		deleteAttachmentUC:      caseUsecases.NewDeleteAttachmentUseCase(r.attachmentRepo, log),
		listAttachmentsUC:       caseUsecases.NewListAttachmentsUseCase(r.caseRepo, r.attachmentRepo, r.employeeRepo, log),

		lookupsUC:    caseUsecases.NewGetLookupsUseCase(r.caseRepo, r.employeeRepo, r.categoryRepo, log),
		categoriesUC: caseUsecases.NewListCategoriesUseCase(r.categoryRepo, log),
		categoryUC:   caseUsecases.NewGetCategoryUseCase(r.categoryRepo, log),
		statisticsUC: caseUsecases.NewGetStatisticsUseCase(r.caseRepo, r.correspondenceRepo, r.attachmentRepo, r.employeeRepo, r.categoryRepo, log),

		createEmployeeUC:     employeeUsecases.NewCreateEmployeeUseCase(r.employeeRepo, log),
		deactivateEmployeeUC: employeeUsecases.NewDeactivateEmployeeUseCase(r.employeeRepo, log),
		listEmployeesUC:      employeeUsecases.NewListEmployeesUseCase(r.employeeRepo, log),
		searchEmployeesUC:    employeeUsecases.NewSearchEmployeesUseCase(r.employeeRepo, log),
		loginUC:              employeeUsecases.NewLoginUseCase(r.employeeRepo, c.tokenIssuer, log),
	}
}
