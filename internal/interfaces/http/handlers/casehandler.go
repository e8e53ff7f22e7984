package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/application/cases/usecases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

type CaseHandler struct {
	createCaseUC    usecases.CreateCaseExecutor
	updateCaseUC    usecases.UpdateCaseExecutor
	deleteCaseUC    usecases.DeleteCaseExecutor
	getCaseUC       usecases.GetCaseExecutor
	listCasesUC     usecases.ListCasesExecutor
	searchCasesUC   usecases.SearchCasesExecutor
	keywordSearchUC usecases.KeywordSearchExecutor
	auditTrailUC    usecases.GetAuditTrailExecutor
	logger          logger.Interface
}

func NewCaseHandler(
	createCaseUC usecases.CreateCaseExecutor,
	updateCaseUC usecases.UpdateCaseExecutor,
	deleteCaseUC usecases.DeleteCaseExecutor,
	getCaseUC usecases.GetCaseExecutor,
	listCasesUC usecases.ListCasesExecutor,
	searchCasesUC usecases.SearchCasesExecutor,
	keywordSearchUC usecases.KeywordSearchExecutor,
	auditTrailUC usecases.GetAuditTrailExecutor,
	logger logger.Interface,
) *CaseHandler {
	return &CaseHandler{
		createCaseUC:    createCaseUC,
		updateCaseUC:    updateCaseUC,
		deleteCaseUC:    deleteCaseUC,
		getCaseUC:       getCaseUC,
		listCasesUC:     listCasesUC,
		searchCasesUC:   searchCasesUC,
		keywordSearchUC: keywordSearchUC,
		auditTrailUC:    auditTrailUC,
		logger:          logger,
	}
}

// CaseRequest is the editable part of a case. Amounts are decimal strings.
type CaseRequest struct {
	CustomerName       string     `json:"customer_name" validate:"max=200"`
	SubscriberNumber   string     `json:"subscriber_number" validate:"max=50"`
	Phone              string     `json:"phone" validate:"max=20"`
	Address            string     `json:"address" validate:"max=500"`
	CategoryID         uint       `json:"category_id"`
	Status             string     `json:"status"`
	ProblemDescription string     `json:"problem_description"`
	ActionsTaken       string     `json:"actions_taken"`
	LastMeterReading   string     `json:"last_meter_reading"`
	LastReadingDate    *time.Time `json:"last_reading_date"`
	DebtAmount         string     `json:"debt_amount"`
	ReceivedDate       *time.Time `json:"received_date"`
}

type UpdateCaseRequest struct {
	CaseRequest
	SolvedByID *uint `json:"solved_by_id"`
}

func (r CaseRequest) toInput() usecases.CaseInput {
	return usecases.CaseInput{
		CustomerName:       r.CustomerName,
		SubscriberNumber:   r.SubscriberNumber,
		Phone:              r.Phone,
		Address:            r.Address,
		CategoryID:         r.CategoryID,
		Status:             r.Status,
		ProblemDescription: r.ProblemDescription,
		ActionsTaken:       r.ActionsTaken,
		LastMeterReading:   r.LastMeterReading,
		LastReadingDate:    r.LastReadingDate,
		DebtAmount:         r.DebtAmount,
		ReceivedDate:       r.ReceivedDate,
	}
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	employeeID, err := utils.GetEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CaseRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create case", "employee_id", employeeID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCaseUC.Execute(c.Request.Context(), usecases.CreateCaseCommand{
		CaseInput:   req.toInput(),
		CreatedByID: employeeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created successfully")
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	employeeID, err := utils.GetEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCaseRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update case", "case_id", caseID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCaseUC.Execute(c.Request.Context(), usecases.UpdateCaseCommand{
		CaseID:       caseID,
		CaseInput:    req.toInput(),
		ModifiedByID: employeeID,
		SolverID:     req.SolvedByID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case updated successfully", result)
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	employeeID, err := utils.GetEmployeeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCaseUC.Execute(c.Request.Context(), usecases.DeleteCaseCommand{
		CaseID:      caseID,
		DeletedByID: employeeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCaseUC.Execute(c.Request.Context(), usecases.GetCaseQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCases returns every case, or the keyword matches when q is given.
func (h *CaseHandler) ListCases(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword != "" {
		result, err := h.keywordSearchUC.Execute(c.Request.Context(), usecases.KeywordSearchQuery{Keyword: keyword})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.listCasesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SearchCases runs the composed search. advanced=true switches to the
// advanced form's ordering.
func (h *CaseHandler) SearchCases(c *gin.Context) {
	year, err := utils.ParseOptionalIntQuery(c, "year")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.SearchCasesQuery{
		Mode:               c.Query("mode"),
		Term:               c.Query("term"),
		CustomerName:       c.Query("customer_name"),
		SubscriberNumber:   c.Query("subscriber_number"),
		Address:            c.Query("address"),
		Status:             c.Query("status"),
		CategoryName:       c.Query("category"),
		EmployeeName:       c.Query("employee"),
		ProblemDescription: c.Query("problem_description"),
		ActionsTaken:       c.Query("actions_taken"),
		CorrespondenceText: c.Query("correspondence"),
		AttachmentText:     c.Query("attachment"),
		Year:               year,
		DateField:          c.Query("date_field"),
		Advanced:           c.Query("advanced") == "true",
	}

	result, err := h.searchCasesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CaseHandler) GetAuditTrail(c *gin.Context) {
	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.auditTrailUC.Execute(c.Request.Context(), usecases.GetAuditTrailQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
