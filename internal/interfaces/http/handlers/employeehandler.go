package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/application/employee/usecases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

type EmployeeHandler struct {
	createUC     usecases.CreateEmployeeExecutor
	deactivateUC usecases.DeactivateEmployeeExecutor
	listUC       usecases.ListEmployeesExecutor
	searchUC     usecases.SearchEmployeesExecutor
	logger       logger.Interface
}

func NewEmployeeHandler(
	createUC usecases.CreateEmployeeExecutor,
	deactivateUC usecases.DeactivateEmployeeExecutor,
	listUC usecases.ListEmployeesExecutor,
	searchUC usecases.SearchEmployeesExecutor,
	logger logger.Interface,
) *EmployeeHandler {
	return &EmployeeHandler{
		createUC:     createUC,
		deactivateUC: deactivateUC,
		listUC:       listUC,
		searchUC:     searchUC,
		logger:       logger,
	}
}

type CreateEmployeeRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Position          string `json:"position" binding:"max=100"`
	PerformanceNumber string `json:"performance_number" binding:"required,max=20"`
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEmployeeCommand{
		Name:              req.Name,
		Position:          req.Position,
		PerformanceNumber: req.PerformanceNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Employee created successfully")
}

// ListEmployees lists employees. q searches active employees; all=true
// includes deactivated ones.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchEmployeesQuery{Term: term})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEmployeesQuery{
		ActiveOnly: c.Query("all") != "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *EmployeeHandler) DeactivateEmployee(c *gin.Context) {
	employeeID, err := utils.ParseUintParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeactivateEmployeeCommand{
		EmployeeID: employeeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
