package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/application/cases/usecases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

type CorrespondenceHandler struct {
	addUC     usecases.AddCorrespondenceExecutor
	deleteUC  usecases.DeleteCorrespondenceExecutor
	listUC    usecases.ListCorrespondencesExecutor
	searchUC  usecases.SearchCorrespondencesExecutor
	previewUC usecases.PreviewYearlySequenceExecutor
	logger    logger.Interface
}

func NewCorrespondenceHandler(
	addUC usecases.AddCorrespondenceExecutor,
	deleteUC usecases.DeleteCorrespondenceExecutor,
	listUC usecases.ListCorrespondencesExecutor,
	searchUC usecases.SearchCorrespondencesExecutor,
	previewUC usecases.PreviewYearlySequenceExecutor,
	logger logger.Interface,
) *CorrespondenceHandler {
	return &CorrespondenceHandler{
		addUC:     addUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		searchUC:  searchUC,
		previewUC: previewUC,
		logger:    logger,
	}
}

type AddCorrespondenceRequest struct {
	Sender  string     `json:"sender" validate:"max=200"`
	Content string     `json:"content"`
	SentAt  *time.Time `json:"sent_at"`
}

func (h *CorrespondenceHandler) AddCorrespondence(c *gin.Context) {
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

	var req AddCorrespondenceRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add correspondence", "case_id", caseID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), usecases.AddCorrespondenceCommand{
		CaseID:      caseID,
		Sender:      req.Sender,
		Content:     req.Content,
		SentAt:      req.SentAt,
		CreatedByID: employeeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Correspondence added successfully")
}

func (h *CorrespondenceHandler) ListCorrespondences(c *gin.Context) {
	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCorrespondencesQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CorrespondenceHandler) DeleteCorrespondence(c *gin.Context) {
	correspondenceID, err := utils.ParseUintParam(c, "id", "correspondence")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCorrespondenceCommand{
		CorrespondenceID: correspondenceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SearchCorrespondences matches a fragment of the yearly number, e.g. "2024-".
func (h *CorrespondenceHandler) SearchCorrespondences(c *gin.Context) {
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchCorrespondencesQuery{
		YearlyNumber: c.Query("number"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CorrespondenceHandler) PreviewNextNumber(c *gin.Context) {
	year, err := utils.ParseOptionalIntQuery(c, "year")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.PreviewYearlySequenceQuery{}
	if year != nil {
		query.Year = *year
	}

	result, err := h.previewUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
