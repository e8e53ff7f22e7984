package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/application/cases/usecases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

// LookupHandler serves the read-only reference data and the dashboard
// counters.
type LookupHandler struct {
	lookupsUC    usecases.GetLookupsExecutor
	categoriesUC usecases.ListCategoriesExecutor
	categoryUC   usecases.GetCategoryExecutor
	statisticsUC usecases.GetStatisticsExecutor
	logger       logger.Interface
}

func NewLookupHandler(
	lookupsUC usecases.GetLookupsExecutor,
	categoriesUC usecases.ListCategoriesExecutor,
	categoryUC usecases.GetCategoryExecutor,
	statisticsUC usecases.GetStatisticsExecutor,
	logger logger.Interface,
) *LookupHandler {
	return &LookupHandler{
		lookupsUC:    lookupsUC,
		categoriesUC: categoriesUC,
		categoryUC:   categoryUC,
		statisticsUC: statisticsUC,
		logger:       logger,
	}
}

func (h *LookupHandler) GetLookups(c *gin.Context) {
	result, err := h.lookupsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LookupHandler) ListCategories(c *gin.Context) {
	result, err := h.categoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LookupHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categoryUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LookupHandler) GetStatistics(c *gin.Context) {
	result, err := h.statisticsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
