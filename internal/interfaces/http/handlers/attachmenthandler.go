package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/application/cases/usecases"
	"github.com/orris-inc/casedesk/internal/shared/logger"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

type AttachmentHandler struct {
	addUC    usecases.AddAttachmentExecutor
	deleteUC usecases.DeleteAttachmentExecutor
	listUC   usecases.ListAttachmentsExecutor
	logger   logger.Interface
}

func NewAttachmentHandler(
	addUC usecases.AddAttachmentExecutor,
	deleteUC usecases.DeleteAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		addUC:    addUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// AddAttachmentRequest registers metadata of a file stored elsewhere.
type AddAttachmentRequest struct {
	FileName    string `json:"file_name" validate:"max=255"`
	FilePath    string `json:"file_path" validate:"max=500"`
	FileType    string `json:"file_type" validate:"max=50"`
	Description string `json:"description" validate:"max=500"`
	FileSize    *int64 `json:"file_size"`
}

func (h *AttachmentHandler) AddAttachment(c *gin.Context) {
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

	var req AddAttachmentRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add attachment", "case_id", caseID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		CaseID:       caseID,
		FileName:     req.FileName,
		FilePath:     req.FilePath,
		FileType:     req.FileType,
		Description:  req.Description,
		FileSize:     req.FileSize,
		UploadedByID: employeeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	caseID, err := utils.ParseUintParam(c, "id", "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		AttachmentID: attachmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
