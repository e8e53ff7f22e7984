package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/shared/constants"
	"github.com/orris-inc/casedesk/internal/shared/errors"
)

// APIResponse is the envelope of every JSON response. RequestID lets a desk
// operator quote a failed call when reporting it.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func respond(c *gin.Context, statusCode int, body APIResponse) {
	body.RequestID = c.GetString(constants.ContextKeyRequestID)
	c.JSON(statusCode, body)
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	respond(c, statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse sends 201 with the created resource.
func CreatedResponse(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

// ErrorResponse sends a generic error outside the AppError taxonomy, e.g.
// from middleware.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	respond(c, statusCode, APIResponse{
		Error: &ErrorInfo{Type: "error", Message: message},
	})
}

// ErrorResponseWithError maps err onto its status code. Errors that are not
// AppErrors become an opaque 500 so driver messages never reach clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		respond(c, http.StatusInternalServerError, APIResponse{
			Error: &ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: "Internal server error occurred",
			},
		})
		return
	}

	respond(c, appErr.Code, APIResponse{
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
