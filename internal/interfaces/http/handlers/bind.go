package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/shared/errors"
	"github.com/orris-inc/casedesk/internal/shared/utils"
)

// bindJSON decodes the request body, checks field limits and reports
// malformed input as a validation error.
func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return utils.ValidateStruct(target)
}
