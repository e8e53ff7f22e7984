package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/shared/constants"
	"github.com/orris-inc/casedesk/internal/shared/errors"
)

// ParseUintParam parses a positive numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "case", "attachment").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("Invalid " + entityName + " ID")
	}
	return uint(id), nil
}

// ParseOptionalIntQuery returns nil when the query parameter is absent.
func ParseOptionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid " + name)
	}
	return &v, nil
}

// GetEmployeeID returns the authenticated employee id set by the auth middleware.
func GetEmployeeID(c *gin.Context) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyEmployeeID)
	if !exists {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("authentication required")
	}
	return id, nil
}
