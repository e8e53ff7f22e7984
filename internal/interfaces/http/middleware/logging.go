package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/shared/constants"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// Logger writes one line per request. Client errors are warnings so that a
// burst of rejected desk submissions shows up without debug logging.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"uri", c.Request.URL.RequestURI(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if employeeID, ok := c.Get(constants.ContextKeyEmployeeID); ok {
			args = append(args, "employee_id", employeeID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		reqLog := logger.FromContext(c.Request.Context(), log)
		switch {
		case status >= 500:
			reqLog.Errorw("request failed", args...)
		case status >= 400:
			reqLog.Warnw("request rejected", args...)
		default:
			reqLog.Debugw("request served", args...)
		}
	}
}
