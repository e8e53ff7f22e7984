package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyEmployeeID = "employee_id"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableEmployees        = "employees"
	TableIssueCategories  = "issue_categories"
	TableCases            = "cases"
	TableCorrespondences  = "correspondences"
	TableAttachments      = "attachments"
	TableAuditLogs        = "audit_logs"
	TableSequenceCounters = "sequence_counters"

	// DefaultSequenceRetryAttempts bounds retries after a sequence conflict.
	DefaultSequenceRetryAttempts = 3
)
