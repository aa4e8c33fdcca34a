package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeySessionID   = "session_id"
	ContextKeyPermissions = "permissions"
	ContextKeyRequestID   = "request_id"

	// Session
	SessionCookieName = "policyhub_session"
	SessionTTLMinutes = 60

	// Database table names
	TableUsers            = "users"
	TableRoles            = "roles"
	TableUserRoles        = "user_roles"
	TableSessions         = "sessions"
	TableDocuments        = "documents"
	TableDocumentVersions = "document_versions"
	TableDocumentTags     = "document_tags"
	TableCategories       = "categories"
	TableTags             = "tags"
	TableBusinessUnits    = "business_units"
	TableAuditLogs        = "audit_logs"
	TableBookmarks        = "bookmarks"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
