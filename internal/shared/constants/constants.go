package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID         = "user_id"
	ContextKeyRequestID      = "request_id"
	ContextKeyTokenID        = "token_id"
	ContextKeyTokenExpiresAt = "token_expires_at"
	ContextKeyTokenFamily    = "token_family"

	// Database table names
	TableUsers          = "users"
	TableUsageStats     = "usage_stats"
	TableConnections    = "connections"
	TableConnectionLogs = "connection_logs"

	// Connection logs returned when the client does not ask for fewer
	DefaultLogLimit = 50
	MaxLogLimit     = 50

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
