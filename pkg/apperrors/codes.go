package apperrors

// ErrorCode - machine readable error code sent next to the message
type ErrorCode string

const (
	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Request validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeMissingFields    ErrorCode = "MISSING_FIELDS"

	// Business rules
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeDuplicatePlate ErrorCode = "DUPLICATE_PLATE"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
