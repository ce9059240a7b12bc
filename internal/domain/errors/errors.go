package errors

import (
	"opencircle/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // Human-readable error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human-readable error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Constraint violations raised by the store
	ErrUniqueConstraintViolation = NewBaseError(
		"UNIQUE_CONSTRAINT_VIOLATION",
		"a row with the same unique key already exists",
		"",
	)

	ErrForeignKeyViolation = NewBaseError(
		"FOREIGN_KEY_VIOLATION",
		"referenced row is missing or still referenced",
		"",
	)

	ErrNotNullViolation = NewBaseError(
		"NOT_NULL_VIOLATION",
		"a required column is missing",
		"",
	)

	ErrCheckConstraintViolation = NewBaseError(
		"CHECK_CONSTRAINT_VIOLATION",
		"value is outside the allowed set",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrRoleNotFound = NewBaseError(
		"ROLE_NOT_FOUND",
		"role not found",
		"",
	)

	// Collaborator-side checks
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidReference = NewBaseError(
		"INVALID_REFERENCE",
		"referenced content does not exist",
		"",
	)

	ErrForbidden = NewBaseError(
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrAlreadyShared = NewBaseError(
		"ALREADY_SHARED",
		"content already shared by this account",
		"",
	)

	// Session errors
	ErrSessionExpired = NewBaseError(
		"SESSION_EXPIRED",
		"session has expired",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		"SESSION_NOT_FOUND",
		"session not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		"PASSWORD_HASH_FAILED",
		"password hashing failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the human-readable error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
