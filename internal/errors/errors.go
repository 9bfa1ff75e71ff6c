package errors

import (
	"errors"
	"fmt"
)

// Error codes used across the application
const (
	CodeTimestampParse        = "TIMESTAMP_PARSE"
	CodeNegativeInterval      = "NEGATIVE_INTERVAL"
	CodeSessionAlreadyRunning = "SESSION_ALREADY_RUNNING"
	CodeNoActiveSession       = "NO_ACTIVE_SESSION"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeFileError             = "FILE_ERROR"
	CodeDatabaseError         = "DATABASE_ERROR"
)

// NewParseError creates a new timestamp/entry parse error
func NewParseError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Code:    CodeTimestampParse,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNegativeIntervalError creates an error for an interval whose stop
// timestamp precedes its start timestamp
func NewNegativeIntervalError(start, stop string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("stop timestamp %s precedes start timestamp %s", stop, start),
		Code:    CodeNegativeInterval,
		Context: map[string]interface{}{
			"start": start,
			"stop":  stop,
		},
	}
}

// NewSessionAlreadyRunningError creates an error for starting a session twice
func NewSessionAlreadyRunningError(anchor string) *AppError {
	return &AppError{
		Type:    ErrorTypeSession,
		Message: fmt.Sprintf("a session is already running since %s", anchor),
		Code:    CodeSessionAlreadyRunning,
		Context: map[string]interface{}{
			"anchor": anchor,
		},
	}
}

// NewNoActiveSessionError creates an error for stopping a session that is not running
func NewNoActiveSessionError() *AppError {
	return &AppError{
		Type:    ErrorTypeSession,
		Message: "no session is currently running",
		Code:    CodeNoActiveSession,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    CodeInvalidInput,
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewFileError creates a new file access error
func NewFileError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFile,
		Message: fmt.Sprintf("cannot read file: %s", path),
		Code:    CodeFileError,
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    CodeDatabaseError,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsCode checks if the error carries the specified error code
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeParse:
		return fmt.Sprintf("Could not parse input: %s", appErr.Message)
	case ErrorTypeValidation:
		return fmt.Sprintf("Invalid interval: %s", appErr.Message)
	case ErrorTypeSession:
		return appErr.Message
	case ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeFile:
		return fmt.Sprintf("File problem: %s", appErr.Message)
	case ErrorTypeDatabase:
		return "A storage error occurred. Please try again."
	default:
		return appErr.Message
	}
}

// GetErrorCode returns the error code for structured errors
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}
