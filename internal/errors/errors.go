package errors

import (
	"errors"
	"fmt"
)

// NewConfigError creates an error for a missing or unusable credential
func NewConfigError(key string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("credential %s: %s", key, reason),
		Code:    "CONFIG_MISSING",
		Context: map[string]interface{}{
			"key": key,
		},
	}
}

// NewFetchError creates an error for a failed GET against the service.
// resource names what was being fetched (projects, tasks, clients, entries).
func NewFetchError(resource string, status int, cause error) *AppError {
	msg := fmt.Sprintf("fetching %s failed", resource)
	if status != 0 {
		msg = fmt.Sprintf("fetching %s failed with HTTP %d", resource, status)
	}
	return &AppError{
		Type:    ErrorTypeFetch,
		Message: msg,
		Code:    "SERVICE_FETCH_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"resource": resource,
			"status":   status,
		},
	}
}

// NewWriteError creates an error for a failed POST against the service.
// row is the zero-based index of the offending batch row, or -1 for a
// single-entry submission.
func NewWriteError(row int, status int, cause error) *AppError {
	msg := "submitting entry failed"
	if row >= 0 {
		msg = fmt.Sprintf("submitting entry at row %d failed", row)
	}
	if status != 0 {
		msg = fmt.Sprintf("%s with HTTP %d", msg, status)
	}
	return &AppError{
		Type:    ErrorTypeWrite,
		Message: msg,
		Code:    "SERVICE_WRITE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"row":    row,
			"status": status,
		},
	}
}

// NewResponseShapeError creates an error for a service response missing an
// expected field
func NewResponseShapeError(field string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypeResponseShape,
		Message: fmt.Sprintf("response for %s is missing field %s", resource, field),
		Code:    "RESPONSE_SHAPE",
		Context: map[string]interface{}{
			"field":    field,
			"resource": resource,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewIOError creates an error for a failed local file operation
func NewIOError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("file operation failed: %s", operation),
		Code:    "IO_ERROR",
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

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeConfig, ErrorTypeInvalidInput, ErrorTypeResponseShape:
			return appErr.Message
		case ErrorTypeFetch, ErrorTypeWrite:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeIO:
			return appErr.Message
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
