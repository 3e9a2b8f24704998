package cli

import (
	"fmt"

	"pytick/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages naming the failing operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsInvalidInputError checks if an error is an invalid input error
func (eh *ErrorHandler) IsInvalidInputError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsFetchError checks if an error is a service fetch error
func (eh *ErrorHandler) IsFetchError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeFetch)
}

// IsWriteError checks if an error is a service write error
func (eh *ErrorHandler) IsWriteError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeWrite)
}
