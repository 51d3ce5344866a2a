// ABOUTME: Error types and handling for the Fact-Chex library
// ABOUTME: Provides structured errors with context for library operations

package factchex

import (
	"errors"
	"fmt"

	coreerrors "fact-chex/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a checker was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeUnavailable indicates the fact-check service could not be used
	ErrorTypeUnavailable ErrorType = "unavailable"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Common errors
var (
	// ErrBlankClaim is returned when a claim has no non-whitespace characters
	ErrBlankClaim = NewError(ErrorTypeValidation, "claim is blank")

	// ErrClientClosed is returned when operations are attempted on a closed client
	ErrClientClosed = NewError(ErrorTypeConfiguration, "client is closed")
)

// fromCore converts core errors into library errors
func fromCore(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case coreerrors.IsNotFound(err):
		return NewError(ErrorTypeNotFound, "checker not found").WithCause(err)
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid input").WithCause(err)
	case coreerrors.IsServiceUnavailable(err):
		e := NewError(ErrorTypeUnavailable, "fact-check service unavailable").WithCause(err)
		var su *coreerrors.ServiceUnavailableError
		if errors.As(err, &su) && su.StatusCode != 0 {
			e.WithContext("status", su.StatusCode)
		}
		return e
	default:
		return err
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsUnavailableError checks if the fact-check service could not be used
func IsUnavailableError(err error) bool {
	return hasType(err, ErrorTypeUnavailable)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}
