// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for checker lookups, input validation and the fact-check service

package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is the cause when a service answers 2xx with no result fields
var ErrEmptyResult = errors.New("empty result")

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ServiceUnavailableError is the single failure kind of the fact-check call.
// It covers refused connections, timeouts, non-2xx responses and bodies
// that cannot be decoded alike. StatusCode is 0 when no response arrived.
type ServiceUnavailableError struct {
	Service    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *ServiceUnavailableError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("%s unavailable: status %d: %v", e.Service, e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s unavailable: status %d", e.Service, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
	default:
		return fmt.Sprintf("%s unavailable", e.Service)
	}
}

// Unwrap returns the underlying cause
func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsServiceUnavailable checks if an error is a ServiceUnavailableError
func IsServiceUnavailable(err error) bool {
	var unavailableErr *ServiceUnavailableError
	return errors.As(err, &unavailableErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
