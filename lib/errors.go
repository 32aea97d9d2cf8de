// ABOUTME: Error types and handling for the Pamphlets library
// ABOUTME: Wraps core service errors in a single typed error for library callers

package pamphlets

import (
	"errors"
	"fmt"

	coreerrors "pamphlets-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates an upstream fetch failed
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeDisabled indicates a feature switched off by a flag
	ErrorTypeDisabled ErrorType = "disabled"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

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

var (
	// ErrClientClosed is returned when operations are attempted on a closed client
	ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

	// ErrNoStorage is returned when article operations are attempted without storage
	ErrNoStorage = NewError(ErrorTypeConfiguration, "no article storage configured")
)

// wrapError classifies an error from the core services. It returns nil for a nil err.
func wrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return classify(err, message)
}

// classify wraps a non-nil core error in an Error of the matching type.
func classify(err error, message string) *Error {
	errType := ErrorTypeInternal
	switch {
	case coreerrors.IsValidation(err):
		errType = ErrorTypeValidation
	case coreerrors.IsNotFound(err):
		errType = ErrorTypeNotFound
	case coreerrors.IsExternalAPI(err):
		errType = ErrorTypeNetwork
	case coreerrors.IsDisabled(err):
		errType = ErrorTypeDisabled
	}
	return NewError(errType, message).WithCause(err)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool { return isType(err, ErrorTypeNetwork) }

// IsDisabledError checks if an error comes from a disabled feature
func IsDisabledError(err error) bool { return isType(err, ErrorTypeDisabled) }
