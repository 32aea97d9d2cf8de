// ABOUTME: Typed errors returned by the book, article and import services
// ABOUTME: Handlers map them onto HTTP problem responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing resource, such as an unknown article ID.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError reports bad input on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError reports a failed upstream fetch during import.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// DisabledError reports a feature switched off by a feature flag.
type DisabledError struct {
	Feature string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("feature disabled: %s", e.Feature)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsExternalAPI reports whether err wraps an ExternalAPIError.
func IsExternalAPI(err error) bool {
	var target *ExternalAPIError
	return errors.As(err, &target)
}

// AsExternalAPI returns the wrapped ExternalAPIError, if any.
func AsExternalAPI(err error) (*ExternalAPIError, bool) {
	var target *ExternalAPIError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsDisabled reports whether err wraps a DisabledError.
func IsDisabled(err error) bool {
	var target *DisabledError
	return errors.As(err, &target)
}

// WrapError adds context to err. It returns nil for a nil err.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
