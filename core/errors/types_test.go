package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &NotFoundError{Resource: "article", ID: "123"}, "article not found: 123"},
		{"validation", &ValidationError{Field: "spread", Message: "out of range"}, "validation error on field 'spread': out of range"},
		{"external", &ExternalAPIError{StatusCode: 503, Message: "service unavailable", API: "example.com"}, "external API error from example.com: 503 - service unavailable"},
		{"disabled", &DisabledError{Feature: "import_enabled"}, "feature disabled: import_enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	plain := errors.New("some other error")
	notFound := fmt.Errorf("load: %w", &NotFoundError{Resource: "article", ID: "x"})
	validation := fmt.Errorf("save: %w", &ValidationError{Field: "title"})
	external := fmt.Errorf("fetch: %w", &ExternalAPIError{StatusCode: 502})
	disabled := fmt.Errorf("import: %w", &DisabledError{Feature: "import_enabled"})

	if !IsNotFound(notFound) || IsNotFound(plain) {
		t.Error("IsNotFound should match only wrapped NotFoundError")
	}
	if !IsValidation(validation) || IsValidation(plain) {
		t.Error("IsValidation should match only wrapped ValidationError")
	}
	if !IsExternalAPI(external) || IsExternalAPI(plain) {
		t.Error("IsExternalAPI should match only wrapped ExternalAPIError")
	}
	if !IsDisabled(disabled) || IsDisabled(plain) {
		t.Error("IsDisabled should match only wrapped DisabledError")
	}
}

func TestAsExternalAPI(t *testing.T) {
	apiErr, ok := AsExternalAPI(fmt.Errorf("wrapped: %w", &ExternalAPIError{StatusCode: 429}))
	if !ok {
		t.Fatal("AsExternalAPI should unwrap ExternalAPIError")
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}

	if _, ok := AsExternalAPI(errors.New("nope")); ok {
		t.Error("AsExternalAPI should not match a plain error")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	wrapped := WrapError(&NotFoundError{Resource: "article", ID: "abc"}, "failed to open book")

	expected := "failed to open book: article not found: abc"
	if wrapped.Error() != expected {
		t.Errorf("WrapError message = %v, want %v", wrapped.Error(), expected)
	}
	if !IsNotFound(wrapped) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
