// Package errors provides centralized error definitions for the wayfarer
// client: sentinel errors, a typed PlanError carrying HTTP context from the
// planning service, a ValidationError for configuration problems, and
// classification helpers.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers can import only this
// package for error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors
var (
	// ErrBlankPrompt indicates a submission was attempted with an empty or
	// whitespace-only prompt.
	ErrBlankPrompt = New("prompt is blank")
	// ErrPlanRequestFailed indicates the planning service returned a
	// non-success status.
	ErrPlanRequestFailed = New("plan request failed")
	// ErrServiceUnavailable indicates the planning service could not be
	// reached at all.
	ErrServiceUnavailable = New("planning service unavailable")
	// ErrMalformedResponse indicates the service response body could not be
	// decoded.
	ErrMalformedResponse = New("malformed plan response")
)

// PlanError represents a failed interaction with the planning service.
//
// Example:
//
//	err := errors.NewPlanError("request rejected", errors.ErrPlanRequestFailed).
//		WithStatus(503).WithEndpoint("/plan-trip")
type PlanError struct {
	message  string
	cause    error
	Status   int    // HTTP status, 0 when the request never completed
	Endpoint string // request path
}

// NewPlanError creates a new PlanError.
func NewPlanError(message string, cause error) *PlanError {
	return &PlanError{message: message, cause: cause}
}

// WithStatus records the HTTP status code of the failed response.
func (e *PlanError) WithStatus(status int) *PlanError {
	e.Status = status
	return e
}

// WithEndpoint records the request path.
func (e *PlanError) WithEndpoint(endpoint string) *PlanError {
	e.Endpoint = endpoint
	return e
}

// Error returns the formatted error message.
func (e *PlanError) Error() string {
	var parts []string
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}
	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}

	prefix := "plan error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("plan error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error { return e.cause }

// Is checks if this error matches the target.
func (e *PlanError) Is(target error) bool {
	if _, ok := target.(*PlanError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// ValidationError represents invalid configuration or input.
type ValidationError struct {
	message string
	Field   string
	Value   any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the offending value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// IsRetryable reports whether the error represents a transient condition
// worth re-submitting. Connection-level failures are; rejected requests and
// malformed responses are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrServiceUnavailable)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
