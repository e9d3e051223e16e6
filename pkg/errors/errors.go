package errors

import (
	"errors"
	"fmt"
)

// Error kinds for the timetable proxy. Handlers classify wrapped errors
// with errors.Is against these sentinels to pick the HTTP status.

var (
	// ErrUnauthorized indicates the upstream login rejected the credentials
	// after all retries were exhausted
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstreamUnavailable indicates both the primary and the secondary
	// upstream endpoint failed for a read operation
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrTranslation indicates an upstream body that could not be parsed
	// as JSON; the HTTP call itself succeeded
	ErrTranslation = errors.New("translation failed")

	// ErrInvalidInput indicates invalid caller-supplied data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// UnauthorizedError creates an authentication failure with the original cause
func UnauthorizedError(cause error) error {
	return fmt.Errorf("authentication failed: %v: %w", cause, ErrUnauthorized)
}

// UpstreamError creates an upstream-unavailable failure from the
// authoritative (secondary) error
func UpstreamError(operation string, cause error) error {
	return fmt.Errorf("%s: %v: %w", operation, cause, ErrUpstreamUnavailable)
}

// TranslationError creates a data-processing failure for an unparseable body
func TranslationError(operation string, cause error) error {
	return fmt.Errorf("%s: %v: %w", operation, cause, ErrTranslation)
}

// InvalidInputError creates an invalid input error with field context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
