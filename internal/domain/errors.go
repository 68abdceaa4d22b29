package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planning domain.
var (
	// ErrInvalidRequest indicates the trip request or day range failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotJSON indicates a completion response contained no extractable JSON object.
	ErrNotJSON = errors.New("response contains no JSON object")

	// ErrNoActivities indicates a parsed completion response had no usable activities array.
	ErrNoActivities = errors.New("response missing activities")

	// ErrComponentNotFound indicates a trip component lookup or delete missed.
	ErrComponentNotFound = errors.New("trip component not found")

	// ErrCompletionUnavailable indicates the completion service could not be reached.
	ErrCompletionUnavailable = errors.New("completion service unavailable")
)

// CompletionError wraps an error from the completion boundary with the
// operation that produced it and whether a retry could plausibly succeed.
type CompletionError struct {
	// Op names the call that failed (e.g., "flight_search", "day_plan")
	Op string

	// Err is the underlying error
	Err error

	// Retryable indicates whether retrying might succeed
	Retryable bool
}

// Error implements the error interface.
func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError creates a non-retryable completion error.
func NewCompletionError(op string, err error) *CompletionError {
	return &CompletionError{Op: op, Err: err}
}

// NewRetryableCompletionError creates a retryable completion error.
func NewRetryableCompletionError(op string, err error) *CompletionError {
	return &CompletionError{Op: op, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a completion error marked retryable.
func IsRetryable(err error) bool {
	var ce *CompletionError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	return false
}
