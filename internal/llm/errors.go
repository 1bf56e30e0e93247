package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Collaborator errors carry a machine-readable code and the original cause.
// The retryable classes are rate-limit, transient server failure, and
// timeout; everything else fails fast.

// ErrRateLimited indicates a 429 from the provider.
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("collaborator rate_limited (retry after %s): %v", e.RetryAfter, e.Err)
}
func (e *ErrRateLimited) Unwrap() error { return e.Err }
func (e *ErrRateLimited) Code() string  { return "rate_limited" }

// ErrTransient indicates a server-side failure (5xx, connection reset)
// expected to clear on retry.
type ErrTransient struct {
	Err error
}

func (e *ErrTransient) Error() string {
	return fmt.Sprintf("collaborator transient: %v", e.Err)
}
func (e *ErrTransient) Unwrap() error { return e.Err }
func (e *ErrTransient) Code() string  { return "transient" }

// ErrTimeout indicates the request exceeded its deadline.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("collaborator timeout: %v", e.Err)
}
func (e *ErrTimeout) Unwrap() error { return e.Err }
func (e *ErrTimeout) Code() string  { return "timeout" }

// ErrInvalidResponse indicates content that does not conform to the
// requested schema. Not retryable: the model already answered and a
// malformed reply is treated as a fixed property of the request.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("collaborator invalid_response: %v", e.Err)
}
func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
func (e *ErrInvalidResponse) Code() string  { return "invalid_response" }

// ErrRejected indicates the provider refused the request outright
// (auth failure, bad request, content policy). Never retried.
type ErrRejected struct {
	Err error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("collaborator rejected: %v", e.Err)
}
func (e *ErrRejected) Unwrap() error { return e.Err }
func (e *ErrRejected) Code() string  { return "rejected" }

// ErrRetriesExhausted is the terminal error after the retry budget is
// spent, wrapping the last underlying cause.
type ErrRetriesExhausted struct {
	Attempts int
	Err      error
}

func (e *ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("collaborator retries_exhausted after %d attempts: %v", e.Attempts, e.Err)
}
func (e *ErrRetriesExhausted) Unwrap() error { return e.Err }
func (e *ErrRetriesExhausted) Code() string  { return "retries_exhausted" }

// Retryable reports whether the error belongs to the retryable subset.
func Retryable(err error) bool {
	var rl *ErrRateLimited
	var tr *ErrTransient
	var to *ErrTimeout
	return errors.As(err, &rl) || errors.As(err, &tr) || errors.As(err, &to)
}
