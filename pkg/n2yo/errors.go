package n2yo

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an upstream access failure. The set is closed so callers
// can handle every case exhaustively.
type Kind string

const (
	// KindConfiguration means the client could not be constructed (missing API key).
	KindConfiguration Kind = "configuration"
	// KindRateLimited means upstream kept returning 429 after the retry budget.
	KindRateLimited Kind = "rate_limited"
	// KindInvalidCredential means upstream rejected the API key.
	KindInvalidCredential Kind = "invalid_credential"
	// KindUpstream means upstream returned an unexpected non-success response.
	KindUpstream Kind = "upstream_error"
	// KindNetwork means no response was received at all.
	KindNetwork Kind = "network_error"
)

// Error is a structured upstream access error with classification.
type Error struct {
	Kind       Kind   // Classification of the error
	Message    string // Human-readable message
	StatusCode int    // HTTP status code if a response was received
	Body       string // Response body for diagnostics, if any
	Cause      error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	parts = append(parts, string(e.Kind))

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable implements the retry.RetryableError interface. Only rate
// limiting is transient; every other kind fails the call immediately.
func (e *Error) IsRetryable() bool {
	return e.Kind == KindRateLimited
}

// newError creates a structured error without response context.
func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the classification of err, or the empty Kind when err is
// not a *Error (or nil).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
