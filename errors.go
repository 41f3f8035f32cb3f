package discourses

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks client-side validation failures. Errors wrapping it
// are raised before any request is sent, unlike server-side rejections,
// which surface as an *Error with ErrorKindValidation.
var ErrInvalidInput = errors.New("invalid input")

// ErrorKind discriminates API error categories.
type ErrorKind string

const (
	// ErrorKindAuth indicates a bad, expired, or missing API key (401).
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindRateLimit indicates the account's rate limit was exceeded (429).
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindValidation indicates the server rejected the request payload (400/422).
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindAPI covers every other failure: unexpected statuses,
	// transport errors, and timeouts.
	ErrorKindAPI ErrorKind = "api"
)

// Error is returned when a request cannot complete or the API responds with
// a non-200 status.
//
// Response holds the decoded error body when the server sent one. It must
// never include API keys.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Response   map[string]any

	// RetryAfter is set on rate-limit errors when the server supplied a
	// usable X-RateLimit-Reset header. Zero means no delay was provided.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e == nil {
		return "discourses error"
	}
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	var s string
	if e.StatusCode > 0 {
		s = fmt.Sprintf("discourses: %s: status %d: %s", e.Kind, e.StatusCode, msg)
	} else {
		s = fmt.Sprintf("discourses: %s: %s", e.Kind, msg)
	}
	if e.RetryAfter > 0 {
		s += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return s
}
