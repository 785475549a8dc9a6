package articleforge

import (
	"errors"
	"fmt"
)

// ErrorKind classifies run-fatal failures by how they should be surfaced to
// the user. Parse failures and per-image failures are never errors: the
// former fall back to the markdown interpretation, the latter are reported as
// warning events and skipped.
type ErrorKind string

const (
	// ErrorConfig indicates missing or placeholder configuration. Nothing
	// was sent over the network.
	ErrorConfig ErrorKind = "config"

	// ErrorTimeout indicates the article generation call exceeded its
	// deadline.
	ErrorTimeout ErrorKind = "timeout"

	// ErrorAuth indicates the API rejected the key (HTTP 401/403).
	ErrorAuth ErrorKind = "auth"

	// ErrorEndpoint indicates the model endpoint was not found (HTTP 404),
	// usually a wrong or missing endpoint ID.
	ErrorEndpoint ErrorKind = "endpoint"

	// ErrorTransport covers other network and API failures.
	ErrorTransport ErrorKind = "transport"
)

// Error is a classified run failure with an optional remediation hint.
type Error struct {
	Msg   string
	Kind  ErrorKind
	Code  int    // HTTP status code, 0 if not applicable
	Hint  string // remediation hint shown to the user, may be empty
	Cause error  // underlying error
}

// Error returns the error message, including the hint when present.
func (e *Error) Error() string {
	msg := e.Msg
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	if e.Hint != "" {
		return msg + " (" + e.Hint + ")"
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewConfigError creates an error for missing or invalid configuration.
func NewConfigError(msg string, cause error) *Error {
	return &Error{Msg: msg, Kind: ErrorConfig, Cause: cause}
}

// NewTimeoutError creates an error for an article generation deadline.
func NewTimeoutError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Kind:  ErrorTimeout,
		Hint:  "the model may be generating a long article; reduce the word count or retry",
		Cause: cause,
	}
}

// NewAuthError creates an error for a rejected API key.
func NewAuthError(msg string, code int, cause error) *Error {
	return &Error{
		Msg:   msg,
		Kind:  ErrorAuth,
		Code:  code,
		Hint:  "check that the API key is valid",
		Cause: cause,
	}
}

// NewEndpointError creates an error for an unknown model endpoint.
func NewEndpointError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Kind:  ErrorEndpoint,
		Code:  404,
		Hint:  "check that the model is a valid ep- endpoint ID",
		Cause: cause,
	}
}

// NewTransportError creates an error for other network or API failures.
func NewTransportError(msg string, code int, cause error) *Error {
	return &Error{Msg: msg, Kind: ErrorTransport, Code: code, Cause: cause}
}

// KindOf returns the kind of a classified error, or "" for other errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusCodeOf returns the HTTP status code of a classified error, or 0.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// IsFatalConfig returns true if the error means the run never left the
// process, so retrying without changing configuration is pointless.
func IsFatalConfig(err error) bool {
	return KindOf(err) == ErrorConfig
}
