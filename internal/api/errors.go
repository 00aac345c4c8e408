// Package api provides the typed HTTP client for the ElevateAI backend.
package api

import (
	"errors"
	"fmt"
)

// Error code values the backend attaches to failed requests. Codes are part
// of the client-observable contract; only QuotaExceeded changes control flow.
const (
	CodeQuotaExceeded = "QuotaExceeded"
	CodeUnknown       = "Unknown"
)

// ErrUnauthorized indicates a 401 from any authenticated endpoint. The shared
// contract applies: the session token has been cleared by the time this error
// is returned, and the user must re-authenticate.
var ErrUnauthorized = errors.New("your session has expired, please sign in again")

// Error represents a non-2xx backend response with a human-readable message
// and, where the backend supplies one, a machine-readable code.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" && e.Code != CodeUnknown {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// IsQuotaExceeded reports whether err carries the backend's quota-exhaustion
// code. Callers route this to the upgrade prompt instead of a generic error.
func IsQuotaExceeded(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == CodeQuotaExceeded
}

// IsUnauthorized reports whether err is the shared session-expired error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// newError builds an Error from a parsed backend failure body, falling back
// to defaultMessage when the body carried no usable message.
func newError(status int, code, message, defaultMessage string) *Error {
	if message == "" {
		message = defaultMessage
	}
	if code == "" {
		code = CodeUnknown
	}
	return &Error{Status: status, Code: code, Message: message}
}

// errorBody is the wire shape of backend failures: "error" carries the
// machine-readable code, "message" the human-readable text.
type errorBody struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}
