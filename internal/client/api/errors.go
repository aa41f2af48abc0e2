package api

import (
	"errors"
	"fmt"

	"github.com/blognest/blognest-cli/internal/common"
)

// ErrUnavailable reports a connection-level failure: the request never
// produced an HTTP response. Distinct from a *ServerError, which carries
// an HTTP error response.
var ErrUnavailable = errors.New("backend unavailable")

// UnavailableMessage is the user-facing text shown for ErrUnavailable.
const UnavailableMessage = "Backend not running (connection refused). Start the server."

// ServerError is an HTTP error response with the server-provided message
// body. A 401 unwraps to common.ErrUnauthorized so callers can match it
// with errors.Is.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

func (e *ServerError) Unwrap() error {
	if e.Status == 401 {
		return common.ErrUnauthorized
	}
	if e.Status == 404 {
		return common.ErrNotFound
	}
	return nil
}

// UserMessage maps a gateway error to the text surfaced to the user:
// the distinct backend-unreachable message, the server-provided message
// when present, or the given fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUnavailable) {
		return UnavailableMessage
	}
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
