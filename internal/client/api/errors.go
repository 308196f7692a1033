package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request got no response at all (transport
	// failure or timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired means a 401 was answered with a refresh attempt and
	// the attempt (or the retried call) failed. Tokens are cleared before
	// this error is returned.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrNoRefreshToken means a token refresh was requested with no refresh
	// token held.
	ErrNoRefreshToken = errors.New("no refresh token available")
)

// RequestError is returned for non-2xx responses that are not handled by the
// refresh path. Message is taken from the server's JSON error body when one
// is present.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(status int, message string) *RequestError {
	if message == "" {
		message = fmt.Sprintf("HTTP error: status %d", status)
	}
	return &RequestError{Status: status, Message: message}
}
