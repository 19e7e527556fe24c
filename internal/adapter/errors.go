package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means the access token was missing or rejected (401/403).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound means the referenced resource does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrUnreachable means no response was received within the request timeout.
	ErrUnreachable = errors.New("service unreachable")
	// ErrMalformedResponse means a 2xx response body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// RemoteError is any other non-2xx response.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

// IsTransient reports whether retrying the same call later may succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// IsTerminal reports whether err requires the user to re-authenticate
// before any further call can succeed.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// StatusOf returns the HTTP status carried by a [*RemoteError], or 0.
func StatusOf(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Status
	}
	return 0
}
