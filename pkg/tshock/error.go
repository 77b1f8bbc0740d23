package tshock

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

type (
	// An InvalidServerError is returned by NewServer when a connection parameter is unusable.
	InvalidServerError struct {
		Field  string
		Reason string
	}

	// A TransportError represents a failure to exchange a request with the TShock server
	// (DNS resolution, connection refused or reset, timeout...).
	TransportError struct {
		Endpoint string
		Err      error
	}

	// A DecodeError is returned when the server answered with a body that is not a JSON object.
	DecodeError struct {
		Endpoint   string
		StatusCode int
		Err        error
	}
)

func (e *InvalidServerError) Error() string {
	return fmt.Sprintf("invalid server %s: %s", e.Field, e.Reason)
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not perform request %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error (github.com/pkg/errors compatibility).
func (e *TransportError) Cause() error {
	return e.Err
}

// Timeout reports whether the request failed because the deadline was exceeded.
func (e *TransportError) Timeout() bool {
	var nerr net.Error
	if errors.As(e.Err, &nerr) {
		return nerr.Timeout()
	}
	return false
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not parse response %s (HTTP %d): %v", e.Endpoint, e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error (github.com/pkg/errors compatibility).
func (e *DecodeError) Cause() error {
	return e.Err
}

// IsTimeout returns true if err is a TransportError caused by a timeout.
func IsTimeout(err error) bool {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Timeout()
	}
	return false
}
