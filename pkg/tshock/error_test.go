package tshock_test

import (
	"context"
	"io"
	"net/url"
	"testing"

	"github.com/mdouchement/tshock/pkg/tshock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	cause := &url.Error{Op: "Get", URL: "http://localhost:7878/status", Err: context.DeadlineExceeded}
	err := &tshock.TransportError{Endpoint: "status", Err: cause}

	assert.Equal(t, `could not perform request status: Get "http://localhost:7878/status": context deadline exceeded`, err.Error())
	assert.True(t, err.Timeout())
	assert.True(t, tshock.IsTimeout(err))
	assert.True(t, tshock.IsTimeout(errors.Wrap(err, "wrapped")))
	assert.Equal(t, cause, errors.Cause(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = &tshock.TransportError{Endpoint: "status", Err: io.ErrUnexpectedEOF}
	assert.False(t, err.Timeout())
	assert.False(t, tshock.IsTimeout(err))
}

func TestDecodeError(t *testing.T) {
	err := &tshock.DecodeError{Endpoint: "status", StatusCode: 502, Err: io.EOF}

	assert.Equal(t, "could not parse response status (HTTP 502): EOF", err.Error())
	assert.Equal(t, io.EOF, errors.Cause(err))
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, tshock.IsTimeout(err))
}

func TestInvalidServerError(t *testing.T) {
	err := &tshock.InvalidServerError{Field: "host", Reason: "must not be empty"}

	assert.Equal(t, "invalid server host: must not be empty", err.Error())
}
