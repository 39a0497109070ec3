package rest

import (
	"errors"
	"fmt"

	"github.com/kbukum/restkit/httpclient"
)

// NotFoundError reports that an id-scoped operation received a client-range
// response. It carries the resource coordinates and the response itself.
type NotFoundError struct {
	// Resource is the resource name.
	Resource string
	// ID is the resource id.
	ID string
	// Response is the completed response that triggered the error.
	Response *httpclient.Response
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("rest: %s/%s not found (HTTP %d)", e.Resource, e.ID, e.Response.StatusCode)
	}
	return fmt.Sprintf("rest: %s/%s not found", e.Resource, e.ID)
}

// RequestFailedError reports a server-range response or a connection-level
// failure. It is never produced for 4xx responses.
type RequestFailedError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// Path is the resource-relative path of the failed request.
	Path string
	// StatusCode is the server status (0 for connection-level failures).
	StatusCode int
	// Response is the completed 5xx response, if any.
	Response *httpclient.Response
	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("rest: %s %s failed (HTTP %d)", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("rest: %s %s failed: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// ParseError reports that a response body could not be interpreted.
type ParseError struct {
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("rest: parse response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a resource not-found error.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsRequestFailed checks if an error is a transport or server failure.
func IsRequestFailed(err error) bool {
	var e *RequestFailedError
	return errors.As(err, &e)
}

// IsParseError checks if an error is a response parse failure.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
