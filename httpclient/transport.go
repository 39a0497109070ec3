package httpclient

import (
	"context"
	"net/textproto"
)

// Transport sends a fully-built request and returns the buffered response.
// Implementations must respect the context and must return a response for
// every completed HTTP exchange regardless of status code.
type Transport interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// Request describes an outbound HTTP request. It is a value type: helpers
// that modify a request return a derived copy and leave the original
// untouched, so requests can be threaded through a pipeline safely.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is the absolute target URL, query string included.
	URL string
	// Headers are the request headers.
	Headers map[string]string
	// Body is the encoded request body (may be empty).
	Body []byte
}

// Clone returns a copy of the request with its own header map.
func (r Request) Clone() Request {
	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	r.Headers = headers
	return r
}

// WithHeader returns a copy of the request with the header set.
func (r Request) WithHeader(key, value string) Request {
	out := r.Clone()
	out.Headers[key] = value
	return out
}

// Header returns the named request header, matching case-insensitively.
func (r Request) Header(name string) string {
	canonical := textproto.CanonicalMIMEHeaderKey(name)
	for k, v := range r.Headers {
		if textproto.CanonicalMIMEHeaderKey(k) == canonical {
			return v
		}
	}
	return ""
}

// Response is the buffered result of an HTTP request. It is read-only once
// received.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values under
	// their canonical names.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Header returns the named response header, matching case-insensitively.
func (r *Response) Header(name string) string {
	return r.Headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
