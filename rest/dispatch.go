package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// dispatch turns one logical operation into a sent request. It joins the
// endpoint and path, encodes body and query, stamps a request id, threads
// the request through signer then authenticator, and sends it.
//
// Only two failure shapes come back as errors: connection-level transport
// failures and 5xx responses, both as *RequestFailedError. Every other
// completed response — 4xx included — returns normally; interpreting
// status codes is the operation layer's policy.
func (c *Client) dispatch(ctx context.Context, method, path string, payload, query map[string]any) (*httpclient.Response, error) {
	uri := c.endpoint + path
	if len(query) > 0 {
		uri += "?" + encodeQuery(query)
	}

	contentType, body, err := encodeBody(c.bodyType, payload)
	if err != nil {
		return nil, err
	}

	req := httpclient.Request{
		Method: method,
		URL:    uri,
		Headers: map[string]string{
			"Content-Type": contentType,
			"X-Request-Id": uuid.New().String(),
		},
		Body: body,
	}

	// Signer first, authenticator second. The order is a contract, not an
	// artifact of registration order.
	if c.signer != nil {
		req, err = c.signer.Sign(req)
		if err != nil {
			return nil, fmt.Errorf("rest: sign request: %w", err)
		}
	}
	if c.auth != nil {
		req, err = c.auth.Authenticate(req)
		if err != nil {
			return nil, fmt.Errorf("rest: authenticate request: %w", err)
		}
	}

	c.log.WithField(logger.FieldOperation, method+" "+path).Debug("dispatching request")

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, &RequestFailedError{Method: method, Path: path, Err: err}
	}
	if resp.StatusCode >= 500 {
		return nil, &RequestFailedError{Method: method, Path: path, StatusCode: resp.StatusCode, Response: resp}
	}

	return resp, nil
}

// followLocation resolves a Location header by fetching its path component
// through the dispatcher and parsing the result. One hop only: a Location
// on the followed response is not chased.
func (c *Client) followLocation(ctx context.Context, location string) (any, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("rest: parse location %q: %w", location, err)
	}
	path := strings.Trim(u.Path, "/")

	resp, err := c.dispatch(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.parser.Parse(resp)
}
