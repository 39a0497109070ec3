package rest

import (
	"bytes"
	"context"
	"net/http"
	"strings"
)

// Get fetches a single resource by id. A 4xx response maps to
// *NotFoundError carrying the resource and id.
func (c *Client) Get(ctx context.Context, resource, id string) (any, error) {
	resp, err := c.dispatch(ctx, http.MethodGet, itemPath(resource, id), nil, nil)
	if err != nil {
		return nil, err
	}
	if isClientError(resp.StatusCode) {
		return nil, &NotFoundError{Resource: resource, ID: id, Response: resp}
	}
	return c.parser.Parse(resp)
}

// GetAll fetches a resource collection. Params pass through as the query
// string. Collections have no id to miss, so no NotFound mapping applies;
// a 4xx response flows to the parser like any other completed response.
func (c *Client) GetAll(ctx context.Context, resource string, params map[string]any) (any, error) {
	resp, err := c.dispatch(ctx, http.MethodGet, collectionPath(resource), nil, params)
	if err != nil {
		return nil, err
	}
	return c.parser.Parse(resp)
}

// Create posts a new resource. A non-empty response body always wins and
// is parsed directly, even when a Location header is also present. With an
// empty body, a Location header is followed for one GET hop. Neither body
// nor Location yields an explicit no-result: (nil, nil).
func (c *Client) Create(ctx context.Context, resource string, data map[string]any) (any, error) {
	resp, err := c.dispatch(ctx, http.MethodPost, collectionPath(resource), data, nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		return c.parser.Parse(resp)
	}
	if location := resp.Header("Location"); location != "" {
		return c.followLocation(ctx, location)
	}
	return nil, nil
}

// Update replaces (PUT) or partially updates (PATCH, when partial is true)
// a resource by id. A 4xx response maps to *NotFoundError. A Location
// header on the response is followed for one GET hop; otherwise the body
// is parsed.
func (c *Client) Update(ctx context.Context, resource, id string, data map[string]any, partial bool) (any, error) {
	method := http.MethodPut
	if partial {
		method = http.MethodPatch
	}

	resp, err := c.dispatch(ctx, method, itemPath(resource, id), data, nil)
	if err != nil {
		return nil, err
	}
	if isClientError(resp.StatusCode) {
		return nil, &NotFoundError{Resource: resource, ID: id, Response: resp}
	}
	if location := resp.Header("Location"); location != "" {
		return c.followLocation(ctx, location)
	}
	return c.parser.Parse(resp)
}

// Delete removes a resource by id. The result is true iff the server
// answered exactly 204; any other completed non-4xx status returns false
// without error. A 4xx response maps to *NotFoundError.
func (c *Client) Delete(ctx context.Context, resource, id string) (bool, error) {
	resp, err := c.dispatch(ctx, http.MethodDelete, itemPath(resource, id), nil, nil)
	if err != nil {
		return false, err
	}
	if isClientError(resp.StatusCode) {
		return false, &NotFoundError{Resource: resource, ID: id, Response: resp}
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

// collectionPath joins a resource name into a collection path with exactly
// one trailing slash.
func collectionPath(resource string) string {
	return strings.Trim(resource, "/") + "/"
}

// itemPath joins a resource name and id with exactly one separator.
func itemPath(resource, id string) string {
	return strings.Trim(resource, "/") + "/" + strings.Trim(id, "/")
}

// isClientError reports whether the status is in the 4xx range.
func isClientError(status int) bool {
	return status >= 400 && status < 500
}
