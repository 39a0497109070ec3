package rest

import (
	"bytes"
	"encoding/json"

	"github.com/kbukum/restkit/httpclient"
)

// ResponseParser turns a raw response into a domain value. Implementations
// must return a *ParseError when the body does not match the expected
// shape, never a silent zero value.
type ResponseParser interface {
	Parse(resp *httpclient.Response) (any, error)
}

// ParserFunc adapts a function to the ResponseParser interface.
type ParserFunc func(resp *httpclient.Response) (any, error)

// Parse implements ResponseParser.
func (f ParserFunc) Parse(resp *httpclient.Response) (any, error) {
	return f(resp)
}

// JSONParser decodes JSON bodies into generic values (maps, slices,
// primitives). An empty body parses to a nil result.
type JSONParser struct{}

// Parse implements ResponseParser.
func (JSONParser) Parse(resp *httpclient.Response) (any, error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &ParseError{Err: err}
	}
	return out, nil
}

// TypedParser returns a parser that decodes JSON bodies into *T.
// An empty body parses to a nil result.
func TypedParser[T any]() ResponseParser {
	return ParserFunc(func(resp *httpclient.Response) (any, error) {
		if len(bytes.TrimSpace(resp.Body)) == 0 {
			return nil, nil
		}
		out := new(T)
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return nil, &ParseError{Err: err}
		}
		return out, nil
	})
}
