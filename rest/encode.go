package rest

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// BodyType selects how request payloads are serialized.
type BodyType int

const (
	// BodyTypeForm encodes payloads as application/x-www-form-urlencoded.
	// This is the default.
	BodyTypeForm BodyType = iota
	// BodyTypeJSON encodes payloads as application/json.
	BodyTypeJSON
)

// String returns the body type name.
func (t BodyType) String() string {
	switch t {
	case BodyTypeJSON:
		return "json"
	case BodyTypeForm:
		return "form"
	default:
		return "unknown"
	}
}

// ParseBodyType converts a config string into a BodyType.
func ParseBodyType(s string) (BodyType, error) {
	switch s {
	case "", "form":
		return BodyTypeForm, nil
	case "json":
		return BodyTypeJSON, nil
	default:
		return BodyTypeForm, fmt.Errorf("rest: unknown body type %q", s)
	}
}

// contentType returns the content-type header value for the body type.
func (t BodyType) contentType() string {
	if t == BodyTypeJSON {
		return "application/json"
	}
	return "application/x-www-form-urlencoded"
}

// encodeBody serializes a payload map per the body type. The encoder always
// runs: an empty payload yields "{}" in JSON mode and an empty string in
// form mode.
func encodeBody(t BodyType, payload map[string]any) (contentType string, body []byte, err error) {
	switch t {
	case BodyTypeJSON:
		if payload == nil {
			payload = map[string]any{}
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return "", nil, fmt.Errorf("rest: encode json body: %w", err)
		}
		return t.contentType(), data, nil
	default:
		return t.contentType(), []byte(encodeQuery(payload)), nil
	}
}

// encodeQuery percent-encodes a map into key=value pairs joined by "&".
// Shared by form bodies and query strings; keys come out sorted.
func encodeQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}
