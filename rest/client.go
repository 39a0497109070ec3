package rest

import (
	"fmt"
	"strings"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// Client performs CRUD operations against one REST endpoint.
//
// The endpoint and parser are fixed at construction. Body type, signer and
// authenticator are client-wide configuration shared by all operations;
// mutating them concurrently with in-flight operations is racy and
// unsupported — configure first, then dispatch.
type Client struct {
	endpoint  string
	transport httpclient.Transport
	parser    ResponseParser
	signer    RequestSigner
	auth      Authenticator
	bodyType  BodyType
	log       *logger.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithTransport replaces the default HTTP transport.
func WithTransport(t httpclient.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger attaches a logger for per-operation debug output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithComponent("rest") }
}

// WithBodyType sets the initial body encoding.
func WithBodyType(t BodyType) Option {
	return func(c *Client) { c.bodyType = t }
}

// WithRequestSigner sets the initial request signer.
func WithRequestSigner(s RequestSigner) Option {
	return func(c *Client) { c.signer = s }
}

// WithAuthenticator sets the initial authenticator.
func WithAuthenticator(a Authenticator) Option {
	return func(c *Client) { c.auth = a }
}

// New creates a client for the given base endpoint. The endpoint is
// normalized to exactly one trailing slash. A parser is mandatory; without
// one no operation could produce a result, so this is enforced here rather
// than per call.
func New(endpoint string, parser ResponseParser, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("rest: endpoint is required")
	}
	if parser == nil {
		return nil, fmt.Errorf("rest: response parser is required")
	}

	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/") + "/",
		parser:   parser,
		bodyType: BodyTypeForm,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		adapter, err := httpclient.New(httpclient.Config{})
		if err != nil {
			return nil, err
		}
		c.transport = adapter
	}

	return c, nil
}

// FromConfig builds a client and its transport from configuration.
func FromConfig(cfg Config, parser ResponseParser, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bodyType, err := ParseBodyType(cfg.BodyType)
	if err != nil {
		return nil, err
	}

	adapter, err := httpclient.New(httpclient.Config{
		Timeout: cfg.Timeout,
		TLS:     cfg.TLS,
		H2C:     cfg.H2C,
		Headers: cfg.Headers,
	})
	if err != nil {
		return nil, err
	}

	base := []Option{WithTransport(adapter), WithBodyType(bodyType)}
	return New(cfg.Endpoint, parser, append(base, opts...)...)
}

// Endpoint returns the normalized base endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// UseRequestSigner registers the request signer. There is at most one;
// registering again replaces the previous signer. Signing always runs
// before authentication.
func (c *Client) UseRequestSigner(s RequestSigner) {
	c.signer = s
}

// UseAuthenticator registers the authenticator. There is at most one;
// registering again replaces the previous authenticator.
func (c *Client) UseAuthenticator(a Authenticator) {
	c.auth = a
}

// SetBodyType switches the payload encoding for subsequent requests.
// Requests already built are unaffected.
func (c *Client) SetBodyType(t BodyType) {
	c.bodyType = t
}
