package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"

	"github.com/kbukum/restkit/logger"
)

const instrumentationName = "github.com/kbukum/restkit/httpclient"

// Adapter is the default Transport implementation over net/http.
type Adapter struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracer     trace.Tracer
	metrics    *requestMetrics
}

var _ Transport = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger attaches a logger for per-request debug output.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		a.log = l.WithComponent("httpclient")
	}
}

// WithHTTPClient replaces the underlying *http.Client. Timeout and TLS
// settings from the config no longer apply when this option is used.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = c
	}
}

// New creates a new transport adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt, err := buildRoundTripper(cfg)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   cfg.Timeout,
		},
		config:  cfg,
		tracer:  otel.Tracer(instrumentationName),
		metrics: newRequestMetrics(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// buildRoundTripper constructs the transport layer from config.
func buildRoundTripper(cfg Config) (http.RoundTripper, error) {
	if cfg.H2C {
		// Cleartext HTTP/2: dial plain TCP where the TLS dial would be.
		return &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, network, addr)
			},
		}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}
	return transport, nil
}

// Send executes the request and buffers the response. Completed exchanges
// never error, whatever the status code; only connection-level failures do.
func (a *Adapter) Send(ctx context.Context, req Request) (*Response, error) {
	ctx, span := a.tracer.Start(ctx, "HTTP "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := a.send(ctx, req)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	a.metrics.record(ctx, req.Method, status, err, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.log.WithField("method", req.Method).WithField("url", req.URL).Error("request failed", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
	a.log.WithField("method", req.Method).
		WithField("url", req.URL).
		WithField(logger.FieldStatus, resp.StatusCode).
		WithField(logger.FieldDuration, elapsed.Milliseconds()).
		Debug("request completed")

	return resp, nil
}

// send builds and executes the HTTP exchange.
func (a *Adapter) send(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewRequestError(fmt.Errorf("create request: %w", err))
	}

	// Default headers first, request headers win.
	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       respBody,
	}, nil
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return a.config.Name
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (a *Adapter) Unwrap() *http.Client {
	return a.httpClient
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// flattenHeaders converts multi-value headers to single-value under their
// canonical names.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
