package httpclient

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// requestMetrics records request counts and durations against whatever
// meter provider the embedding application registered globally. With no
// provider configured these are no-ops.
type requestMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newRequestMetrics() *requestMetrics {
	meter := otel.Meter(instrumentationName)

	requests, err := meter.Int64Counter("http.client.requests",
		metric.WithDescription("Number of outbound HTTP requests"),
	)
	if err != nil {
		requests = nil
	}
	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Outbound HTTP request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		duration = nil
	}

	return &requestMetrics{requests: requests, duration: duration}
}

func (m *requestMetrics) record(ctx context.Context, method string, status int, err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
	}
	if status > 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		attrs = append(attrs, attribute.Bool("error", true))
	}

	opt := metric.WithAttributes(attrs...)
	if m.requests != nil {
		m.requests.Add(ctx, 1, opt)
	}
	if m.duration != nil {
		m.duration.Record(ctx, float64(elapsed.Milliseconds()), opt)
	}
}
