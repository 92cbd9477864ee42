// Package telemetry exports UI lifecycle traces to an OTLP endpoint.
package telemetry

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer exports navigation and toast spans to an OTLP endpoint.
// A nil Tracer is valid and drops everything.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "gamehub"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("gamehub/ui"),
	}, nil
}

// Navigation records a route change as a zero-duration span.
func (t *Tracer) Navigation(ctx context.Context, from, to string) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "ui.navigate")
	span.SetAttributes(
		attribute.String("gamehub.route.from", from),
		attribute.String("gamehub.route.to", to),
	)
	span.End()
}

// Toast records a completed toast lifecycle with its visible duration.
func (t *Tracer) Toast(ctx context.Context, message string, shownAt time.Time, duration time.Duration) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "ui.toast", oteltrace.WithTimestamp(shownAt))
	span.SetAttributes(
		attribute.String("gamehub.toast.message", message),
		attribute.Int64("gamehub.toast.duration_ms", duration.Milliseconds()),
	)
	span.End(oteltrace.WithTimestamp(shownAt.Add(duration)))
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
