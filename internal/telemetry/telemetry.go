// Package telemetry wires OpenTelemetry tracing for folio.
// Without an OTLP endpoint the global no-op provider is used.
package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/content"
)

// TracerName is the instrumentation scope for UI spans.
const TracerName = "folio/ui"

// SpanModal covers one modal lifetime, from open to the end of the close delay.
const SpanModal = "project.modal"

// Provider owns the tracer provider, if any.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider when endpoint is non-empty.
// endpoint is either a URL (the usual OTEL_EXPORTER_OTLP_ENDPOINT form,
// e.g. http://localhost:4318) or a bare host:port. Export errors go to log
// instead of stderr, which belongs to the TUI. The returned Provider's
// Shutdown is always safe to call.
func Setup(ctx context.Context, endpoint, serviceName string, log logrus.FieldLogger) (*Provider, error) {
	if endpoint == "" {
		return &Provider{}, nil
	}
	if log != nil {
		otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
			log.WithError(err).Warn("otel")
		}))
	}

	exporter, err := otlptracehttp.New(ctx, endpointOption(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return &Provider{provider: tp}, nil
}

func endpointOption(endpoint string) otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return otlptracehttp.WithEndpointURL(endpoint)
	}
	return otlptracehttp.WithEndpoint(endpoint)
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Tracer returns the UI tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(TracerName)
}

// ProjectAttributes maps a project to span attributes.
func ProjectAttributes(p content.Project) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("folio.project.id", strconv.Itoa(p.ID)),
		attribute.String("folio.project.title", p.Title),
		attribute.Int("folio.project.technologies", len(p.Technologies)),
	}
}
