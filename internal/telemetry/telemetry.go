// Package telemetry provides OpenTelemetry tracing for the game loop.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "ultimaconsole"
	serviceVersion = "0.1.0"

	// DefaultEndpoint is the Honeycomb OTLP endpoint.
	DefaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "ultimaconsole"
)

// Options configures the trace exporter.
type Options struct {
	Endpoint string // OTLP HTTP endpoint URL
	APIKey   string // Honeycomb team key; empty sends no auth header
	Dataset  string
}

// headers builds the Honeycomb request headers.
func (o Options) headers() map[string]string {
	if o.APIKey == "" {
		return nil
	}
	dataset := o.Dataset
	if dataset == "" {
		dataset = defaultDataset
	}
	return map[string]string{
		"x-honeycomb-team":    o.APIKey,
		"x-honeycomb-dataset": dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers
// it as the global tracer provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	if h := opts.headers(); h != nil {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(h))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	// Own resource, not merged with Default(), to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
