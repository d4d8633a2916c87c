// Package telemetry provides OpenTelemetry tracing setup.
package telemetry

import (
	"context"
	"errors"
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
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "dungeonsight"
	serviceVersion = "0.1.0"
)

// ErrDisabled is returned by Setup when no exporter endpoint is configured.
var ErrDisabled = errors.New("telemetry disabled: no OTLP endpoint configured")

// Config selects where spans are exported.
type Config struct {
	Endpoint string // OTLP HTTP endpoint; empty disables export
	Headers  string // Comma separated key=value pairs
}

// ConfigFromEnv builds a Config from DUNGEONSIGHT_OTLP_ENDPOINT,
// DUNGEONSIGHT_OTLP_HEADERS and the standard OTEL_EXPORTER_OTLP_* variables.
// The project-specific variables take precedence.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := Config{
		Endpoint: getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Headers:  getenv("OTEL_EXPORTER_OTLP_HEADERS"),
	}
	if v := getenv("DUNGEONSIGHT_OTLP_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := getenv("DUNGEONSIGHT_OTLP_HEADERS"); v != "" {
		cfg.Headers = v
	}
	return cfg
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter. The exporter
// reads the standard OTEL_* environment variables, so cfg is written back
// into the environment before it is created.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if cfg.Endpoint == "" {
		return nil, ErrDisabled
	}
	if err := os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("set OTLP endpoint: %w", err)
	}
	if cfg.Headers != "" {
		if err := os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", cfg.Headers); err != nil {
			return nil, fmt.Errorf("set OTLP headers: %w", err)
		}
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	// Own resource rather than merging with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
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
// Until Setup succeeds this is backed by the global no-op provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
