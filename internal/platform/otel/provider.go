// Package otel wires OpenTelemetry tracing for service binaries.
//
// Tracing is opt-in. Without EMERGENCYHELP_OTEL_ENDPOINT, or with
// EMERGENCYHELP_OTEL_ENABLED=false, no global provider is registered and the
// HTTP middleware records into the default no-op tracer.
package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/louisbranch/emergencyhelp/internal/platform/config"
)

// ServiceNamespace groups every binary of this repository in trace backends.
const ServiceNamespace = "emergencyhelp"

type settings struct {
	Enabled     string  `env:"EMERGENCYHELP_OTEL_ENABLED"`
	Endpoint    string  `env:"EMERGENCYHELP_OTEL_ENDPOINT"`
	SampleRatio float64 `env:"EMERGENCYHELP_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

func (s settings) endpoint() (string, bool) {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return "", false
	}
	endpoint := strings.TrimSpace(s.Endpoint)
	return endpoint, endpoint != ""
}

func noop(context.Context) error { return nil }

// Setup registers a batching OTLP/HTTP tracer provider for serviceName and
// returns its shutdown func, which flushes pending spans. When tracing is
// off the returned func does nothing.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	var cfg settings
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	endpoint, ok := cfg.endpoint()
	if !ok {
		return noop, nil
	}

	tp, err := newProvider(ctx, serviceName, endpoint, cfg.SampleRatio)
	if err != nil {
		return noop, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, serviceName, endpoint string, ratio float64) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceNamespace(ServiceNamespace),
	))
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(ratio)),
	), nil
}

// samplerFor clamps ratio: 1 or more samples every trace, 0 or less none,
// anything between follows the parent and samples new roots by ratio.
func samplerFor(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	if ratio <= 0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}
