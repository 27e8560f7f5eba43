package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// Service information
	ServiceName    = "github.com/irfndi/strmarket-engine"
	ServiceVersion = "1.0.0"
)

// Exporter kinds
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
	ExporterNone   = "none"
)

// TelemetryConfig holds configuration for tracing
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Exporter    string  `mapstructure:"exporter"`
	Endpoint    string  `mapstructure:"endpoint"`
	Environment string  `mapstructure:"environment"`
	Release     string  `mapstructure:"release"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() *TelemetryConfig {
	return &TelemetryConfig{
		Enabled:     false,
		Exporter:    ExporterStdout,
		Endpoint:    "localhost:4318",
		Environment: "development",
		Release:     ServiceVersion,
		SampleRate:  1.0,
	}
}

var (
	mu       sync.Mutex
	provider *sdktrace.TracerProvider
)

// InitTelemetry installs the global tracer provider. A disabled config, or the
// "none" exporter, installs a no-op provider.
func InitTelemetry(config TelemetryConfig) error {
	return InitTelemetryTo(config, os.Stdout)
}

// InitTelemetryTo is InitTelemetry with the stdout exporter writing to w.
// CLIs whose stdout carries data pass os.Stderr.
func InitTelemetryTo(config TelemetryConfig, w io.Writer) error {
	exporterKind := strings.ToLower(strings.TrimSpace(config.Exporter))
	if !config.Enabled || exporterKind == ExporterNone {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return nil
	}

	var (
		exporter sdktrace.SpanExporter
		err      error
	)
	switch exporterKind {
	case "", ExporterStdout:
		exporter, err = newStdoutExporter(w)
	case ExporterOTLP:
		exporter, err = otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(config.Endpoint),
			otlptracehttp.WithInsecure(),
		)
	default:
		return fmt.Errorf("unknown trace exporter %q", config.Exporter)
	}
	if err != nil {
		return fmt.Errorf("trace exporter init: %w", err)
	}

	tp, err := newTracerProvider(config, sdktrace.WithBatcher(exporter))
	if err != nil {
		return err
	}
	install(tp)
	return nil
}

// InitWithSpanProcessor installs a provider that feeds the given processor.
// Used by tests with an in-memory span recorder.
func InitWithSpanProcessor(config TelemetryConfig, processor sdktrace.SpanProcessor) error {
	tp, err := newTracerProvider(config, sdktrace.WithSpanProcessor(processor))
	if err != nil {
		return err
	}
	install(tp)
	return nil
}

func newStdoutExporter(w io.Writer) (sdktrace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
}

func newTracerProvider(config TelemetryConfig, opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	release := config.Release
	if release == "" {
		release = ServiceVersion
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(release),
		semconv.DeploymentEnvironment(config.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(config.SampleRate))
	if config.SampleRate >= 1 {
		sampler = sdktrace.AlwaysSample()
	}

	opts = append(opts, sdktrace.WithResource(res), sdktrace.WithSampler(sampler))
	return sdktrace.NewTracerProvider(opts...), nil
}

func install(tp *sdktrace.TracerProvider) {
	mu.Lock()
	previous := provider
	provider = tp
	mu.Unlock()

	if previous != nil {
		_ = previous.Shutdown(context.Background())
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Tracer returns a tracer from the global provider
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// GetScoringTracer returns the tracer used by the scoring service
func GetScoringTracer() trace.Tracer {
	return Tracer(ServiceName + "/scoring")
}

// Shutdown flushes and stops the installed provider, if any
func Shutdown(ctx context.Context) error {
	mu.Lock()
	tp := provider
	provider = nil
	mu.Unlock()

	if tp == nil {
		return nil
	}
	if err := tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer provider shutdown: %w", err)
	}
	return nil
}
