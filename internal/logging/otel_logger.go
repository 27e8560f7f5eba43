package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// OTLPConfig holds configuration for OpenTelemetry log export
type OTLPConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Endpoint       string `mapstructure:"endpoint"`
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`
}

// OTLPHook is a logrus.Hook that forwards entries to an OpenTelemetry logger
type OTLPHook struct {
	logger   otellog.Logger
	levels   []logrus.Level
	shutdown func(context.Context) error
}

// NewOTLPHook creates the OTLP log hook. A disabled config yields a nil hook
// and no error; callers only attach a non-nil hook.
func NewOTLPHook(config OTLPConfig) (*OTLPHook, error) {
	if !config.Enabled {
		return nil, nil
	}

	ctx := context.Background()

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = "localhost:4318"
	}

	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpoint(endpoint),
		otlploghttp.WithURLPath("/v1/logs"),
		otlploghttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := log.NewLoggerProvider(
		log.WithProcessor(log.NewBatchProcessor(exporter)),
		log.WithResource(res),
	)

	hook := NewOTLPHookWithLogger(provider.Logger(config.ServiceName))
	hook.shutdown = provider.Shutdown
	return hook, nil
}

// NewOTLPHookWithLogger wraps an existing OpenTelemetry logger
func NewOTLPHookWithLogger(logger otellog.Logger) *OTLPHook {
	return &OTLPHook{
		logger: logger,
		levels: logrus.AllLevels,
	}
}

// Levels implements logrus.Hook
func (h *OTLPHook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook
func (h *OTLPHook) Fire(entry *logrus.Entry) error {
	attrs := make([]otellog.KeyValue, 0, len(entry.Data))
	for k, v := range entry.Data {
		attrs = append(attrs, convertField(k, v))
	}

	record := otellog.Record{}
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(convertLogrusLevelToSeverity(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))
	record.AddAttributes(attrs...)

	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}
	h.logger.Emit(ctx, record)

	return nil
}

// Shutdown flushes and stops the underlying provider
func (h *OTLPHook) Shutdown(ctx context.Context) error {
	if h == nil || h.shutdown == nil {
		return nil
	}
	return h.shutdown(ctx)
}

func convertField(key string, value interface{}) otellog.KeyValue {
	switch v := value.(type) {
	case string:
		return otellog.String(key, v)
	case bool:
		return otellog.Bool(key, v)
	case int:
		return otellog.Int(key, v)
	case int64:
		return otellog.Int64(key, v)
	case float64:
		return otellog.Float64(key, v)
	case error:
		return otellog.String(key, v.Error())
	case fmt.Stringer:
		return otellog.String(key, v.String())
	default:
		return otellog.String(key, fmt.Sprint(v))
	}
}

// convertLogrusLevelToSeverity converts logrus.Level to otellog.Severity
func convertLogrusLevelToSeverity(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	case logrus.FatalLevel:
		return otellog.SeverityFatal
	case logrus.PanicLevel:
		return otellog.SeverityFatal4
	default:
		return otellog.SeverityInfo
	}
}
