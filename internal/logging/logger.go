package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Development gets a human-readable text
// formatter; every other environment logs JSON.
func NewLogger(logLevel string, environment string) *logrus.Logger {
	return newLogger(os.Stdout, logLevel, environment)
}

func newLogger(out io.Writer, logLevel string, environment string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(ParseLogrusLevel(logLevel))

	if strings.EqualFold(strings.TrimSpace(environment), "development") {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}

	return logger
}

// ParseLogrusLevel converts string level to logrus.Level
func ParseLogrusLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithComponent creates a log entry with component context
func WithComponent(logger *logrus.Logger, componentName string) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("component", componentName)
}

// LogStartup logs application startup information
func LogStartup(logger *logrus.Logger, serviceName string, version string, rulesVersion string) {
	logger.WithFields(logrus.Fields{
		"event":         "startup",
		"service":       serviceName,
		"version":       version,
		"rules_version": rulesVersion,
	}).Info("Service starting")
}

// LogShutdown logs application shutdown information
func LogShutdown(logger *logrus.Logger, serviceName string, reason string) {
	logger.WithFields(logrus.Fields{
		"event":   "shutdown",
		"service": serviceName,
		"reason":  reason,
	}).Info("Service shutting down")
}

// LogCacheOperation logs cache operations in a standardized format
func LogCacheOperation(logger logrus.FieldLogger, operation string, key string, hit bool, durationMs int64) {
	logger.WithFields(logrus.Fields{
		"event":       "cache_operation",
		"operation":   operation,
		"key":         key,
		"hit":         hit,
		"duration_ms": durationMs,
	}).Debug("Cache operation")
}
