package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryConfig holds error tracking configuration. Nothing is sent unless
// Enabled is set and a DSN is given.
type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	Release     string  `mapstructure:"release"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// DefaultSentryConfig returns the default error tracking configuration
func DefaultSentryConfig() SentryConfig {
	return SentryConfig{
		Enabled:    false,
		Release:    ServiceVersion,
		SampleRate: 1.0,
	}
}

// Active reports whether InitSentry would install a client
func (c SentryConfig) Active() bool {
	return c.Enabled && c.DSN != ""
}

// InitSentry configures the global Sentry client
func InitSentry(cfg SentryConfig) error {
	if !cfg.Active() {
		return nil
	}

	release := cfg.Release
	if release == "" {
		release = ServiceVersion
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          release,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// FlushSentry drains buffered events within the context deadline, or two
// seconds when there is none.
func FlushSentry(ctx context.Context) error {
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = max(time.Until(deadline), 0)
	}
	sentry.Flush(timeout)
	return nil
}

// CaptureException reports err to Sentry, preferring the hub carried by ctx.
// Without an initialized client this is a no-op.
func CaptureException(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}
