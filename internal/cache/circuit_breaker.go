package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrCircuitOpen is returned while the breaker rejects calls
var ErrCircuitOpen = errors.New("circuit breaker is open")

// BreakerState is the state of a CircuitBreaker
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig holds circuit breaker thresholds
type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"` // consecutive failures before opening
	SuccessThreshold int           `mapstructure:"success_threshold"` // half-open successes before closing
	OpenTimeout      time.Duration `mapstructure:"open_timeout"`      // wait before probing again
}

// DefaultBreakerConfig returns the stock thresholds
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Second,
	}
}

// BreakerStats holds counters for a circuit breaker
type BreakerStats struct {
	Calls        int64 `json:"calls"`
	Failures     int64 `json:"failures"`
	Rejected     int64 `json:"rejected"`
	StateChanges int64 `json:"state_changes"`
}

// CircuitBreaker stops calls to a failing backend so the scoring path falls
// back to recomputation instead of waiting on every request.
type CircuitBreaker struct {
	name   string
	config BreakerConfig
	logger *logrus.Logger
	now    func() time.Time

	mu              sync.Mutex
	state           BreakerState
	failures        int
	successes       int
	probing         bool
	lastStateChange time.Time
	stats           BreakerStats
}

// NewCircuitBreaker creates a breaker; non-positive thresholds take defaults
func NewCircuitBreaker(name string, config BreakerConfig, logger *logrus.Logger) *CircuitBreaker {
	defaults := DefaultBreakerConfig()
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = defaults.SuccessThreshold
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = defaults.OpenTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CircuitBreaker{
		name:            name,
		config:          config,
		logger:          logger,
		now:             time.Now,
		state:           BreakerClosed,
		lastStateChange: time.Now(),
	}
}

// Execute runs fn unless the breaker is open. Context cancellation is passed
// through without counting as a backend failure.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn(ctx)

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.probing = false
	switch {
	case err == nil:
		cb.onSuccess()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	default:
		cb.onFailure(err)
	}
	return err
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.stats.Calls++
	switch cb.state {
	case BreakerOpen:
		if cb.now().Sub(cb.lastStateChange) < cb.config.OpenTimeout {
			cb.stats.Rejected++
			return false
		}
		cb.setState(BreakerHalfOpen)
		cb.probing = true
		return true
	case BreakerHalfOpen:
		// one probe in flight at a time
		if cb.probing {
			cb.stats.Rejected++
			return false
		}
		cb.probing = true
		return true
	default:
		return true
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case BreakerClosed:
		cb.failures = 0
	case BreakerHalfOpen:
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.setState(BreakerClosed)
		}
	}
}

func (cb *CircuitBreaker) onFailure(err error) {
	cb.stats.Failures++
	switch cb.state {
	case BreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.FailureThreshold {
			cb.setState(BreakerOpen)
		}
	case BreakerHalfOpen:
		cb.setState(BreakerOpen)
	}

	cb.logger.WithFields(logrus.Fields{
		"circuit_breaker": cb.name,
		"state":           cb.state.String(),
		"error":           err.Error(),
		"failure_count":   cb.failures,
	}).Debug("Circuit breaker: failed execution")
}

func (cb *CircuitBreaker) setState(newState BreakerState) {
	if cb.state == newState {
		return
	}
	oldState := cb.state
	cb.state = newState
	cb.lastStateChange = cb.now()
	cb.failures = 0
	cb.successes = 0
	cb.stats.StateChanges++

	cb.logger.WithFields(logrus.Fields{
		"circuit_breaker": cb.name,
		"old_state":       oldState.String(),
		"new_state":       newState.String(),
	}).Info("Circuit breaker state changed")
}

// State returns the current state
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Stats returns the current counters
func (cb *CircuitBreaker) Stats() BreakerStats {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.stats
}

// Reset closes the breaker
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setState(BreakerClosed)
	cb.probing = false
}
