// Package retry runs functions with exponential backoff. Errors marked
// recoverable are retried; anything else fails fast.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseWait   = 1 * time.Second
)

// RecoverableError wraps an error to mark it as transient.
type RecoverableError struct {
	err error
}

// NewRecoverableError marks the given error as recoverable.
func NewRecoverableError(err error) error {
	return &RecoverableError{err: err}
}

func (e *RecoverableError) Error() string {
	return e.err.Error()
}

func (e *RecoverableError) Unwrap() error {
	return e.err
}

// IsRecoverable reports whether err is marked recoverable anywhere in
// its chain.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	var recoverable *RecoverableError
	return errors.As(err, &recoverable)
}

type config struct {
	maxRetries int
	baseWait   time.Duration
	maxWait    time.Duration
}

// Option configures a call to Do.
type Option func(*config)

// WithMaxRetries sets the total number of attempts.
func WithMaxRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithBaseWait sets the wait before the first retry. Subsequent waits
// double, with a little jitter.
func WithBaseWait(d time.Duration) Option {
	return func(c *config) { c.baseWait = d }
}

// WithMaxWait caps the backoff wait between attempts.
func WithMaxWait(d time.Duration) Option {
	return func(c *config) { c.maxWait = d }
}

// Do executes f until it succeeds, returns an unrecoverable error, or
// the attempts are exhausted. The last error is returned with its chain
// intact, so callers can still classify it with errors.As.
func Do(ctx context.Context, f func() error, opts ...Option) error {
	cfg := &config{
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxRetries < 1 {
		cfg.maxRetries = 1
	}

	var lastError error
	for attempt := 0; attempt < cfg.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(cfg.baseWait) * math.Pow(2, float64(attempt-1)))
			if cfg.maxWait > 0 && backoff > cfg.maxWait {
				backoff = cfg.maxWait
			}
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		err := f()
		if err == nil {
			return nil
		}
		lastError = err
		if !IsRecoverable(err) {
			return err
		}
	}
	return lastError
}

// ShouldRetry reports whether the given HTTP status code is worth
// retrying.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode == http.StatusInternalServerError || // 500
		statusCode == http.StatusBadGateway || // 502
		statusCode == http.StatusServiceUnavailable || // 503
		statusCode == http.StatusGatewayTimeout // 504
}
