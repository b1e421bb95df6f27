package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/farmchain/backend/internal/pkg/logger"
)

// Config holds backoff configuration
type Config struct {
	MaxRetries int           // retry attempts after the first call
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // cap on the backoff delay
	Multiplier float64
	Jitter     bool // randomize delays to avoid thundering herd
	Retryable  func(error) bool
}

// DefaultConfig retries three times with exponential backoff, treating
// every error as retryable
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  func(error) bool { return true },
	}
}

// Retrier runs functions with exponential backoff
type Retrier struct {
	config Config
}

// New creates a retrier with the given configuration
func New(config Config) *Retrier {
	if config.Multiplier <= 1 {
		config.Multiplier = 2.0
	}
	if config.Retryable == nil {
		config.Retryable = func(error) bool { return true }
	}
	return &Retrier{config: config}
}

// Do runs fn, retrying retryable failures until the attempts are
// exhausted or the context is done. The last error is returned.
func (r *Retrier) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.delay(attempt)):
			}
			logger.Debug("Retrying operation",
				logger.String("op", op),
				logger.Int("attempt", attempt))
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !r.config.Retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	if max := float64(r.config.MaxDelay); r.config.MaxDelay > 0 && d > max {
		d = max
	}
	if r.config.Jitter {
		d = d/2 + rand.Float64()*d/2
	}
	return time.Duration(d)
}
