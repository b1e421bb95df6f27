package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	r := New(fastConfig())

	calls := 0
	err := r.Do(context.Background(), "flaky", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	r := New(fastConfig())

	calls := 0
	wantErr := errors.New("still down")
	err := r.Do(context.Background(), "down", func(context.Context) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 4, calls) // first call plus three retries
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	cfg := fastConfig()
	permanent := errors.New("bad request")
	cfg.Retryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg)

	calls := 0
	err := r.Do(context.Background(), "rejected", func(context.Context) error {
		calls++
		return permanent
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_HonorsContextCancellation(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Second
	r := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Do(ctx, "cancelled", func(context.Context) error {
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
