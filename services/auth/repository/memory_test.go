package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/backend/internal/pkg/models"
)

func testOTPConfig() models.OTPConfig {
	return models.OTPConfig{
		Length:         6,
		TTLSeconds:     300,
		MaxAttempts:    5,
		CooldownSecs:   60,
		MaxPerCooldown: 5,
	}
}

// fakeClock lets tests advance time without sleeping
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache() (*MemoryOTPCache, *fakeClock) {
	cache := NewMemoryOTPCache(testOTPConfig())
	clock := newFakeClock()
	cache.SetClock(clock.Now)
	return cache, clock
}

const testPhone = "9876543210"

func TestVerify_HappyPath(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	result, err := cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPValid, result.Status)
	assert.True(t, result.Valid())
}

func TestVerify_SingleUse(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	first, err := cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	require.Equal(t, models.OTPValid, first.Status)

	// Replaying the same code must fail: it was consumed
	second, err := cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, second.Status)
}

func TestVerify_WrongCodeBurnsAttempt(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	result, err := cache.Verify(ctx, testPhone, "000000")
	require.NoError(t, err)
	assert.Equal(t, models.OTPInvalid, result.Status)
	assert.Equal(t, 4, result.AttemptsLeft)

	// Correct code still works while attempts remain
	result, err = cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPValid, result.Status)
}

func TestVerify_AttemptsExhausted(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	// All five allowed attempts report invalid, counting down to zero
	for i := 0; i < 5; i++ {
		result, err := cache.Verify(ctx, testPhone, "000000")
		require.NoError(t, err)
		assert.Equal(t, models.OTPInvalid, result.Status)
		assert.Equal(t, 4-i, result.AttemptsLeft)
	}

	// The sixth submission is exhausted and burns the entry
	result, err := cache.Verify(ctx, testPhone, "000000")
	require.NoError(t, err)
	assert.Equal(t, models.OTPExhausted, result.Status)

	// Even the correct code is dead now
	result, err = cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result.Status)
}

func TestVerify_ExhaustionIgnoresCorrectness(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	for i := 0; i < 5; i++ {
		result, err := cache.Verify(ctx, testPhone, "000000")
		require.NoError(t, err)
		require.Equal(t, models.OTPInvalid, result.Status)
	}

	// Submitting the right code after the last allowed attempt still fails
	result, err := cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPExhausted, result.Status)
}

func TestVerify_Expired(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "482913"))

	clock.Advance(301 * time.Second)

	result, err := cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPExpired, result.Status)

	// The expired entry is gone; a retry reports not found
	result, err = cache.Verify(ctx, testPhone, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result.Status)
}

func TestVerify_UnknownPhone(t *testing.T) {
	cache, _ := newTestCache()

	result, err := cache.Verify(context.Background(), "1112223334", "482913")
	require.NoError(t, err)
	assert.Equal(t, models.OTPNotFound, result.Status)
}

func TestIssue_ReplacesPreviousCode(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Issue(ctx, testPhone, "111111"))
	require.NoError(t, cache.Issue(ctx, testPhone, "222222"))

	result, err := cache.Verify(ctx, testPhone, "111111")
	require.NoError(t, err)
	assert.Equal(t, models.OTPInvalid, result.Status)

	result, err = cache.Verify(ctx, testPhone, "222222")
	require.NoError(t, err)
	assert.Equal(t, models.OTPValid, result.Status)
}

func TestReserveSend_WithinLimit(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := cache.ReserveSend(ctx, testPhone)
		require.NoError(t, err)
		assert.False(t, result.Limited, "request %d should be admitted", i+1)
	}
}

func TestReserveSend_SixthRequestLimited(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := cache.ReserveSend(ctx, testPhone)
		require.NoError(t, err)
	}

	clock.Advance(10 * time.Second)

	result, err := cache.ReserveSend(ctx, testPhone)
	require.NoError(t, err)
	assert.True(t, result.Limited)
	assert.Equal(t, 50, result.TimeLeft)
}

func TestReserveSend_WindowResets(t *testing.T) {
	cache, clock := newTestCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := cache.ReserveSend(ctx, testPhone)
		require.NoError(t, err)
	}

	// A full cooldown after the window opened, requests are admitted again
	clock.Advance(60 * time.Second)

	result, err := cache.ReserveSend(ctx, testPhone)
	require.NoError(t, err)
	assert.False(t, result.Limited)
}

func TestReserveSend_IndependentPhones(t *testing.T) {
	cache, _ := newTestCache()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := cache.ReserveSend(ctx, testPhone)
		require.NoError(t, err)
	}

	result, err := cache.ReserveSend(ctx, "5556667778")
	require.NoError(t, err)
	assert.False(t, result.Limited)
}
