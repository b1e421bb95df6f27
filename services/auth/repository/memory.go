package repository

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/farmchain/backend/internal/pkg/models"
)

// otpEntry is one issued code with its expiry and attempt counter
type otpEntry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// rateWindow tracks issuance requests within one cooldown window
type rateWindow struct {
	windowStart time.Time
	count       int
}

// MemoryOTPCache keeps OTP state in process memory. Suitable for a
// single instance; multi-instance deployments use the Redis backend.
// The clock is injectable so expiry and window behavior is testable
// without sleeping.
type MemoryOTPCache struct {
	mu      sync.Mutex
	entries map[string]*otpEntry
	windows map[string]*rateWindow

	cfg       models.OTPConfig
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryOTPCache creates an in-memory OTP cache
func NewMemoryOTPCache(cfg models.OTPConfig) *MemoryOTPCache {
	return &MemoryOTPCache{
		entries: make(map[string]*otpEntry),
		windows: make(map[string]*rateWindow),
		cfg:     cfg,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (c *MemoryOTPCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// ReserveSend records one issuance request against the phone's rate
// window. The window resets once a full cooldown has elapsed since its
// first request; until then requests beyond the cap are rejected with
// the seconds remaining.
func (c *MemoryOTPCache) ReserveSend(_ context.Context, phone string) (models.RateLimitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.maybeSweep(now)

	cooldown := time.Duration(c.cfg.CooldownSecs) * time.Second

	w, ok := c.windows[phone]
	if !ok || now.Sub(w.windowStart) >= cooldown {
		c.windows[phone] = &rateWindow{windowStart: now, count: 1}
		return models.RateLimitResult{}, nil
	}

	if w.count >= c.cfg.MaxPerCooldown {
		left := cooldown - now.Sub(w.windowStart)
		timeLeft := int(left / time.Second)
		if left%time.Second > 0 {
			timeLeft++
		}
		return models.RateLimitResult{Limited: true, TimeLeft: timeLeft}, nil
	}

	w.count++
	return models.RateLimitResult{}, nil
}

// Issue stores a fresh code, replacing any outstanding one
func (c *MemoryOTPCache) Issue(_ context.Context, phone, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[phone] = &otpEntry{
		code:      code,
		expiresAt: c.now().Add(time.Duration(c.cfg.TTLSeconds) * time.Second),
	}
	return nil
}

// Verify checks a submitted code against the stored entry. All
// recoverable outcomes are reported in the result, not as errors.
func (c *MemoryOTPCache) Verify(_ context.Context, phone, code string) (models.OTPVerifyResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[phone]
	if !ok {
		return models.OTPVerifyResult{Status: models.OTPNotFound}, nil
	}

	now := c.now()
	if now.After(entry.expiresAt) {
		delete(c.entries, phone)
		return models.OTPVerifyResult{Status: models.OTPExpired}, nil
	}

	// Once the counter has reached the cap the entry is burned: even a
	// correct code is rejected on the submission after the last allowed
	// attempt.
	if entry.attempts >= c.cfg.MaxAttempts {
		delete(c.entries, phone)
		return models.OTPVerifyResult{Status: models.OTPExhausted}, nil
	}

	if subtle.ConstantTimeCompare([]byte(entry.code), []byte(code)) != 1 {
		entry.attempts++
		return models.OTPVerifyResult{
			Status:       models.OTPInvalid,
			AttemptsLeft: c.cfg.MaxAttempts - entry.attempts,
		}, nil
	}

	// Single use: a matching code is consumed immediately
	delete(c.entries, phone)
	return models.OTPVerifyResult{Status: models.OTPValid}, nil
}

// maybeSweep drops expired codes and stale rate windows. Runs at most
// once per few cooldowns, piggybacked on ReserveSend; callers hold the
// lock.
func (c *MemoryOTPCache) maybeSweep(now time.Time) {
	cooldown := time.Duration(c.cfg.CooldownSecs) * time.Second
	if now.Sub(c.lastSweep) < cooldown*6 {
		return
	}
	c.lastSweep = now

	for phone, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, phone)
		}
	}
	for phone, w := range c.windows {
		if now.Sub(w.windowStart) >= cooldown {
			delete(c.windows, phone)
		}
	}
}
