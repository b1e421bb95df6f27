package repository

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/farmchain/backend/internal/pkg/constants"
	"github.com/farmchain/backend/internal/pkg/database"
	"github.com/farmchain/backend/internal/pkg/models"
)

// redisOTPEntry is the stored form of an issued code
type redisOTPEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// redisRateWindow is the stored form of an issuance rate window
type redisRateWindow struct {
	WindowStart time.Time `json:"window_start"`
	Count       int       `json:"count"`
}

// RedisOTPCache keeps OTP state in Redis so multiple instances share
// codes and rate windows. Semantics match MemoryOTPCache; key TTLs act
// as a backstop, the expiry check still uses the stored timestamp.
type RedisOTPCache struct {
	client *database.RedisClient
	cfg    models.OTPConfig
}

// NewRedisOTPCache creates a Redis-backed OTP cache
func NewRedisOTPCache(client *database.RedisClient, cfg models.OTPConfig) *RedisOTPCache {
	return &RedisOTPCache{client: client, cfg: cfg}
}

// ReserveSend records one issuance request against the phone's rate window
func (c *RedisOTPCache) ReserveSend(ctx context.Context, phone string) (models.RateLimitResult, error) {
	key := fmt.Sprintf(constants.KeyOTPRate, phone)
	cooldown := time.Duration(c.cfg.CooldownSecs) * time.Second
	now := time.Now()

	var w redisRateWindow
	raw, err := c.client.Get(ctx, key)
	switch {
	case err == redis.Nil:
		w = redisRateWindow{WindowStart: now}
	case err != nil:
		return models.RateLimitResult{}, fmt.Errorf("failed to read rate window: %w", err)
	default:
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			w = redisRateWindow{WindowStart: now}
		}
	}

	if now.Sub(w.WindowStart) >= cooldown {
		w = redisRateWindow{WindowStart: now}
	}

	if w.Count >= c.cfg.MaxPerCooldown {
		left := cooldown - now.Sub(w.WindowStart)
		timeLeft := int(left / time.Second)
		if left%time.Second > 0 {
			timeLeft++
		}
		return models.RateLimitResult{Limited: true, TimeLeft: timeLeft}, nil
	}

	w.Count++
	if err := c.writeJSON(ctx, key, w, cooldown); err != nil {
		return models.RateLimitResult{}, err
	}
	return models.RateLimitResult{}, nil
}

// Issue stores a fresh code, replacing any outstanding one
func (c *RedisOTPCache) Issue(ctx context.Context, phone, code string) error {
	ttl := time.Duration(c.cfg.TTLSeconds) * time.Second
	entry := redisOTPEntry{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}
	return c.writeJSON(ctx, fmt.Sprintf(constants.KeyOTPEntry, phone), entry, ttl)
}

// Verify checks a submitted code against the stored entry
func (c *RedisOTPCache) Verify(ctx context.Context, phone, code string) (models.OTPVerifyResult, error) {
	key := fmt.Sprintf(constants.KeyOTPEntry, phone)

	raw, err := c.client.Get(ctx, key)
	if err == redis.Nil {
		return models.OTPVerifyResult{Status: models.OTPNotFound}, nil
	}
	if err != nil {
		return models.OTPVerifyResult{}, fmt.Errorf("failed to read otp entry: %w", err)
	}

	var entry redisOTPEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return models.OTPVerifyResult{}, fmt.Errorf("failed to decode otp entry: %w", err)
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = c.client.Delete(ctx, key)
		return models.OTPVerifyResult{Status: models.OTPExpired}, nil
	}

	// Once the counter has reached the cap the entry is burned: even a
	// correct code is rejected on the submission after the last allowed
	// attempt.
	if entry.Attempts >= c.cfg.MaxAttempts {
		_ = c.client.Delete(ctx, key)
		return models.OTPVerifyResult{Status: models.OTPExhausted}, nil
	}

	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) != 1 {
		entry.Attempts++
		ttl := time.Until(entry.ExpiresAt)
		if err := c.writeJSON(ctx, key, entry, ttl); err != nil {
			return models.OTPVerifyResult{}, err
		}
		return models.OTPVerifyResult{
			Status:       models.OTPInvalid,
			AttemptsLeft: c.cfg.MaxAttempts - entry.Attempts,
		}, nil
	}

	if err := c.client.Delete(ctx, key); err != nil {
		return models.OTPVerifyResult{}, fmt.Errorf("failed to consume otp entry: %w", err)
	}
	return models.OTPVerifyResult{Status: models.OTPValid}, nil
}

func (c *RedisOTPCache) writeJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
