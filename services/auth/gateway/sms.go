package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/pkg/retry"
)

// DevSMSGW logs codes instead of sending them. Used when no provider
// is configured, which is the default outside production.
type DevSMSGW struct{}

// NewDevSMSGW creates the logging SMS gateway
func NewDevSMSGW() *DevSMSGW {
	return &DevSMSGW{}
}

// Send logs the code delivery
func (g *DevSMSGW) Send(_ context.Context, phone, code string) error {
	logger.Info("SMS delivery (dev mode)",
		logger.String("phone", phone),
		logger.String("code", code))
	return nil
}

// errProviderUnreachable marks transport-level failures, which are the
// only ones worth retrying; a provider rejection will not change on a
// second attempt.
var errProviderUnreachable = errors.New("sms provider unreachable")

// HTTPSMSGW delivers codes through an HTTP SMS provider
type HTTPSMSGW struct {
	cfg     models.SMSConfig
	client  *http.Client
	retrier *retry.Retrier
}

// NewHTTPSMSGW creates an SMS gateway for the configured provider
func NewHTTPSMSGW(cfg models.SMSConfig) *HTTPSMSGW {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.BaseDelay = 200 * time.Millisecond
	retryCfg.Retryable = func(err error) bool {
		return errors.Is(err, errProviderUnreachable)
	}

	return &HTTPSMSGW{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		retrier: retry.New(retryCfg),
	}
}

type smsPayload struct {
	To      string `json:"to"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Send posts the code to the provider. Transport and provider errors
// are returned to the caller; a failed delivery must fail the send-OTP
// request rather than leave the client waiting for a code that never
// arrives.
func (g *HTTPSMSGW) Send(ctx context.Context, phone, code string) error {
	payload := smsPayload{
		To:      phone,
		Sender:  g.cfg.SenderID,
		Message: fmt.Sprintf("Your FarmChain verification code is %s", code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sms payload: %w", err)
	}

	err = g.retrier.Do(ctx, "sms-delivery", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ProviderURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build sms request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", errProviderUnreachable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return fmt.Errorf("sms provider rejected delivery: status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("SMS delivered", logger.String("phone", phone))
	return nil
}
