package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/backend/internal/pkg/models"
)

func TestHTTPSMSGW_Send(t *testing.T) {
	var received smsPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gw := NewHTTPSMSGW(models.SMSConfig{
		ProviderURL: server.URL,
		APIKey:      "test-key",
		SenderID:    "FARMCHN",
		TimeoutSecs: 5,
	})

	err := gw.Send(context.Background(), "9876543210", "482913")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", received.To)
	assert.Equal(t, "FARMCHN", received.Sender)
	assert.Contains(t, received.Message, "482913")
}

func TestHTTPSMSGW_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := NewHTTPSMSGW(models.SMSConfig{ProviderURL: server.URL, TimeoutSecs: 5})

	err := gw.Send(context.Background(), "9876543210", "482913")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestHTTPSMSGW_Unreachable(t *testing.T) {
	gw := NewHTTPSMSGW(models.SMSConfig{ProviderURL: "http://127.0.0.1:1/send", TimeoutSecs: 1})

	err := gw.Send(context.Background(), "9876543210", "482913")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestDevSMSGW_Send(t *testing.T) {
	gw := NewDevSMSGW()
	assert.NoError(t, gw.Send(context.Background(), "9876543210", "482913"))
}
