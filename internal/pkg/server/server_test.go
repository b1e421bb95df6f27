package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return zl
}

func TestShutdownManager_RunsAllFunctions(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []int
	sm.Register(func(ctx context.Context) error {
		order = append(order, 1)
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 2)
		return nil
	})

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestShutdownManager_ContinuesAfterError(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var secondRan bool
	sm.Register(func(ctx context.Context) error {
		return fmt.Errorf("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		secondRan = true
		return nil
	})

	err := sm.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.True(t, secondRan)
}
