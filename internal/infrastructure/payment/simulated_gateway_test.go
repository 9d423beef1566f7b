package payment

import (
	"context"
	"testing"
	"time"

	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedGateway_Charge(t *testing.T) {
	gateway := NewSimulatedGateway(10*time.Millisecond, zap.NewNop())

	start := time.Now()
	err := gateway.Charge(context.Background(), uuid.New(), valueobject.NewMoneyUSDFromFloat(64))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSimulatedGateway_ZeroDelay(t *testing.T) {
	gateway := NewSimulatedGateway(0, zap.NewNop())
	require.NoError(t, gateway.Charge(context.Background(), uuid.New(), valueobject.ZeroUSD()))
}

func TestSimulatedGateway_CancelledContext(t *testing.T) {
	gateway := NewSimulatedGateway(time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := gateway.Charge(ctx, uuid.New(), valueobject.NewMoneyUSDFromFloat(89))
	assert.ErrorIs(t, err, context.Canceled)
}
