package payment

import (
	"context"
	"time"

	"github.com/artisan/storefront/internal/domain/checkout"
	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedGateway approves every charge after a fixed processing delay
// It stands in for a real payment processor; the delay gives the
// storefront its processing interlude before confirmation
type SimulatedGateway struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedGateway creates a gateway with the given processing delay
func NewSimulatedGateway(delay time.Duration, logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		delay:  delay,
		logger: logger,
	}
}

// Charge approves the charge once the delay elapses
// Cancelling ctx abandons the charge and returns its error
func (g *SimulatedGateway) Charge(ctx context.Context, reference uuid.UUID, amount valueobject.Money) error {
	g.logger.Debug("Processing charge",
		zap.String("reference", reference.String()),
		zap.String("amount", amount.Display()))

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			g.logger.Warn("Charge abandoned",
				zap.String("reference", reference.String()),
				zap.Error(ctx.Err()))
			return ctx.Err()
		}
	}

	g.logger.Info("Charge approved",
		zap.String("reference", reference.String()),
		zap.String("amount", amount.Display()))
	return nil
}

var _ checkout.PaymentGateway = (*SimulatedGateway)(nil)
