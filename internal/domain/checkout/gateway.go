package checkout

import (
	"context"

	"github.com/artisan/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PaymentGateway charges a checkout amount against an external processor
// Implementations block until the charge settles or ctx is cancelled
type PaymentGateway interface {
	Charge(ctx context.Context, reference uuid.UUID, amount valueobject.Money) error
}
