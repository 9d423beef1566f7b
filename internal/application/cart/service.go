package cart

import (
	"context"

	"github.com/artisan/storefront/internal/domain/cart"
	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles cart business operations
type Service struct {
	cartRepo       cart.Repository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new cart Service
func NewService(cartRepo cart.Repository, productRepo catalog.ProductRepository, logger *zap.Logger) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new empty cart
func (s *Service) Create(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// Get retrieves a cart by ID
func (s *Service) Get(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem adds one unit of a product to the cart
// Adding a product already in the cart increments its quantity
func (s *Service) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if err := c.Add(product); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// UpdateQuantity adjusts an item's quantity by a signed delta, clamped to 1
// Adjusting a product not in the cart is a no-op
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID uuid.UUID, req UpdateQuantityRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(productID, req.Delta)
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem removes a product line from the cart
// Removing a product not in the cart is a no-op
func (s *Service) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.Remove(productID)
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.Clear()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, c)

	response := ToCartResponse(c)
	return &response, nil
}

// publishEvents drains the aggregate's pending events onto the bus
// Publishing is best-effort; projection staleness must not fail the command
func (s *Service) publishEvents(ctx context.Context, c *cart.Cart) {
	events := c.GetDomainEvents()
	if len(events) == 0 || s.eventPublisher == nil {
		c.ClearDomainEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish cart events",
			zap.String("cart_id", c.ID.String()),
			zap.Error(err))
	}
	c.ClearDomainEvents()
}
