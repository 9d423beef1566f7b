package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/artisan/storefront/internal/domain/cart"
	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/checkout"
	"github.com/artisan/storefront/internal/domain/identity"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates the checkout flow: it guards entry into
// processing, charges the payment gateway in the background, applies
// the purchase side effects, and confirms the checkout exactly once
type Service struct {
	checkoutRepo   checkout.Repository
	cartRepo       cart.Repository
	sessionRepo    identity.SessionRepository
	planRepo       catalog.PlanRepository
	gateway        checkout.PaymentGateway
	eventPublisher shared.EventPublisher
	logger         *zap.Logger

	chargeTimeout time.Duration

	mu       sync.Mutex // serializes the confirm entry guard
	inFlight sync.WaitGroup
}

// NewService creates a new checkout Service
func NewService(
	checkoutRepo checkout.Repository,
	cartRepo cart.Repository,
	sessionRepo identity.SessionRepository,
	planRepo catalog.PlanRepository,
	gateway checkout.PaymentGateway,
	chargeTimeout time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		checkoutRepo:  checkoutRepo,
		cartRepo:      cartRepo,
		sessionRepo:   sessionRepo,
		planRepo:      planRepo,
		gateway:       gateway,
		chargeTimeout: chargeTimeout,
		logger:        logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateOrder creates an idle checkout for the contents of a cart
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderCheckoutRequest, sessionID *uuid.UUID) (*CheckoutResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, req.CartID)
	if err != nil {
		return nil, err
	}

	co, err := checkout.NewOrderCheckout(c.ID, sessionID, c.Total())
	if err != nil {
		return nil, err
	}
	if err := s.checkoutRepo.Save(ctx, co); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, co)

	response := ToCheckoutResponse(co)
	return &response, nil
}

// CreateSubscription creates an idle checkout for a subscription plan
func (s *Service) CreateSubscription(ctx context.Context, req CreateSubscriptionCheckoutRequest, sessionID *uuid.UUID) (*CheckoutResponse, error) {
	plan, err := s.planRepo.FindByCode(ctx, req.PlanCode)
	if err != nil {
		return nil, shared.NewDomainError("PLAN_NOT_FOUND", "Unknown subscription plan")
	}

	co, err := checkout.NewSubscriptionCheckout(plan.Code, plan.PriceMoney(), req.CartID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkoutRepo.Save(ctx, co); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, co)

	response := ToCheckoutResponse(co)
	return &response, nil
}

// Get retrieves a checkout for status polling
func (s *Service) Get(ctx context.Context, checkoutID uuid.UUID) (*CheckoutResponse, error) {
	co, err := s.checkoutRepo.FindByID(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	response := ToCheckoutResponse(co)
	return &response, nil
}

// Confirm moves the checkout into processing and charges the gateway
// in the background. Confirming a checkout that is already processing
// or confirmed is a no-op, as is confirming an order checkout whose
// cart is empty; both return the current state unchanged
func (s *Service) Confirm(ctx context.Context, checkoutID uuid.UUID) (*CheckoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	co, err := s.checkoutRepo.FindByID(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	// Re-entrant and post-completion confirms are suppressed
	if co.IsProcessing() || co.IsConfirmed() {
		response := ToCheckoutResponse(co)
		return &response, nil
	}

	if co.Kind == checkout.KindOrder {
		crt, err := s.cartRepo.FindByID(ctx, *co.CartID)
		if err != nil {
			return nil, err
		}
		// Confirming with nothing in the cart does nothing
		if crt.IsEmpty() {
			response := ToCheckoutResponse(co)
			return &response, nil
		}
		// The cart may have changed since the checkout was created
		co.Amount = crt.Total()
	}

	if err := co.Begin(); err != nil {
		return nil, err
	}
	if err := s.checkoutRepo.Save(ctx, co); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, co)

	s.inFlight.Add(1)
	go s.settle(co.ID)

	response := ToCheckoutResponse(co)
	return &response, nil
}

// Wait blocks until all in-flight checkout completions have settled
// Called on shutdown so confirmations are never dropped mid-charge
func (s *Service) Wait() {
	s.inFlight.Wait()
}

// settle runs the background leg of a confirmation: it charges the
// gateway, applies side effects, and records the outcome. It uses a
// fresh context so the charge survives the originating request
func (s *Service) settle(checkoutID uuid.UUID) {
	defer s.inFlight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.chargeTimeout)
	defer cancel()

	co, err := s.checkoutRepo.FindByID(ctx, checkoutID)
	if err != nil {
		s.logger.Error("Checkout vanished during settlement",
			zap.String("checkout_id", checkoutID.String()),
			zap.Error(err))
		return
	}

	if err := s.gateway.Charge(ctx, co.ID, co.Amount); err != nil {
		s.recordFailure(ctx, co, err)
		return
	}

	if err := s.applySideEffects(ctx, co); err != nil {
		s.recordFailure(ctx, co, err)
		return
	}

	if err := co.Complete(); err != nil {
		s.logger.Error("Failed to complete checkout",
			zap.String("checkout_id", co.ID.String()),
			zap.Error(err))
		return
	}
	if err := s.checkoutRepo.Save(ctx, co); err != nil {
		s.logger.Error("Failed to save confirmed checkout",
			zap.String("checkout_id", co.ID.String()),
			zap.Error(err))
		return
	}
	s.publishEvents(ctx, co)

	s.logger.Info("Checkout confirmed",
		zap.String("checkout_id", co.ID.String()),
		zap.String("kind", string(co.Kind)),
		zap.String("amount", co.Amount.Display()))
}

// applySideEffects performs the purchase outcomes before confirmation
// so a poller that sees the confirmed status also sees their results
func (s *Service) applySideEffects(ctx context.Context, co *checkout.Checkout) error {
	if co.IsSubscription() {
		if err := s.enrollPlan(ctx, co); err != nil {
			return err
		}
	}

	if co.CartID != nil {
		crt, err := s.cartRepo.FindByID(ctx, *co.CartID)
		if err != nil {
			return err
		}
		crt.Clear()
		if err := s.cartRepo.Save(ctx, crt); err != nil {
			return err
		}
		s.publishCartEvents(ctx, crt)
	}
	return nil
}

// enrollPlan records the purchased plan on the session. A subscription
// bought with nobody logged in creates a guest session to hold it
func (s *Service) enrollPlan(ctx context.Context, co *checkout.Checkout) error {
	var session *identity.Session
	if co.SessionID != nil {
		found, err := s.sessionRepo.FindByID(ctx, *co.SessionID)
		if err == nil {
			session = found
		}
	}
	if session == nil {
		session = identity.NewGuestSession()
		co.AttachSession(session.ID)
	}

	if err := session.EnrollPlan(co.PlanCode); err != nil {
		return err
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		events := session.GetDomainEvents()
		if len(events) > 0 {
			if err := s.eventPublisher.Publish(ctx, events...); err != nil {
				s.logger.Warn("Failed to publish session events", zap.Error(err))
			}
		}
	}
	session.ClearDomainEvents()
	return nil
}

func (s *Service) recordFailure(ctx context.Context, co *checkout.Checkout, cause error) {
	s.logger.Warn("Checkout settlement failed",
		zap.String("checkout_id", co.ID.String()),
		zap.Error(cause))

	if err := co.Fail(cause.Error()); err != nil {
		s.logger.Error("Failed to record checkout failure",
			zap.String("checkout_id", co.ID.String()),
			zap.Error(err))
		return
	}
	if err := s.checkoutRepo.Save(ctx, co); err != nil {
		s.logger.Error("Failed to save failed checkout",
			zap.String("checkout_id", co.ID.String()),
			zap.Error(err))
		return
	}
	s.publishEvents(ctx, co)
}

func (s *Service) publishEvents(ctx context.Context, co *checkout.Checkout) {
	events := co.GetDomainEvents()
	if len(events) == 0 || s.eventPublisher == nil {
		co.ClearDomainEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish checkout events",
			zap.String("checkout_id", co.ID.String()),
			zap.Error(err))
	}
	co.ClearDomainEvents()
}

func (s *Service) publishCartEvents(ctx context.Context, crt *cart.Cart) {
	events := crt.GetDomainEvents()
	if len(events) == 0 || s.eventPublisher == nil {
		crt.ClearDomainEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish cart events",
			zap.String("cart_id", crt.ID.String()),
			zap.Error(err))
	}
	crt.ClearDomainEvents()
}
