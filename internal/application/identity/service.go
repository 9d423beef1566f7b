package identity

import (
	"context"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/identity"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles session lifecycle operations
type Service struct {
	sessionRepo    identity.SessionRepository
	planRepo       catalog.PlanRepository
	jwtService     *auth.JWTService
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new identity Service
func NewService(
	sessionRepo identity.SessionRepository,
	planRepo catalog.PlanRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		planRepo:    planRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Login starts a session for the given identifier and issues a token
// Any non-empty identifier is accepted; the display name is derived
// from the part before the @ when the identifier looks like an email
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	session, err := identity.NewSession(req.Email)
	if err != nil {
		s.logger.Warn("Login rejected", zap.Error(err))
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, session)

	return s.issueToken(session)
}

// LoginGuest starts an anonymous session with a placeholder name
// Used when a purchase completes without anyone logged in
func (s *Service) LoginGuest(ctx context.Context) (*LoginResponse, error) {
	session := identity.NewGuestSession()

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, session)

	return s.issueToken(session)
}

// Logout ends the session. Logging out an unknown session is a no-op
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := identity.NewSessionEndedEvent(session.ID)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish session ended event", zap.Error(err))
		}
	}
	return nil
}

// Get retrieves the session by ID
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	response := ToSessionResponse(session)
	return &response, nil
}

// UpdatePlan enrolls the session in a subscription plan
// The plan code must name a known plan
func (s *Service) UpdatePlan(ctx context.Context, sessionID uuid.UUID, req UpdatePlanRequest) (*SessionResponse, error) {
	if _, err := s.planRepo.FindByCode(ctx, req.PlanCode); err != nil {
		return nil, shared.NewDomainError("PLAN_NOT_FOUND", "Unknown subscription plan")
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.EnrollPlan(req.PlanCode); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, session)

	response := ToSessionResponse(session)
	return &response, nil
}

func (s *Service) issueToken(session *identity.Session) (*LoginResponse, error) {
	token, err := s.jwtService.GenerateSessionToken(auth.GenerateTokenInput{
		SessionID: session.ID,
		Name:      session.Name,
		Guest:     session.IsGuest(),
	})
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue session token")
	}

	return &LoginResponse{
		Session:   ToSessionResponse(session),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		TokenType: token.TokenType,
	}, nil
}

func (s *Service) publishEvents(ctx context.Context, session *identity.Session) {
	events := session.GetDomainEvents()
	if len(events) == 0 || s.eventPublisher == nil {
		session.ClearDomainEvents()
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish session events",
			zap.String("session_id", session.ID.String()),
			zap.Error(err))
	}
	session.ClearDomainEvents()
}
