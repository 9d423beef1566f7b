package identity

import (
	"context"
	"testing"
	"time"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/identity"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/artisan/storefront/internal/infrastructure/auth"
	"github.com/artisan/storefront/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*identity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*identity.Session)}
}

func (r *fakeSessionRepo) Save(_ context.Context, s *identity.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

type fakePlanRepo struct {
	plans map[string]*catalog.Plan
}

func newFakePlanRepo(t *testing.T) *fakePlanRepo {
	t.Helper()
	repo := &fakePlanRepo{plans: make(map[string]*catalog.Plan)}
	for code, price := range map[string]string{
		"essential": "49.00",
		"premium":   "89.00",
		"collector": "159.00",
	} {
		d, err := decimal.NewFromString(price)
		require.NoError(t, err)
		plan, err := catalog.NewPlan(code, code, d, nil)
		require.NoError(t, err)
		repo.plans[code] = plan
	}
	return repo
}

func (r *fakePlanRepo) FindByCode(_ context.Context, code string) (*catalog.Plan, error) {
	p, ok := r.plans[code]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) FindAll(_ context.Context) ([]*catalog.Plan, error) {
	all := make([]*catalog.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		all = append(all, p)
	}
	return all, nil
}

func newTestService(t *testing.T) (*Service, *fakeSessionRepo) {
	t.Helper()
	repo := newFakeSessionRepo()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:            "test-secret-key-for-session-tokens",
		SessionExpiration: time.Hour,
		Issuer:            "storefront-test",
	})
	return NewService(repo, newFakePlanRepo(t), jwtService, zap.NewNop()), repo
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("email identifier derives display name", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com"})
		require.NoError(t, err)

		assert.Equal(t, "jane", resp.Session.Name)
		assert.Equal(t, "jane@example.com", resp.Session.Email)
		assert.False(t, resp.Session.Guest)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
	})

	t.Run("plain identifier kept verbatim", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), LoginRequest{Email: "jane"})
		require.NoError(t, err)
		assert.Equal(t, "jane", resp.Session.Name)
	})

	t.Run("empty identifier rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Email: "   "})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestService_LoginGuest(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.LoginGuest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, identity.GuestName, resp.Session.Name)
	assert.True(t, resp.Session.Guest)
	assert.NotEmpty(t, resp.Token)
}

func TestService_Logout(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Session.ID))
	assert.Empty(t, repo.sessions)

	// Logging out again is a no-op
	require.NoError(t, svc.Logout(context.Background(), resp.Session.ID))
}

func TestService_UpdatePlan(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com"})
	require.NoError(t, err)

	t.Run("enrolls known plan", func(t *testing.T) {
		session, err := svc.UpdatePlan(context.Background(), resp.Session.ID, UpdatePlanRequest{PlanCode: "premium"})
		require.NoError(t, err)
		assert.Equal(t, "premium", session.Plan)
	})

	t.Run("replaces existing plan", func(t *testing.T) {
		session, err := svc.UpdatePlan(context.Background(), resp.Session.ID, UpdatePlanRequest{PlanCode: "collector"})
		require.NoError(t, err)
		assert.Equal(t, "collector", session.Plan)
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		_, err := svc.UpdatePlan(context.Background(), resp.Session.ID, UpdatePlanRequest{PlanCode: "platinum"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PLAN_NOT_FOUND", domainErr.Code)
	})

	t.Run("unknown session rejected", func(t *testing.T) {
		_, err := svc.UpdatePlan(context.Background(), uuid.New(), UpdatePlanRequest{PlanCode: "premium"})
		require.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com"})
	require.NoError(t, err)

	session, err := svc.Get(context.Background(), resp.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Session.ID, session.ID)

	_, err = svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
}
