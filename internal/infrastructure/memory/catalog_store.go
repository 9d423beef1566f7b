package memory

import (
	"context"
	"sync"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// CatalogStore is an in-memory, read-only catalog of products and plans
// The catalog is fixed at construction; catalog order is preserved
type CatalogStore struct {
	mu          sync.RWMutex
	products    []*catalog.Product
	productByID map[uuid.UUID]*catalog.Product
	plans       []*catalog.Plan
	planByCode  map[string]*catalog.Plan
}

// NewCatalogStore creates a catalog store holding the given products and plans
func NewCatalogStore(products []*catalog.Product, plans []*catalog.Plan) *CatalogStore {
	s := &CatalogStore{
		products:    products,
		productByID: make(map[uuid.UUID]*catalog.Product, len(products)),
		plans:       plans,
		planByCode:  make(map[string]*catalog.Plan, len(plans)),
	}
	for _, p := range products {
		s.productByID[p.ID] = p
	}
	for _, p := range plans {
		s.planByCode[p.Code] = p
	}
	return s
}

// FindByID retrieves a product by its ID
func (s *CatalogStore) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.productByID[id]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	return p, nil
}

// FindByCode retrieves a product by its catalog code
func (s *CatalogStore) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
}

// FindAll retrieves all products in catalog order
func (s *CatalogStore) FindAll(_ context.Context) ([]*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*catalog.Product, len(s.products))
	copy(result, s.products)
	return result, nil
}

// FindByCategory retrieves all products in a category, in catalog order
func (s *CatalogStore) FindByCategory(_ context.Context, category catalog.Category) ([]*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*catalog.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

// FindPlanByCode retrieves a plan by its code
func (s *CatalogStore) FindPlanByCode(_ context.Context, code string) (*catalog.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.planByCode[code]
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Plan not found")
	}
	return p, nil
}

// FindAllPlans retrieves all plans in catalog order
func (s *CatalogStore) FindAllPlans(_ context.Context) ([]*catalog.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*catalog.Plan, len(s.plans))
	copy(result, s.plans)
	return result, nil
}

// Plans adapts the store to the plan repository interface
func (s *CatalogStore) Plans() catalog.PlanRepository {
	return planView{store: s}
}

// planView narrows CatalogStore to plan lookups
type planView struct {
	store *CatalogStore
}

func (v planView) FindByCode(ctx context.Context, code string) (*catalog.Plan, error) {
	return v.store.FindPlanByCode(ctx, code)
}

func (v planView) FindAll(ctx context.Context) ([]*catalog.Plan, error) {
	return v.store.FindAllPlans(ctx)
}

var (
	_ catalog.ProductRepository = (*CatalogStore)(nil)
	_ catalog.PlanRepository    = planView{}
)
