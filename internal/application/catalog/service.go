package catalog

import (
	"context"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/google/uuid"
)

// Service exposes read operations over the product and plan catalog
type Service struct {
	productRepo catalog.ProductRepository
	planRepo    catalog.PlanRepository
}

// NewService creates a new catalog Service
func NewService(productRepo catalog.ProductRepository, planRepo catalog.PlanRepository) *Service {
	return &Service{
		productRepo: productRepo,
		planRepo:    planRepo,
	}
}

// ListProducts returns the full catalog, optionally filtered by category
func (s *Service) ListProducts(ctx context.Context, category string) ([]ProductResponse, error) {
	var (
		products []*catalog.Product
		err      error
	)
	if category != "" {
		products, err = s.productRepo.FindByCategory(ctx, catalog.Category(category))
	} else {
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetProductByCode retrieves a product by its catalog code
func (s *Service) GetProductByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// ListPlans returns all subscription plans
func (s *Service) ListPlans(ctx context.Context) ([]PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, ToPlanResponse(p))
	}
	return responses, nil
}

// GetPlan retrieves a plan by its code
func (s *Service) GetPlan(ctx context.Context, code string) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToPlanResponse(plan)
	return &response, nil
}
