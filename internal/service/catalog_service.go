package service

import (
	"context"
	"strings"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogService manages the priced services a shop offers.
type CatalogService struct {
	Services ServiceStore
}

func (s CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.Services.List(ctx)
}

func (s CatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.Services.GetByID(ctx, id)
}

func (s CatalogService) Create(ctx context.Context, name string, price decimal.Decimal) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	if price.IsNegative() {
		return nil, domain.Validation("price must not be negative")
	}
	return s.Services.Create(ctx, name, price.Round(2))
}

func (s CatalogService) Update(ctx context.Context, id uuid.UUID, p repository.UpdateServiceParams) (*domain.Service, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, domain.Validation("name must not be empty")
		}
		p.Name = &name
	}
	if p.Price != nil {
		if p.Price.IsNegative() {
			return nil, domain.Validation("price must not be negative")
		}
		rounded := p.Price.Round(2)
		p.Price = &rounded
	}
	return s.Services.Update(ctx, id, p)
}

func (s CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Services.Delete(ctx, id)
}
