package service

import (
	"context"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
)

type ShopService struct {
	Shops ShopStore
}

type ShopDetail struct {
	domain.Shop
	Stats domain.ShopStats
}

func (s ShopService) List(ctx context.Context) ([]domain.Shop, error) {
	return s.Shops.List(ctx)
}

// Get returns a shop with its lifetime stats.
func (s ShopService) Get(ctx context.Context, id uuid.UUID) (*ShopDetail, error) {
	shop, err := s.Shops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := s.Shops.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ShopDetail{Shop: *shop, Stats: stats}, nil
}

func (s ShopService) Create(ctx context.Context, p repository.ShopParams) (*domain.Shop, error) {
	return s.Shops.Create(ctx, p)
}

func (s ShopService) Update(ctx context.Context, id uuid.UUID, p repository.UpdateShopParams) (*domain.Shop, error) {
	return s.Shops.Update(ctx, id, p)
}

func (s ShopService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Shops.Delete(ctx, id)
}
