package service

import (
	"context"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The store interfaces are satisfied by the pgx repositories and by in-memory
// fakes in tests.

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, p repository.CreateUserParams) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateUserParams) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShopStore interface {
	List(ctx context.Context) ([]domain.Shop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error)
	Stats(ctx context.Context, id uuid.UUID) (domain.ShopStats, error)
	Create(ctx context.Context, p repository.ShopParams) (*domain.Shop, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateShopParams) (*domain.Shop, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceStore interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Create(ctx context.Context, name string, price decimal.Decimal) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateServiceParams) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntryStore interface {
	Create(ctx context.Context, p repository.CreateEntryParams) (*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, f repository.EntryFilter) ([]domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateEntryParams) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PayLaterStore interface {
	Create(ctx context.Context, p repository.CreatePayLaterParams) (*domain.PayLater, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayLater, error)
	List(ctx context.Context, f repository.PayLaterFilter) ([]domain.PayLater, error)
	UnpaidTotal(ctx context.Context, f repository.PayLaterFilter) (decimal.Decimal, error)
	MarkPaid(ctx context.Context, id uuid.UUID, authorize func(domain.PayLater) error) (*domain.PayLater, uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, isPaid *bool) (int64, error)
}

// EventRecorder receives business events for metrics.
type EventRecorder interface {
	EntryCreated(method domain.PaymentMethod)
	PayLaterSettled()
}

type noopRecorder struct{}

func (noopRecorder) EntryCreated(domain.PaymentMethod) {}
func (noopRecorder) PayLaterSettled()                  {}

func recorderOrNoop(r EventRecorder) EventRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
