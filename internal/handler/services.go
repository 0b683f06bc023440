package handler

import (
	"context"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"barbershop-backend/internal/repository"
	"barbershop-backend/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handlers depend on these method sets rather than concrete services.

type Authenticator interface {
	Login(ctx context.Context, in service.LoginInput) (*service.AuthResult, error)
}

type UserDirectory interface {
	Me(ctx context.Context, id domain.Identity) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, in service.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShopDirectory interface {
	List(ctx context.Context) ([]domain.Shop, error)
	Get(ctx context.Context, id uuid.UUID) (*service.ShopDetail, error)
	Create(ctx context.Context, p repository.ShopParams) (*domain.Shop, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateShopParams) (*domain.Shop, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceCatalog interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	Create(ctx context.Context, name string, price decimal.Decimal) (*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, p repository.UpdateServiceParams) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntryLedger interface {
	Create(ctx context.Context, caller domain.Identity, in service.CreateEntryInput) (*domain.Entry, error)
	List(ctx context.Context, caller domain.Identity, q service.EntryQuery) ([]domain.Entry, error)
	Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in service.UpdateEntryInput) (*domain.Entry, error)
	Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error
}

type PayLaterLedger interface {
	Create(ctx context.Context, caller domain.Identity, in service.CreatePayLaterInput) (*domain.PayLater, error)
	List(ctx context.Context, caller domain.Identity, q service.PayLaterQuery) ([]domain.PayLater, error)
	Unpaid(ctx context.Context, caller domain.Identity, q service.PayLaterQuery) (*service.UnpaidSummary, error)
	Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.PayLater, error)
	MarkPaid(ctx context.Context, caller domain.Identity, id uuid.UUID) (*service.Settlement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, isPaid *bool) (int64, error)
}

type ReportRunner interface {
	Run(ctx context.Context, kind report.Kind, start, end *time.Time) (*service.ReportResult, error)
}

var (
	_ Authenticator  = service.AuthService{}
	_ UserDirectory  = service.UserService{}
	_ ShopDirectory  = service.ShopService{}
	_ ServiceCatalog = service.CatalogService{}
	_ EntryLedger    = service.EntryService{}
	_ PayLaterLedger = service.PayLaterService{}
	_ ReportRunner   = service.ReportService{}
)
