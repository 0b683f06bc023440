package service

import (
	"context"
	"strings"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayLaterService struct {
	PayLater    PayLaterStore
	Entries     EntryStore
	PhoneRegion string
	Events      EventRecorder
}

type CreatePayLaterInput struct {
	StaffID       *uuid.UUID
	ShopID        *uuid.UUID
	CustomerName  string
	CustomerPhone string
	Amount        decimal.Decimal
	Date          time.Time
	Time          string
	ServiceIDs    []uuid.UUID
}

type PayLaterQuery struct {
	StaffID *uuid.UUID
	ShopID  *uuid.UUID
}

// Settlement is the outcome of marking a promise as paid.
type Settlement struct {
	PayLater domain.PayLater
	Entry    domain.Entry
}

type UnpaidSummary struct {
	Entries     []domain.PayLater
	TotalUnpaid decimal.Decimal
}

func (s PayLaterService) Create(ctx context.Context, caller domain.Identity, in CreatePayLaterInput) (*domain.PayLater, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	staffID := domain.ScopeFor(caller).StaffFilter(in.StaffID)
	if staffID == nil {
		return nil, domain.Validation("staffId is required")
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.Validation("customerName is required")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Validation("amount must be greater than zero")
	}
	if !timeOfDay.MatchString(in.Time) {
		return nil, domain.Validation("time must be HH:MM")
	}
	phone, err := NormalizePhone(in.CustomerPhone, s.PhoneRegion)
	if err != nil {
		return nil, err
	}

	return s.PayLater.Create(ctx, repository.CreatePayLaterParams{
		StaffID:       *staffID,
		ShopID:        in.ShopID,
		CustomerName:  name,
		CustomerPhone: phone,
		Amount:        in.Amount.Round(2),
		Date:          in.Date,
		Time:          in.Time,
		ServiceIDs:    in.ServiceIDs,
	})
}

func (s PayLaterService) List(ctx context.Context, caller domain.Identity, q PayLaterQuery) ([]domain.PayLater, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	return s.PayLater.List(ctx, s.filter(caller, q, nil))
}

// Unpaid lists outstanding promises together with the loan remaining.
func (s PayLaterService) Unpaid(ctx context.Context, caller domain.Identity, q PayLaterQuery) (*UnpaidSummary, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	unpaid := false
	f := s.filter(caller, q, &unpaid)
	entries, err := s.PayLater.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.PayLater.UnpaidTotal(ctx, f)
	if err != nil {
		return nil, err
	}
	return &UnpaidSummary{Entries: entries, TotalUnpaid: total}, nil
}

func (s PayLaterService) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.PayLater, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	pl, err := s.PayLater.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ScopeFor(caller).Owns(pl.StaffID) {
		return nil, domain.NotAuthorized("Not authorized")
	}
	return pl, nil
}

// MarkPaid settles a promise exactly once and returns the revenue entry it
// produced.
func (s PayLaterService) MarkPaid(ctx context.Context, caller domain.Identity, id uuid.UUID) (*Settlement, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	scope := domain.ScopeFor(caller)
	pl, entryID, err := s.PayLater.MarkPaid(ctx, id, func(row domain.PayLater) error {
		if !scope.Owns(row.StaffID) {
			return domain.NotAuthorized("Not authorized")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry, err := s.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	recorderOrNoop(s.Events).PayLaterSettled()
	recorderOrNoop(s.Events).EntryCreated(entry.PaymentMethod)
	return &Settlement{PayLater: *pl, Entry: *entry}, nil
}

// Delete removes ledger history only; settled revenue is untouched.
func (s PayLaterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.PayLater.Delete(ctx, id)
}

func (s PayLaterService) DeleteAll(ctx context.Context, isPaid *bool) (int64, error) {
	return s.PayLater.DeleteAll(ctx, isPaid)
}

func (s PayLaterService) filter(caller domain.Identity, q PayLaterQuery, isPaid *bool) repository.PayLaterFilter {
	return repository.PayLaterFilter{
		StaffID: domain.ScopeFor(caller).StaffFilter(q.StaffID),
		ShopID:  q.ShopID,
		IsPaid:  isPaid,
	}
}
