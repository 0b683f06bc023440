package handler_test

import (
	"context"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"barbershop-backend/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, in service.LoginInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

type mockEntries struct{ mock.Mock }

func (m *mockEntries) Create(ctx context.Context, caller domain.Identity, in service.CreateEntryInput) (*domain.Entry, error) {
	args := m.Called(ctx, caller, in)
	e, _ := args.Get(0).(*domain.Entry)
	return e, args.Error(1)
}

func (m *mockEntries) List(ctx context.Context, caller domain.Identity, q service.EntryQuery) ([]domain.Entry, error) {
	args := m.Called(ctx, caller, q)
	e, _ := args.Get(0).([]domain.Entry)
	return e, args.Error(1)
}

func (m *mockEntries) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.Entry, error) {
	args := m.Called(ctx, caller, id)
	e, _ := args.Get(0).(*domain.Entry)
	return e, args.Error(1)
}

func (m *mockEntries) Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in service.UpdateEntryInput) (*domain.Entry, error) {
	args := m.Called(ctx, caller, id, in)
	e, _ := args.Get(0).(*domain.Entry)
	return e, args.Error(1)
}

func (m *mockEntries) Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

type mockPayLater struct{ mock.Mock }

func (m *mockPayLater) Create(ctx context.Context, caller domain.Identity, in service.CreatePayLaterInput) (*domain.PayLater, error) {
	args := m.Called(ctx, caller, in)
	p, _ := args.Get(0).(*domain.PayLater)
	return p, args.Error(1)
}

func (m *mockPayLater) List(ctx context.Context, caller domain.Identity, q service.PayLaterQuery) ([]domain.PayLater, error) {
	args := m.Called(ctx, caller, q)
	p, _ := args.Get(0).([]domain.PayLater)
	return p, args.Error(1)
}

func (m *mockPayLater) Unpaid(ctx context.Context, caller domain.Identity, q service.PayLaterQuery) (*service.UnpaidSummary, error) {
	args := m.Called(ctx, caller, q)
	s, _ := args.Get(0).(*service.UnpaidSummary)
	return s, args.Error(1)
}

func (m *mockPayLater) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.PayLater, error) {
	args := m.Called(ctx, caller, id)
	p, _ := args.Get(0).(*domain.PayLater)
	return p, args.Error(1)
}

func (m *mockPayLater) MarkPaid(ctx context.Context, caller domain.Identity, id uuid.UUID) (*service.Settlement, error) {
	args := m.Called(ctx, caller, id)
	s, _ := args.Get(0).(*service.Settlement)
	return s, args.Error(1)
}

func (m *mockPayLater) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPayLater) DeleteAll(ctx context.Context, isPaid *bool) (int64, error) {
	args := m.Called(ctx, isPaid)
	return args.Get(0).(int64), args.Error(1)
}

type mockReports struct{ mock.Mock }

func (m *mockReports) Run(ctx context.Context, kind report.Kind, start, end *time.Time) (*service.ReportResult, error) {
	args := m.Called(ctx, kind, start, end)
	r, _ := args.Get(0).(*service.ReportResult)
	return r, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUsers) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]domain.User)
	return u, args.Error(1)
}

func (m *mockUsers) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, in service.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUsers) Update(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, id, in)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type stubHealth struct{ err error }

func (s stubHealth) Health(context.Context) error { return s.err }
