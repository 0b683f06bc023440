package service

import (
	"context"
	"sync"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUsers(users ...domain.User) *fakeUsers {
	f := &fakeUsers{users: map[uuid.UUID]domain.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) List(context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NotFound("User not found")
	}
	return &u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.NotFound("User not found")
}

func (f *fakeUsers) Create(_ context.Context, p repository.CreateUserParams) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == p.Email {
			return nil, domain.Conflict("Email already exists. Please use a different email address.")
		}
	}
	u := domain.User{
		ID:               uuid.New(),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Role:             p.Role,
		Status:           p.Status,
		ShopID:           p.ShopID,
		CanEditEntries:   p.CanEditEntries,
		CanDeleteEntries: p.CanDeleteEntries,
		PasswordHash:     p.PasswordHash,
	}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUsers) Update(_ context.Context, id uuid.UUID, p repository.UpdateUserParams) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NotFound("User not found")
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.CanEditEntries != nil {
		u.CanEditEntries = *p.CanEditEntries
	}
	if p.CanDeleteEntries != nil {
		u.CanDeleteEntries = *p.CanDeleteEntries
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

// fakeEntries keeps entries in memory and snapshots prices from catalog.
type fakeEntries struct {
	mu       sync.Mutex
	catalog  map[uuid.UUID]domain.Service
	entries  map[uuid.UUID]domain.Entry
	next     int
	lastList repository.EntryFilter
}

func newFakeEntries(services ...domain.Service) *fakeEntries {
	f := &fakeEntries{catalog: map[uuid.UUID]domain.Service{}, entries: map[uuid.UUID]domain.Entry{}}
	for _, s := range services {
		f.catalog[s.ID] = s
	}
	return f
}

func (f *fakeEntries) add(e domain.Entry) domain.Entry {
	f.next++
	e.ID = uuid.New()
	e.ClientNumber = domain.FormatClientNumber(f.next)
	f.entries[e.ID] = e
	return e
}

func (f *fakeEntries) Create(_ context.Context, p repository.CreateEntryParams) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := domain.Entry{StaffID: p.StaffID, Date: p.Date, Time: p.Time, PaymentMethod: p.PaymentMethod}
	for _, id := range p.ServiceIDs {
		s, ok := f.catalog[id]
		if !ok {
			return nil, domain.Validation("One or more services not found")
		}
		e.Services = append(e.Services, domain.EntryService{ServiceID: s.ID, ServiceName: s.Name, Price: s.Price})
	}
	e.TotalAmount = e.LineTotal()
	e = f.add(e)
	return &e, nil
}

func (f *fakeEntries) GetByID(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, domain.NotFound("Entry not found")
	}
	return &e, nil
}

func (f *fakeEntries) List(_ context.Context, filter repository.EntryFilter) ([]domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = filter
	var out []domain.Entry
	for _, e := range f.entries {
		if filter.StaffID != nil && e.StaffID != *filter.StaffID {
			continue
		}
		if !filter.Range.Contains(e.Date) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntries) Update(_ context.Context, id uuid.UUID, p repository.UpdateEntryParams) (*domain.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, domain.NotFound("Entry not found")
	}
	if p.PaymentMethod != nil {
		e.PaymentMethod = *p.PaymentMethod
	}
	if p.StaffID != nil {
		e.StaffID = *p.StaffID
	}
	f.entries[id] = e
	return &e, nil
}

func (f *fakeEntries) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return domain.NotFound("Entry not found")
	}
	delete(f.entries, id)
	return nil
}

type fakePayLater struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]domain.PayLater
	entries *fakeEntries
	created []repository.CreatePayLaterParams
}

func newFakePayLater(entries *fakeEntries) *fakePayLater {
	return &fakePayLater{rows: map[uuid.UUID]domain.PayLater{}, entries: entries}
}

func (f *fakePayLater) Create(_ context.Context, p repository.CreatePayLaterParams) (*domain.PayLater, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	pl := domain.PayLater{
		ID:            uuid.New(),
		StaffID:       p.StaffID,
		ShopID:        p.ShopID,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Amount:        p.Amount,
		Date:          p.Date,
		Time:          p.Time,
		ServiceIDs:    p.ServiceIDs,
	}
	f.rows[pl.ID] = pl
	return &pl, nil
}

func (f *fakePayLater) GetByID(_ context.Context, id uuid.UUID) (*domain.PayLater, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.rows[id]
	if !ok {
		return nil, domain.NotFound("Pay later entry not found")
	}
	return &pl, nil
}

func (f *fakePayLater) List(_ context.Context, filter repository.PayLaterFilter) ([]domain.PayLater, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.PayLater
	for _, pl := range f.rows {
		if filter.StaffID != nil && pl.StaffID != *filter.StaffID {
			continue
		}
		if filter.IsPaid != nil && pl.IsPaid != *filter.IsPaid {
			continue
		}
		out = append(out, pl)
	}
	return out, nil
}

func (f *fakePayLater) UnpaidTotal(ctx context.Context, filter repository.PayLaterFilter) (decimal.Decimal, error) {
	unpaid := false
	filter.IsPaid = &unpaid
	rows, _ := f.List(ctx, filter)
	total := decimal.Zero
	for _, pl := range rows {
		total = total.Add(pl.Amount)
	}
	return total, nil
}

func (f *fakePayLater) MarkPaid(_ context.Context, id uuid.UUID, authorize func(domain.PayLater) error) (*domain.PayLater, uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pl, ok := f.rows[id]
	if !ok {
		return nil, uuid.Nil, domain.NotFound("Pay later entry not found")
	}
	if err := authorize(pl); err != nil {
		return nil, uuid.Nil, err
	}
	if pl.IsPaid {
		return nil, uuid.Nil, domain.Validation("This entry is already marked as paid")
	}
	f.entries.mu.Lock()
	e := f.entries.add(domain.Entry{
		StaffID:       pl.StaffID,
		Date:          pl.Date,
		Time:          pl.Time,
		PaymentMethod: domain.PaymentPayLater,
		TotalAmount:   pl.Amount,
	})
	f.entries.mu.Unlock()
	pl.IsPaid = true
	f.rows[id] = pl
	return &pl, e.ID, nil
}

func (f *fakePayLater) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakePayLater) DeleteAll(_ context.Context, isPaid *bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, pl := range f.rows {
		if isPaid == nil || pl.IsPaid == *isPaid {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

type countingRecorder struct {
	created []domain.PaymentMethod
	settled int
}

func (c *countingRecorder) EntryCreated(m domain.PaymentMethod) { c.created = append(c.created, m) }
func (c *countingRecorder) PayLaterSettled()                    { c.settled++ }

func updateFlags(canEdit, canDelete bool) repository.UpdateUserParams {
	return repository.UpdateUserParams{CanEditEntries: &canEdit, CanDeleteEntries: &canDelete}
}

func createPayLater(staff uuid.UUID, amount string) repository.CreatePayLaterParams {
	return repository.CreatePayLaterParams{
		StaffID:       staff,
		CustomerName:  "Sam",
		CustomerPhone: "+16502530000",
		Amount:        decimal.RequireFromString(amount),
		Time:          "10:00",
	}
}
