package service

import (
	"context"
	"regexp"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
)

var timeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type EntryService struct {
	Entries EntryStore
	Users   UserStore
	Events  EventRecorder
}

type CreateEntryInput struct {
	StaffID       *uuid.UUID
	ServiceIDs    []uuid.UUID
	Date          time.Time
	Time          string
	PaymentMethod domain.PaymentMethod
}

type UpdateEntryInput struct {
	StaffID       *uuid.UUID
	ServiceIDs    []uuid.UUID
	Date          *time.Time
	Time          *string
	PaymentMethod *domain.PaymentMethod
}

type EntryQuery struct {
	StaffID *uuid.UUID
	ShopID  *uuid.UUID
	Range   domain.DateRange
}

// Create records a visit. Staff callers always record against themselves.
func (s EntryService) Create(ctx context.Context, caller domain.Identity, in CreateEntryInput) (*domain.Entry, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	staffID := domain.ScopeFor(caller).StaffFilter(in.StaffID)
	if staffID == nil {
		return nil, domain.Validation("staffId is required")
	}
	if len(in.ServiceIDs) == 0 {
		return nil, domain.Validation("at least one service is required")
	}
	if !in.PaymentMethod.Valid() {
		return nil, domain.Validationf("invalid payment method %q", in.PaymentMethod)
	}
	if !timeOfDay.MatchString(in.Time) {
		return nil, domain.Validation("time must be HH:MM")
	}

	entry, err := s.Entries.Create(ctx, repository.CreateEntryParams{
		StaffID:       *staffID,
		ServiceIDs:    in.ServiceIDs,
		Date:          in.Date,
		Time:          in.Time,
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}
	recorderOrNoop(s.Events).EntryCreated(entry.PaymentMethod)
	return entry, nil
}

// List applies the caller's scope; a staff caller never sees other staff rows
// whatever filter was requested.
func (s EntryService) List(ctx context.Context, caller domain.Identity, q EntryQuery) ([]domain.Entry, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	if err := q.Range.Validate(); err != nil {
		return nil, err
	}
	scope := domain.ScopeFor(caller)
	return s.Entries.List(ctx, repository.EntryFilter{
		StaffID: scope.StaffFilter(q.StaffID),
		ShopID:  q.ShopID,
		Range:   q.Range,
	})
}

func (s EntryService) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (*domain.Entry, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	entry, err := s.Entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ScopeFor(caller).Owns(entry.StaffID) {
		return nil, domain.NotAuthorized("Not authorized")
	}
	return entry, nil
}

func (s EntryService) Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in UpdateEntryInput) (*domain.Entry, error) {
	entry, err := s.authorizeChange(ctx, caller, id, func(u domain.User) bool { return u.CanEditEntries })
	if err != nil {
		return nil, err
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return nil, domain.Validationf("invalid payment method %q", *in.PaymentMethod)
	}
	if in.Time != nil && !timeOfDay.MatchString(*in.Time) {
		return nil, domain.Validation("time must be HH:MM")
	}
	if in.ServiceIDs != nil && len(in.ServiceIDs) == 0 {
		return nil, domain.Validation("at least one service is required")
	}
	staffID := in.StaffID
	if !caller.IsAdmin() {
		// Staff may edit their own entries but not reassign them.
		staffID = nil
	}
	return s.Entries.Update(ctx, entry.ID, repository.UpdateEntryParams{
		StaffID:       staffID,
		Date:          in.Date,
		Time:          in.Time,
		PaymentMethod: in.PaymentMethod,
		ServiceIDs:    in.ServiceIDs,
	})
}

func (s EntryService) Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	entry, err := s.authorizeChange(ctx, caller, id, func(u domain.User) bool { return u.CanDeleteEntries })
	if err != nil {
		return err
	}
	return s.Entries.Delete(ctx, entry.ID)
}

// authorizeChange allows admins, or the owning staff member holding the
// permission flag checked by allowed.
func (s EntryService) authorizeChange(ctx context.Context, caller domain.Identity, id uuid.UUID, allowed func(domain.User) bool) (*domain.Entry, error) {
	if caller.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	entry, err := s.Entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.IsAdmin() {
		return entry, nil
	}
	if entry.StaffID != caller.UserID {
		return nil, domain.NotAuthorized("Not authorized")
	}
	user, err := s.Users.GetByID(ctx, caller.UserID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NotAuthorized("Not authorized")
		}
		return nil, err
	}
	if !allowed(*user) {
		return nil, domain.NotAuthorized("You do not have permission to change entries")
	}
	return entry, nil
}
