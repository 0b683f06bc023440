package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Enumerations
const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"

	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"

	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentApplePay PaymentMethod = "Apple Pay"
	PaymentOther    PaymentMethod = "Other"
	PaymentPayLater PaymentMethod = "Pay Later"
)

type UserRole string
type UserStatus string
type PaymentMethod string

// PaymentMethods lists every accepted method in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentApplePay, PaymentOther, PaymentPayLater}

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

type User struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            string
	Role             UserRole
	Status           UserStatus
	ShopID           *uuid.UUID
	ShopName         string
	CanEditEntries   bool
	CanDeleteEntries bool
	PasswordHash     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u User) IsActive() bool {
	return u.Status != StatusInactive
}

type Shop struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Phone     string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShopStats is the lifetime summary shown on a shop detail page.
type ShopStats struct {
	TotalRevenue decimal.Decimal
	TotalEntries int
	BarberCount  int
}

type Service struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry is a completed, paid client visit.
type Entry struct {
	ID            uuid.UUID
	ClientNumber  string
	StaffID       uuid.UUID
	StaffName     string
	ShopID        *uuid.UUID
	ShopName      string
	Date          time.Time
	Time          string
	PaymentMethod PaymentMethod
	TotalAmount   decimal.Decimal
	Services      []EntryService
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EntryService is one line item of an entry with the price charged at sale time.
type EntryService struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	Price       decimal.Decimal
}

// LineTotal sums the snapshot prices of the entry's line items.
func (e Entry) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range e.Services {
		total = total.Add(s.Price)
	}
	return total
}

// PayLater is a deferred-payment promise recorded at the point of sale.
type PayLater struct {
	ID            uuid.UUID
	StaffID       uuid.UUID
	StaffName     string
	ShopID        *uuid.UUID
	ShopName      string
	CustomerName  string
	CustomerPhone string
	Amount        decimal.Decimal
	Date          time.Time
	Time          string
	ServiceIDs    []uuid.UUID
	IsPaid        bool
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
