package handler

import (
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"barbershop-backend/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	ShopID           *uuid.UUID `json:"shopId"`
	ShopName         string     `json:"shopName,omitempty"`
	CanEditEntries   bool       `json:"canEditEntries"`
	CanDeleteEntries bool       `json:"canDeleteEntries"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func toUser(u domain.User) userResponse {
	return userResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             string(u.Role),
		Status:           string(u.Status),
		ShopID:           u.ShopID,
		ShopName:         u.ShopName,
		CanEditEntries:   u.CanEditEntries,
		CanDeleteEntries: u.CanDeleteEntries,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

type shopResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	Image     string     `json:"image"`
	Stats     *shopStats `json:"stats,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type shopStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalEntries int     `json:"totalEntries"`
	BarberCount  int     `json:"barberCount"`
}

func toShop(s domain.Shop) shopResponse {
	return shopResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Image:     s.Image,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toShopDetail(d service.ShopDetail) shopResponse {
	resp := toShop(d.Shop)
	resp.Stats = &shopStats{
		TotalRevenue: money(d.Stats.TotalRevenue),
		TotalEntries: d.Stats.TotalEntries,
		BarberCount:  d.Stats.BarberCount,
	}
	return resp
}

type serviceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toService(s domain.Service) serviceResponse {
	return serviceResponse{ID: s.ID, Name: s.Name, Price: money(s.Price), CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

type lineItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Price       float64   `json:"price"`
}

type entryResponse struct {
	ID            uuid.UUID          `json:"id"`
	ClientNumber  string             `json:"clientNumber"`
	StaffID       uuid.UUID          `json:"staffId"`
	StaffName     string             `json:"staffName"`
	ShopID        *uuid.UUID         `json:"shopId"`
	ShopName      string             `json:"shopName,omitempty"`
	Date          string             `json:"date"`
	Time          string             `json:"time"`
	PaymentMethod string             `json:"paymentMethod"`
	TotalAmount   float64            `json:"totalAmount"`
	Services      []lineItemResponse `json:"services"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func toEntry(e domain.Entry) entryResponse {
	items := make([]lineItemResponse, 0, len(e.Services))
	for _, s := range e.Services {
		items = append(items, lineItemResponse{ID: s.ID, ServiceID: s.ServiceID, ServiceName: s.ServiceName, Price: money(s.Price)})
	}
	return entryResponse{
		ID:            e.ID,
		ClientNumber:  e.ClientNumber,
		StaffID:       e.StaffID,
		StaffName:     e.StaffName,
		ShopID:        e.ShopID,
		ShopName:      e.ShopName,
		Date:          e.Date.Format(domain.DateLayout),
		Time:          e.Time,
		PaymentMethod: string(e.PaymentMethod),
		TotalAmount:   money(e.TotalAmount),
		Services:      items,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type payLaterResponse struct {
	ID            uuid.UUID   `json:"id"`
	StaffID       uuid.UUID   `json:"staffId"`
	StaffName     string      `json:"staffName"`
	ShopID        *uuid.UUID  `json:"shopId"`
	ShopName      string      `json:"shopName,omitempty"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Amount        float64     `json:"amount"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	ServiceIDs    []uuid.UUID `json:"serviceIds"`
	IsPaid        bool        `json:"isPaid"`
	PaidAt        *time.Time  `json:"paidAt"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func toPayLater(p domain.PayLater) payLaterResponse {
	ids := p.ServiceIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return payLaterResponse{
		ID:            p.ID,
		StaffID:       p.StaffID,
		StaffName:     p.StaffName,
		ShopID:        p.ShopID,
		ShopName:      p.ShopName,
		CustomerName:  p.CustomerName,
		CustomerPhone: p.CustomerPhone,
		Amount:        money(p.Amount),
		Date:          p.Date.Format(domain.DateLayout),
		Time:          p.Time,
		ServiceIDs:    ids,
		IsPaid:        p.IsPaid,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// paymentsResponse is flattened into every report. payLaterPayments keeps the
// buckets summing to the total.
type paymentsResponse struct {
	CashPayments     float64 `json:"cashPayments"`
	CardPayments     float64 `json:"cardPayments"`
	ApplePayPayments float64 `json:"applePayPayments"`
	OtherPayments    float64 `json:"otherPayments"`
	PayLaterPayments float64 `json:"payLaterPayments"`
}

type reportWindow struct {
	Kind          string  `json:"kind"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	LoanRemaining float64 `json:"loanRemaining"`
}

type serviceCountResponse struct {
	ServiceName string `json:"serviceName"`
	Count       int    `json:"count"`
}

type dailySaleResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type staffRevenueResponse struct {
	StaffID uuid.UUID `json:"staffId"`
	Name    string    `json:"name"`
	Revenue float64   `json:"revenue"`
	Entries int       `json:"entries"`
}

// statsResponse is the dashboard summary; its totals carry the "Today" suffix
// the dashboard reads even when a custom range is given.
type statsResponse struct {
	reportWindow
	TotalCustomersToday    int     `json:"totalCustomersToday"`
	TotalRevenueToday      float64 `json:"totalRevenueToday"`
	TotalServicesPerformed int     `json:"totalServicesPerformed"`
	paymentsResponse
}

type reportResponse struct {
	reportWindow
	TotalCustomers         int     `json:"totalCustomers"`
	TotalRevenue           float64 `json:"totalRevenue"`
	TotalServicesPerformed int     `json:"totalServicesPerformed"`
	paymentsResponse
	ServiceUsage         []serviceCountResponse `json:"serviceUsage,omitempty"`
	MostUsedService      *string                `json:"mostUsedService,omitempty"`
	MostRequestedService *string                `json:"mostRequestedService,omitempty"`
	DailySales           []dailySaleResponse    `json:"dailySales,omitempty"`
	StaffPerformance     []staffRevenueResponse `json:"staffPerformance,omitempty"`
	TopBarber            *string                `json:"topBarber,omitempty"`
}

func toReport(res service.ReportResult) any {
	s := res.Summary
	win := reportWindow{
		Kind:          string(res.Definition.Kind),
		LoanRemaining: money(res.LoanRemaining),
	}
	if res.Range.HasStart() {
		win.StartDate = res.Range.Start.Format(domain.DateLayout)
	}
	if res.Range.HasEnd() {
		win.EndDate = res.Range.End.Format(domain.DateLayout)
	}
	payments := paymentsResponse{
		CashPayments:     money(s.Payments.Cash),
		CardPayments:     money(s.Payments.Card),
		ApplePayPayments: money(s.Payments.ApplePay),
		OtherPayments:    money(s.Payments.Other),
		PayLaterPayments: money(s.Payments.PayLater),
	}

	if res.Definition.Kind == report.KindStats {
		return statsResponse{
			reportWindow:           win,
			TotalCustomersToday:    s.TotalEntries,
			TotalRevenueToday:      money(s.TotalRevenue),
			TotalServicesPerformed: s.ServicesPerformed,
			paymentsResponse:       payments,
		}
	}

	out := reportResponse{
		reportWindow:           win,
		TotalCustomers:         s.TotalEntries,
		TotalRevenue:           money(s.TotalRevenue),
		TotalServicesPerformed: s.ServicesPerformed,
		paymentsResponse:       payments,
	}
	for _, c := range s.ServiceUsage {
		out.ServiceUsage = append(out.ServiceUsage, serviceCountResponse{ServiceName: c.ServiceName, Count: c.Count})
	}
	if s.MostUsedService != nil {
		name := s.MostUsedService.ServiceName
		out.MostUsedService = &name
		if res.Definition.Kind == report.KindMonthly {
			out.MostRequestedService = &name
		}
	}
	for _, d := range s.DailySales {
		out.DailySales = append(out.DailySales, dailySaleResponse{Date: d.Date, Revenue: money(d.Revenue)})
	}
	for _, r := range s.StaffRevenue {
		out.StaffPerformance = append(out.StaffPerformance, staffRevenueResponse{
			StaffID: r.StaffID, Name: r.Name, Revenue: money(r.Revenue), Entries: r.Entries,
		})
	}
	if s.TopStaff != nil {
		name := s.TopStaff.Name
		out.TopBarber = &name
	}
	return out
}

// money renders an amount as a JSON number rounded to cents.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
