// Package report turns persisted entries into revenue and usage summaries.
// Every report kind runs the same Aggregate pipeline with a different window
// and set of groupings.
package report

import (
	"sort"

	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grouping selects the optional sub-computations of a summary.
type Grouping uint8

const (
	GroupPaymentMethod Grouping = 1 << iota
	GroupServiceUsage
	GroupDailySales
	GroupStaffRevenue

	GroupAll = GroupPaymentMethod | GroupServiceUsage | GroupDailySales | GroupStaffRevenue
)

func (g Grouping) Has(o Grouping) bool { return g&o == o }

// PaymentBreakdown sums revenue per payment method. Pay Later is kept as its
// own bucket so the buckets always add up to the total.
type PaymentBreakdown struct {
	Cash     decimal.Decimal
	Card     decimal.Decimal
	ApplePay decimal.Decimal
	Other    decimal.Decimal
	PayLater decimal.Decimal
}

func (p PaymentBreakdown) Total() decimal.Decimal {
	return p.Cash.Add(p.Card).Add(p.ApplePay).Add(p.Other).Add(p.PayLater)
}

func (p *PaymentBreakdown) add(m domain.PaymentMethod, amount decimal.Decimal) {
	switch m {
	case domain.PaymentCash:
		p.Cash = p.Cash.Add(amount)
	case domain.PaymentCard:
		p.Card = p.Card.Add(amount)
	case domain.PaymentApplePay:
		p.ApplePay = p.ApplePay.Add(amount)
	case domain.PaymentPayLater:
		p.PayLater = p.PayLater.Add(amount)
	default:
		p.Other = p.Other.Add(amount)
	}
}

type ServiceCount struct {
	ServiceName string
	Count       int
}

type DailySale struct {
	Date    string
	Revenue decimal.Decimal
}

type StaffRevenue struct {
	StaffID uuid.UUID
	Name    string
	Revenue decimal.Decimal
	Entries int
}

// Summary is the result of one aggregation run. Sections whose grouping was
// not requested stay empty.
type Summary struct {
	TotalEntries      int
	TotalRevenue      decimal.Decimal
	ServicesPerformed int

	Payments PaymentBreakdown

	ServiceUsage    []ServiceCount
	MostUsedService *ServiceCount

	DailySales []DailySale

	StaffRevenue []StaffRevenue
	TopStaff     *StaffRevenue
}

// Aggregate folds entries into a Summary. Entries are visited in (date,
// client number) order so "first seen" is stable regardless of input order;
// top selections keep the first-seen maximum on ties.
func Aggregate(entries []domain.Entry, groupings Grouping) Summary {
	ordered := make([]domain.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return clientNumberLess(ordered[i].ClientNumber, ordered[j].ClientNumber)
	})

	s := Summary{TotalRevenue: decimal.Zero}

	usageIdx := map[string]int{}
	dailyIdx := map[string]int{}
	staffIdx := map[uuid.UUID]int{}

	for _, e := range ordered {
		s.TotalEntries++
		s.TotalRevenue = s.TotalRevenue.Add(e.TotalAmount)
		s.ServicesPerformed += len(e.Services)

		if groupings.Has(GroupPaymentMethod) {
			s.Payments.add(e.PaymentMethod, e.TotalAmount)
		}

		if groupings.Has(GroupServiceUsage) {
			for _, es := range e.Services {
				i, ok := usageIdx[es.ServiceName]
				if !ok {
					i = len(s.ServiceUsage)
					usageIdx[es.ServiceName] = i
					s.ServiceUsage = append(s.ServiceUsage, ServiceCount{ServiceName: es.ServiceName})
				}
				s.ServiceUsage[i].Count++
			}
		}

		if groupings.Has(GroupDailySales) {
			day := e.Date.Format(domain.DateLayout)
			i, ok := dailyIdx[day]
			if !ok {
				i = len(s.DailySales)
				dailyIdx[day] = i
				s.DailySales = append(s.DailySales, DailySale{Date: day, Revenue: decimal.Zero})
			}
			s.DailySales[i].Revenue = s.DailySales[i].Revenue.Add(e.TotalAmount)
		}

		if groupings.Has(GroupStaffRevenue) {
			i, ok := staffIdx[e.StaffID]
			if !ok {
				i = len(s.StaffRevenue)
				staffIdx[e.StaffID] = i
				s.StaffRevenue = append(s.StaffRevenue, StaffRevenue{StaffID: e.StaffID, Name: e.StaffName, Revenue: decimal.Zero})
			}
			s.StaffRevenue[i].Revenue = s.StaffRevenue[i].Revenue.Add(e.TotalAmount)
			s.StaffRevenue[i].Entries++
		}
	}

	// ISO dates sort lexically.
	sort.SliceStable(s.DailySales, func(i, j int) bool { return s.DailySales[i].Date < s.DailySales[j].Date })

	s.MostUsedService = top(s.ServiceUsage, func(c ServiceCount) decimal.Decimal { return decimal.NewFromInt(int64(c.Count)) })
	s.TopStaff = top(s.StaffRevenue, func(r StaffRevenue) decimal.Decimal { return r.Revenue })
	return s
}

// clientNumberLess orders client numbers by their numeric suffix so C-10000
// follows C-9999. Unparseable numbers fall back to a string compare.
func clientNumberLess(a, b string) bool {
	na, okA := domain.ParseClientNumber(a)
	nb, okB := domain.ParseClientNumber(b)
	if okA && okB && na != nb {
		return na < nb
	}
	return a < b
}

// top scans items in order and returns the first one whose score is strictly
// greater than every earlier score. Zero scores never win.
func top[T any](items []T, score func(T) decimal.Decimal) *T {
	var (
		best    *T
		bestVal = decimal.Zero
	)
	for i := range items {
		if v := score(items[i]); v.GreaterThan(bestVal) {
			bestVal = v
			best = &items[i]
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}
