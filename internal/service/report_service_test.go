package service

import (
	"context"
	"testing"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_StatsToday(t *testing.T) {
	now := time.Date(2024, 5, 1, 16, 0, 0, 0, time.UTC)
	today := domain.StartOfDay(now)
	staff := uuid.New()

	entries := newFakeEntries()
	for _, e := range []struct {
		amount int64
		method domain.PaymentMethod
		date   time.Time
	}{
		{5, domain.PaymentCash, today},
		{3, domain.PaymentCard, today},
		{10, domain.PaymentCash, today},
		{99, domain.PaymentCash, today.AddDate(0, 0, -1)},
	} {
		entries.add(domain.Entry{StaffID: staff, Date: e.date, PaymentMethod: e.method, TotalAmount: decimal.NewFromInt(e.amount)})
	}
	payLater := newFakePayLater(entries)
	_, _ = payLater.Create(context.Background(), createPayLater(staff, "7"))

	svc := ReportService{Entries: entries, PayLater: payLater, Now: func() time.Time { return now }}

	res, err := svc.Run(context.Background(), report.KindStats, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Summary.TotalEntries)
	assert.True(t, res.Summary.TotalRevenue.Equal(decimal.NewFromInt(18)))
	assert.True(t, res.Summary.Payments.Cash.Equal(decimal.NewFromInt(15)))
	assert.True(t, res.Summary.Payments.Card.Equal(decimal.NewFromInt(3)))
	assert.True(t, res.LoanRemaining.Equal(decimal.NewFromInt(7)))
}

func TestReportService_WeeklyWindow(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	entries := newFakeEntries()
	svc := ReportService{Entries: entries, PayLater: newFakePayLater(entries), Now: func() time.Time { return now }}

	res, err := svc.Run(context.Background(), report.KindWeekly, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), res.Range.Start)
	assert.Equal(t, domain.EndOfDay(now), entries.lastList.Range.End)
	assert.True(t, res.LoanRemaining.IsZero())
	assert.Equal(t, report.KindWeekly, res.Definition.Kind)
}

func TestReportService_LoanRemainingOnEveryKind(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	staff := uuid.New()
	entries := newFakeEntries()
	payLater := newFakePayLater(entries)
	_, _ = payLater.Create(context.Background(), createPayLater(staff, "4.5"))
	svc := ReportService{Entries: entries, PayLater: payLater, Now: func() time.Time { return now }}

	for _, kind := range []report.Kind{report.KindStats, report.KindDaily, report.KindWeekly, report.KindMonthly} {
		res, err := svc.Run(context.Background(), kind, nil, nil)
		require.NoError(t, err, kind)
		assert.True(t, res.LoanRemaining.Equal(decimal.RequireFromString("4.5")), kind)
	}
}

func TestReportService_RejectsBadInput(t *testing.T) {
	entries := newFakeEntries()
	svc := ReportService{Entries: entries, PayLater: newFakePayLater(entries)}

	_, err := svc.Run(context.Background(), report.Kind("yearly"), nil, nil)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Run(context.Background(), report.KindDaily, &start, &end)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}
