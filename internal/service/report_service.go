package service

import (
	"context"
	"fmt"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/report"
	"barbershop-backend/internal/repository"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	Entries  EntryStore
	PayLater PayLaterStore
	Now      func() time.Time
}

type ReportResult struct {
	Definition    report.Definition
	Range         domain.DateRange
	Summary       report.Summary
	LoanRemaining decimal.Decimal
}

// Run computes a report of the given kind over [start, end]. Only settled
// entries count as revenue; unpaid promises appear only as loan remaining,
// which every kind reports.
func (s ReportService) Run(ctx context.Context, kind report.Kind, start, end *time.Time) (*ReportResult, error) {
	def, ok := report.Lookup(kind)
	if !ok {
		return nil, domain.NotFound(fmt.Sprintf("Unknown report %q", kind))
	}
	window := def.Window(s.now(), start, end)
	if err := window.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.Entries.List(ctx, repository.EntryFilter{Range: window})
	if err != nil {
		return nil, err
	}

	loan, err := s.PayLater.UnpaidTotal(ctx, repository.PayLaterFilter{})
	if err != nil {
		return nil, err
	}
	return &ReportResult{
		Definition:    def,
		Range:         window,
		Summary:       report.Aggregate(entries, def.Groupings),
		LoanRemaining: loan,
	}, nil
}

func (s ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
