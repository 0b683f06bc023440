package report

import (
	"time"

	"barbershop-backend/internal/domain"
)

type Kind string

const (
	KindStats   Kind = "stats"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// Definition binds a report kind to its default window and groupings.
type Definition struct {
	Kind         Kind
	TrailingDays int
	Groupings    Grouping
}

var definitions = map[Kind]Definition{
	KindStats:   {Kind: KindStats, Groupings: GroupPaymentMethod},
	KindDaily:   {Kind: KindDaily, Groupings: GroupPaymentMethod | GroupServiceUsage},
	KindWeekly:  {Kind: KindWeekly, TrailingDays: 7, Groupings: GroupPaymentMethod | GroupServiceUsage | GroupDailySales},
	KindMonthly: {Kind: KindMonthly, TrailingDays: 30, Groupings: GroupAll},
}

func Lookup(kind Kind) (Definition, bool) {
	d, ok := definitions[kind]
	return d, ok
}

// Window resolves the date range of a run. Missing bounds fall back to the
// kind's default window ending today.
func (d Definition) Window(now time.Time, start, end *time.Time) domain.DateRange {
	def := domain.TrailingDays(now, d.TrailingDays)
	r := domain.NewDateRange(start, end)
	if !r.HasStart() {
		r.Start = def.Start
	}
	if !r.HasEnd() {
		r.End = def.End
	}
	return r
}
