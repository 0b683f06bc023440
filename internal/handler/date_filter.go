package handler

import (
	"net/http"
	"time"

	"barbershop-backend/internal/domain"
)

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, domain.Validationf("%s must be in format YYYY-MM-DD", key)
	}
	return &parsed, nil
}

// parseRangeQuery reads startDate/endDate into a validated, day-aligned range.
func parseRangeQuery(r *http.Request) (start, end *time.Time, err error) {
	if start, err = parseDateQuery(r, "startDate"); err != nil {
		return nil, nil, err
	}
	if end, err = parseDateQuery(r, "endDate"); err != nil {
		return nil, nil, err
	}
	if err := domain.NewDateRange(start, end).Validate(); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
