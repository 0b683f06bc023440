package service

import (
	"strings"

	"barbershop-backend/internal/domain"
	"github.com/ttacon/libphonenumber"
)

// NormalizePhone validates a customer number against region and returns it in
// E.164 form.
func NormalizePhone(phone, region string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", domain.Validation("customerPhone is required")
	}
	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return "", domain.Validation("customerPhone is not a valid phone number")
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", domain.Validation("customerPhone is not a valid phone number")
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
