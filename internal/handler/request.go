package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"barbershop-backend/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil && len(fl.Field().String()) == 5
	})
	return v
}

// decodeJSON reads and validates a request body.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return domain.Validation(validationMessage(verrs))
		}
		return domain.Validation("invalid payload")
	}
	return nil
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", err.Field()))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid id", err.Field()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date in format YYYY-MM-DD", err.Field()))
		case "hhmm":
			msgs = append(msgs, fmt.Sprintf("%s must be a time in format HH:MM", err.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param()))
		case "gt", "gte", "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

func urlID(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, domain.Validation("invalid id")
	}
	return id, nil
}

func queryID(r *http.Request, key string) (*uuid.UUID, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domain.Validationf("invalid %s", key)
	}
	return &id, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, domain.Validationf("invalid %s", key)
	}
	return &b, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.Validation("serviceIds must contain valid ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domain.Validationf("invalid %s", field)
	}
	return &id, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.Validation("date must be in format YYYY-MM-DD")
	}
	return t, nil
}
