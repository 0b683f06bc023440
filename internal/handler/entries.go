package handler

import (
	"net/http"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type EntryHandler struct {
	Service EntryLedger
}

func (h EntryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/entries", h.list)
	r.Post("/entries", h.create)
	r.Get("/entries/{id}", h.get)
	r.Put("/entries/{id}", h.update)
	r.Delete("/entries/{id}", h.delete)
}

type createEntryRequest struct {
	StaffID       *string  `json:"staffId" validate:"omitempty,uuid"`
	ServiceIDs    []string `json:"serviceIds" validate:"required,min=1,dive,uuid"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string   `json:"time" validate:"required,hhmm"`
	PaymentMethod string   `json:"paymentMethod" validate:"required"`
}

type updateEntryRequest struct {
	StaffID       *string  `json:"staffId" validate:"omitempty,uuid"`
	ServiceIDs    []string `json:"serviceIds" validate:"omitempty,dive,uuid"`
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time          *string  `json:"time" validate:"omitempty,hhmm"`
	PaymentMethod *string  `json:"paymentMethod"`
}

func (h EntryHandler) list(w http.ResponseWriter, r *http.Request) {
	q, err := entryQuery(r)
	if err != nil {
		writeServiceError(w, r, "entries.list", err)
		return
	}
	entries, err := h.Service.List(r.Context(), identityFrom(r), q)
	if err != nil {
		writeServiceError(w, r, "entries.list", err)
		return
	}
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func entryQuery(r *http.Request) (service.EntryQuery, error) {
	var q service.EntryQuery
	var err error
	if q.StaffID, err = queryID(r, "staffId"); err != nil {
		return q, err
	}
	if q.ShopID, err = queryID(r, "shopId"); err != nil {
		return q, err
	}
	start, end, err := parseRangeQuery(r)
	if err != nil {
		return q, err
	}
	q.Range = domain.NewDateRange(start, end)
	return q, nil
}

func (h EntryHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "entries.get", err)
		return
	}
	entry, err := h.Service.Get(r.Context(), identityFrom(r), id)
	if err != nil {
		writeServiceError(w, r, "entries.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntry(*entry))
}

func (h EntryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "entries.create", err)
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, "entries.create", err)
		return
	}
	entry, err := h.Service.Create(r.Context(), identityFrom(r), in)
	if err != nil {
		writeServiceError(w, r, "entries.create", err)
		return
	}
	writeMessage(w, http.StatusCreated, "Entry created", toEntry(*entry))
}

func (req createEntryRequest) input() (service.CreateEntryInput, error) {
	staffID, err := parseOptionalID(req.StaffID, "staffId")
	if err != nil {
		return service.CreateEntryInput{}, err
	}
	ids, err := parseIDs(req.ServiceIDs)
	if err != nil {
		return service.CreateEntryInput{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return service.CreateEntryInput{}, err
	}
	return service.CreateEntryInput{
		StaffID:       staffID,
		ServiceIDs:    ids,
		Date:          date,
		Time:          req.Time,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}, nil
}

func (h EntryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "entries.update", err)
		return
	}
	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "entries.update", err)
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, "entries.update", err)
		return
	}
	entry, err := h.Service.Update(r.Context(), identityFrom(r), id, in)
	if err != nil {
		writeServiceError(w, r, "entries.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntry(*entry))
}

func (req updateEntryRequest) input() (service.UpdateEntryInput, error) {
	var in service.UpdateEntryInput
	var err error
	if in.StaffID, err = parseOptionalID(req.StaffID, "staffId"); err != nil {
		return in, err
	}
	if in.ServiceIDs, err = parseIDs(req.ServiceIDs); err != nil {
		return in, err
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return in, err
		}
		in.Date = &date
	}
	in.Time = req.Time
	if req.PaymentMethod != nil {
		pm := domain.PaymentMethod(*req.PaymentMethod)
		in.PaymentMethod = &pm
	}
	return in, nil
}

func (h EntryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "entries.delete", err)
		return
	}
	if err := h.Service.Delete(r.Context(), identityFrom(r), id); err != nil {
		writeServiceError(w, r, "entries.delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "Entry deleted", nil)
}
