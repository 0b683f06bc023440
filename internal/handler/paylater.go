package handler

import (
	"net/http"

	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type PayLaterHandler struct {
	Service PayLaterLedger
}

func (h PayLaterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/paylater", h.list)
	r.Post("/paylater", h.create)
	r.Get("/paylater/unpaid", h.unpaid)
	r.Get("/paylater/{id}", h.get)
	r.Put("/paylater/{id}/mark-paid", h.markPaid)
}

func (h PayLaterHandler) RegisterAdminRoutes(r chi.Router) {
	r.Delete("/paylater/{id}", h.delete)
	r.Delete("/paylater", h.deleteAll)
}

type createPayLaterRequest struct {
	StaffID       *string          `json:"staffId" validate:"omitempty,uuid"`
	ShopID        *string          `json:"shopId" validate:"omitempty,uuid"`
	CustomerName  string           `json:"customerName" validate:"required"`
	CustomerPhone string           `json:"customerPhone" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Date          string           `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string           `json:"time" validate:"required,hhmm"`
	ServiceIDs    []string         `json:"serviceIds" validate:"omitempty,dive,uuid"`
}

func (req createPayLaterRequest) input() (service.CreatePayLaterInput, error) {
	var in service.CreatePayLaterInput
	var err error
	if in.StaffID, err = parseOptionalID(req.StaffID, "staffId"); err != nil {
		return in, err
	}
	if in.ShopID, err = parseOptionalID(req.ShopID, "shopId"); err != nil {
		return in, err
	}
	if in.ServiceIDs, err = parseIDs(req.ServiceIDs); err != nil {
		return in, err
	}
	if in.Date, err = parseDate(req.Date); err != nil {
		return in, err
	}
	in.CustomerName = req.CustomerName
	in.CustomerPhone = req.CustomerPhone
	in.Amount = *req.Amount
	in.Time = req.Time
	return in, nil
}

func payLaterQuery(r *http.Request) (service.PayLaterQuery, error) {
	var q service.PayLaterQuery
	var err error
	if q.StaffID, err = queryID(r, "staffId"); err != nil {
		return q, err
	}
	q.ShopID, err = queryID(r, "shopId")
	return q, err
}

func (h PayLaterHandler) list(w http.ResponseWriter, r *http.Request) {
	q, err := payLaterQuery(r)
	if err != nil {
		writeServiceError(w, r, "paylater.list", err)
		return
	}
	items, err := h.Service.List(r.Context(), identityFrom(r), q)
	if err != nil {
		writeServiceError(w, r, "paylater.list", err)
		return
	}
	out := make([]payLaterResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPayLater(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h PayLaterHandler) unpaid(w http.ResponseWriter, r *http.Request) {
	q, err := payLaterQuery(r)
	if err != nil {
		writeServiceError(w, r, "paylater.unpaid", err)
		return
	}
	summary, err := h.Service.Unpaid(r.Context(), identityFrom(r), q)
	if err != nil {
		writeServiceError(w, r, "paylater.unpaid", err)
		return
	}
	out := make([]payLaterResponse, 0, len(summary.Entries))
	for _, p := range summary.Entries {
		out = append(out, toPayLater(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries":     out,
		"totalUnpaid": money(summary.TotalUnpaid),
	})
}

func (h PayLaterHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "paylater.get", err)
		return
	}
	item, err := h.Service.Get(r.Context(), identityFrom(r), id)
	if err != nil {
		writeServiceError(w, r, "paylater.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toPayLater(*item))
}

func (h PayLaterHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPayLaterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "paylater.create", err)
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, "paylater.create", err)
		return
	}
	item, err := h.Service.Create(r.Context(), identityFrom(r), in)
	if err != nil {
		writeServiceError(w, r, "paylater.create", err)
		return
	}
	writeMessage(w, http.StatusCreated, "Pay later entry created", toPayLater(*item))
}

func (h PayLaterHandler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "paylater.markPaid", err)
		return
	}
	res, err := h.Service.MarkPaid(r.Context(), identityFrom(r), id)
	if err != nil {
		writeServiceError(w, r, "paylater.markPaid", err)
		return
	}
	writeMessage(w, http.StatusOK, "Marked as paid", map[string]any{
		"payLater": toPayLater(res.PayLater),
		"entry":    toEntry(res.Entry),
	})
}

func (h PayLaterHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "paylater.delete", err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "paylater.delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "Pay later entry deleted", nil)
}

func (h PayLaterHandler) deleteAll(w http.ResponseWriter, r *http.Request) {
	isPaid, err := queryBool(r, "isPaid")
	if err != nil {
		writeServiceError(w, r, "paylater.deleteAll", err)
		return
	}
	n, err := h.Service.DeleteAll(r.Context(), isPaid)
	if err != nil {
		writeServiceError(w, r, "paylater.deleteAll", err)
		return
	}
	writeMessage(w, http.StatusOK, "Pay later entries deleted", map[string]int64{"deletedCount": n})
}
