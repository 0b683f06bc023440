package handler

import (
	"net/http"

	"barbershop-backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ServiceHandler exposes the service catalog. Reading it needs no login.
type ServiceHandler struct {
	Service ServiceCatalog
}

func (h ServiceHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/services", h.list)
	r.Get("/services/{id}", h.get)
}

func (h ServiceHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/services", h.create)
	r.Put("/services/{id}", h.update)
	r.Delete("/services/{id}", h.delete)
}

type createServiceRequest struct {
	Name  string           `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

type updateServiceRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1"`
	Price *decimal.Decimal `json:"price"`
}

func (h ServiceHandler) list(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "services.list", err)
		return
	}
	out := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toService(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h ServiceHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "services.get", err)
		return
	}
	svc, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "services.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toService(*svc))
}

func (h ServiceHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "services.create", err)
		return
	}
	svc, err := h.Service.Create(r.Context(), req.Name, *req.Price)
	if err != nil {
		writeServiceError(w, r, "services.create", err)
		return
	}
	writeMessage(w, http.StatusCreated, "Service created", toService(*svc))
}

func (h ServiceHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "services.update", err)
		return
	}
	var req updateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "services.update", err)
		return
	}
	svc, err := h.Service.Update(r.Context(), id, repository.UpdateServiceParams{Name: req.Name, Price: req.Price})
	if err != nil {
		writeServiceError(w, r, "services.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toService(*svc))
}

func (h ServiceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "services.delete", err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "services.delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "Service deleted", nil)
}
