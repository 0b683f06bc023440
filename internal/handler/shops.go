package handler

import (
	"net/http"

	"barbershop-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ShopHandler struct {
	Service ShopDirectory
}

func (h ShopHandler) RegisterRoutes(r chi.Router) {
	r.Get("/shops", h.list)
	r.Get("/shops/{id}", h.get)
}

func (h ShopHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/shops", h.create)
	r.Put("/shops/{id}", h.update)
	r.Delete("/shops/{id}", h.delete)
}

type shopRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
	Image   string `json:"image"`
}

type updateShopRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Image   *string `json:"image"`
}

func (h ShopHandler) list(w http.ResponseWriter, r *http.Request) {
	shops, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "shops.list", err)
		return
	}
	out := make([]shopResponse, 0, len(shops))
	for _, s := range shops {
		out = append(out, toShop(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h ShopHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "shops.get", err)
		return
	}
	detail, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "shops.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toShopDetail(*detail))
}

func (h ShopHandler) create(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "shops.create", err)
		return
	}
	shop, err := h.Service.Create(r.Context(), repository.ShopParams{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Image:   req.Image,
	})
	if err != nil {
		writeServiceError(w, r, "shops.create", err)
		return
	}
	writeMessage(w, http.StatusCreated, "Shop created", toShop(*shop))
}

func (h ShopHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "shops.update", err)
		return
	}
	var req updateShopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "shops.update", err)
		return
	}
	shop, err := h.Service.Update(r.Context(), id, repository.UpdateShopParams{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Image:   req.Image,
	})
	if err != nil {
		writeServiceError(w, r, "shops.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toShop(*shop))
}

func (h ShopHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "shops.delete", err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "shops.delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "Shop deleted", nil)
}
