package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserHandler struct {
	Service UserDirectory
}

// RegisterRoutes mounts the routes any signed-in user may call.
func (h UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users/me", h.me)
}

func (h UserHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.list)
	r.Post("/users", h.create)
	r.Get("/users/{id}", h.get)
	r.Put("/users/{id}", h.update)
	r.Delete("/users/{id}", h.delete)
}

// optionalID tells an omitted id apart from an explicit null.
type optionalID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		o.Value = nil
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.Validation("invalid shopId")
	}
	o.Value = &id
	return nil
}

type createUserRequest struct {
	Name             string  `json:"name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=6"`
	Phone            string  `json:"phone"`
	Role             string  `json:"role" validate:"required,oneof=admin staff"`
	Status           string  `json:"status" validate:"omitempty,oneof=active inactive"`
	ShopID           *string `json:"shopId" validate:"omitempty,uuid"`
	CanEditEntries   bool    `json:"canEditEntries"`
	CanDeleteEntries bool    `json:"canDeleteEntries"`
}

type updateUserRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=1"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	Password         *string    `json:"password"`
	Phone            *string    `json:"phone"`
	Role             *string    `json:"role" validate:"omitempty,oneof=admin staff"`
	Status           *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	ShopID           optionalID `json:"shopId"`
	CanEditEntries   *bool      `json:"canEditEntries"`
	CanDeleteEntries *bool      `json:"canDeleteEntries"`
}

func (h UserHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.Me(r.Context(), identityFrom(r))
	if err != nil {
		writeServiceError(w, r, "users.me", err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

func (h UserHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "users.list", err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h UserHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "users.get", err)
		return
	}
	user, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "users.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

func (h UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "users.create", err)
		return
	}
	shopID, err := parseOptionalID(req.ShopID, "shopId")
	if err != nil {
		writeServiceError(w, r, "users.create", err)
		return
	}
	user, err := h.Service.Create(r.Context(), service.CreateUserInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		Role:             domain.UserRole(req.Role),
		Status:           domain.UserStatus(req.Status),
		ShopID:           shopID,
		CanEditEntries:   req.CanEditEntries,
		CanDeleteEntries: req.CanDeleteEntries,
	})
	if err != nil {
		writeServiceError(w, r, "users.create", err)
		return
	}
	writeMessage(w, http.StatusCreated, "User created", toUser(*user))
}

func (h UserHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "users.update", err)
		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "users.update", err)
		return
	}
	in := service.UpdateUserInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		SetShop:          req.ShopID.Set,
		ShopID:           req.ShopID.Value,
		CanEditEntries:   req.CanEditEntries,
		CanDeleteEntries: req.CanDeleteEntries,
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		in.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		in.Status = &status
	}
	user, err := h.Service.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, "users.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}

func (h UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeServiceError(w, r, "users.delete", err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "users.delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted", nil)
}
