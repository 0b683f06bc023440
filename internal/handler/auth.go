package handler

import (
	"net/http"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/server/authctx"
	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Service Authenticator
}

func (h AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "login", err)
		return
	}
	res, err := h.Service.Login(r.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt.UTC().Format(time.RFC3339),
		"user":      toUser(res.User),
	})
}

func identityFrom(r *http.Request) domain.Identity {
	return authctx.FromContext(r.Context())
}
