package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HomeHandler struct {
	Version string
}

func (h HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
}

func (h HomeHandler) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Barbershop API",
		"version": h.Version,
		"endpoints": map[string]string{
			"auth":     "/api/auth",
			"users":    "/api/users",
			"shops":    "/api/shops",
			"services": "/api/services",
			"entries":  "/api/entries",
			"payLater": "/api/paylater",
			"reports":  "/api/reports",
			"health":   "/health",
			"docs":     "/docs",
		},
	})
}
