package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"barbershop-backend/internal/domain"
)

type apiError struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Kind   string `json:"kind,omitempty"`
}

type apiResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *apiError `json:"error,omitempty"`
}

func writeRawJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	writeRawJSON(w, status, apiResponse{
		Status:  "ok",
		Message: "",
		Data:    payload,
	})
}

func writeMessage(w http.ResponseWriter, status int, message string, payload any) {
	writeRawJSON(w, status, apiResponse{
		Status:  "ok",
		Message: message,
		Data:    payload,
	})
}

func writeErrorKind(w http.ResponseWriter, status int, message, kind string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	writeRawJSON(w, status, apiResponse{
		Status:  "error",
		Message: message,
		Data:    nil,
		Error: &apiError{
			Code:   status,
			Status: http.StatusText(status),
			Kind:   kind,
		},
	})
}

// StatusFor maps an error kind onto its HTTP status.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotAuthenticated:
		return http.StatusUnauthorized
	case domain.KindNotAuthorized:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindReferentialConflict, domain.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders a domain error. Anything untyped is logged and
// replaced with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		slog.ErrorContext(r.Context(), "request failed", "op", op, "method", r.Method, "path", r.URL.Path, "err", err)
		writeErrorKind(w, http.StatusInternalServerError, "Internal server error", kind.String())
		return
	}
	writeErrorKind(w, StatusFor(kind), domain.Message(err), kind.String())
}
