package server

import (
	"net/http"
	"strconv"
	"strings"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/server/authctx"
)

// IdentityResolver turns a bearer token into a caller identity. Bad tokens
// resolve to the anonymous identity.
type IdentityResolver interface {
	Identify(token string) domain.Identity
}

// IdentifyMiddleware attaches the caller identity to every request. It never
// rejects; protected groups add RequireAuthenticated.
func IdentifyMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id domain.Identity
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				id = resolver.Identify(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
			}
			next.ServeHTTP(w, r.WithContext(authctx.WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authctx.FromContext(r.Context()).Anonymous() {
			writeAuthError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the user has one of the allowed roles.
func RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := authctx.FromContext(r.Context())
			if id.Anonymous() {
				writeAuthError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if _, ok := allowed[id.Role]; !ok {
				writeAuthError(w, http.StatusForbidden, "Not authorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	kind := domain.KindNotAuthorized
	if status == http.StatusUnauthorized {
		kind = domain.KindNotAuthenticated
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"status":"error","message":"` + message + `","data":null,"error":{"code":` +
		strconv.Itoa(status) + `,"status":"` + http.StatusText(status) + `","kind":"` + kind.String() + `"}}`))
}
