package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code int    `json:"code"`
		Kind string `json:"kind"`
	} `json:"error"`
}

var (
	adminID = domain.Identity{UserID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), Role: domain.RoleAdmin}
	staffID = domain.Identity{UserID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), Role: domain.RoleStaff}
)

// newRouter mounts routes behind a middleware that injects caller.
func newRouter(caller domain.Identity, mount func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(authctx.WithIdentity(req.Context(), caller)))
		})
	})
	mount(r)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
