package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"barbershop-backend/internal/config"
	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/handler"
	"barbershop-backend/internal/repository"
	"barbershop-backend/internal/server/authctx"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenTable map[string]domain.Identity

func (t tokenTable) Identify(token string) domain.Identity { return t[token] }

var (
	admin  = domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}
	staff  = domain.Identity{UserID: uuid.New(), Role: domain.RoleStaff}
	tokens = tokenTable{"admin-token": admin, "staff-token": staff}
)

type stubCatalog struct{ deleted []uuid.UUID }

func (s *stubCatalog) List(context.Context) ([]domain.Service, error) {
	return []domain.Service{{ID: uuid.New(), Name: "Haircut", Price: decimal.NewFromInt(20)}}, nil
}

func (s *stubCatalog) Get(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	return nil, domain.NotFound("Service not found")
}

func (s *stubCatalog) Create(_ context.Context, name string, price decimal.Decimal) (*domain.Service, error) {
	return &domain.Service{ID: uuid.New(), Name: name, Price: price}, nil
}

func (s *stubCatalog) Update(_ context.Context, id uuid.UUID, _ repository.UpdateServiceParams) (*domain.Service, error) {
	return &domain.Service{ID: id}, nil
}

func (s *stubCatalog) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubHealth struct{}

func (stubHealth) Health(context.Context) error { return nil }

func testRouter(t *testing.T, catalog *stubCatalog) (http.Handler, *Metrics) {
	t.Helper()
	cfg := config.Config{RateLimit: 1000, CORSOrigins: []string{"*"}}
	metrics := NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(cfg, logger, metrics, tokens,
		handler.HealthHandler{DB: stubHealth{}},
		handler.DocsHandler{},
		handler.HomeHandler{},
		handler.AuthHandler{},
		handler.UserHandler{},
		handler.ShopHandler{},
		handler.ServiceHandler{Service: catalog},
		handler.EntryHandler{},
		handler.PayLaterHandler{},
		handler.ReportHandler{},
	)
	return r, metrics
}

func call(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouter_AccessLevels(t *testing.T) {
	catalog := &stubCatalog{}
	r, _ := testRouter(t, catalog)
	id := uuid.NewString()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"public catalog", http.MethodGet, "/api/services", "", http.StatusOK},
		{"bad token reads catalog", http.MethodGet, "/api/services", "garbage", http.StatusOK},
		{"anonymous entries", http.MethodGet, "/api/entries", "", http.StatusUnauthorized},
		{"bad token entries", http.MethodGet, "/api/entries", "garbage", http.StatusUnauthorized},
		{"staff deletes service", http.MethodDelete, "/api/services/" + id, "staff-token", http.StatusForbidden},
		{"anonymous deletes service", http.MethodDelete, "/api/services/" + id, "", http.StatusUnauthorized},
		{"staff runs report", http.MethodGet, "/api/reports/stats", "staff-token", http.StatusForbidden},
		{"staff lists users", http.MethodGet, "/api/users", "staff-token", http.StatusForbidden},
		{"admin deletes service", http.MethodDelete, "/api/services/" + id, "admin-token", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := call(r, tc.method, tc.path, tc.token)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
		})
	}
	require.Len(t, catalog.deleted, 1)
	assert.Equal(t, id, catalog.deleted[0].String())
}

func TestIdentifyMiddleware(t *testing.T) {
	var seen domain.Identity
	h := IdentifyMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = authctx.FromContext(r.Context())
	}))

	call(h, http.MethodGet, "/", "staff-token")
	assert.Equal(t, staff, seen)

	call(h, http.MethodGet, "/", "unknown")
	assert.True(t, seen.Anonymous())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, seen.Anonymous())
}

func TestAuthErrorEnvelope(t *testing.T) {
	r, _ := testRouter(t, &stubCatalog{})
	rr := call(r, http.MethodGet, "/api/entries", "")
	assert.JSONEq(t, `{"status":"error","message":"Not authenticated","data":null,
		"error":{"code":401,"status":"Unauthorized","kind":"not_authenticated"}}`, rr.Body.String())
}

func TestMetrics(t *testing.T) {
	r, m := testRouter(t, &stubCatalog{})
	call(r, http.MethodGet, "/api/services", "")
	call(r, http.MethodGet, "/api/services", "")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/services", "GET", "200")))

	m.EntryCreated(domain.PaymentCash)
	m.EntryCreated(domain.PaymentCash)
	m.EntryCreated(domain.PaymentPayLater)
	m.PayLaterSettled()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.entriesCreated.WithLabelValues("Cash")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entriesCreated.WithLabelValues("Pay Later")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payLaterSettled))
}
