package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	cases := []struct {
		err    error
		code   int
		status string
	}{
		{nil, http.StatusOK, "ok"},
		{errors.New("db down"), http.StatusServiceUnavailable, "degraded"},
	}
	for _, tc := range cases {
		r := newRouter(domain.Identity{}, handler.HealthHandler{DB: stubHealth{err: tc.err}}.RegisterRoutes)
		rr := doRequest(t, r, http.MethodGet, "/health", nil)
		require.Equal(t, tc.code, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, tc.status, body["status"])
	}
}

func TestDocsAndIndex(t *testing.T) {
	r := newRouter(domain.Identity{}, func(r chi.Router) {
		handler.DocsHandler{}.RegisterRoutes(r)
		handler.HomeHandler{Version: "test"}.RegisterRoutes(r)
	})

	rr := doRequest(t, r, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "openapi: 3.0.3")

	rr = doRequest(t, r, http.MethodGet, "/docs", nil)
	assert.Contains(t, rr.Body.String(), "swagger-ui")

	rr = doRequest(t, r, http.MethodGet, "/", nil)
	var data map[string]any
	decodeData(t, decodeEnvelope(t, rr), &data)
	assert.Equal(t, "test", data["version"])
}
