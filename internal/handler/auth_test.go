package handler_test

import (
	"net/http"
	"testing"
	"time"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/handler"
	"barbershop-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authRouter(m *mockAuth) *chi.Mux {
	return newRouter(domain.Identity{}, func(r chi.Router) {
		r.Route("/api", handler.AuthHandler{Service: m}.RegisterRoutes)
	})
}

func TestLogin_Success(t *testing.T) {
	m := new(mockAuth)
	user := domain.User{ID: uuid.New(), Name: "John", Email: "john@barber.com", Role: domain.RoleStaff, Status: domain.StatusActive, PasswordHash: "secret-hash"}
	m.On("Login", mock.Anything, service.LoginInput{Email: "john@barber.com", Password: "barber123"}).
		Return(&service.AuthResult{Token: "tok", User: user, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	rr := doRequest(t, authRouter(m), http.MethodPost, "/api/auth/login", map[string]string{
		"email": "john@barber.com", "password": "barber123",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret-hash")

	env := decodeEnvelope(t, rr)
	var data struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	decodeData(t, env, &data)
	assert.Equal(t, "tok", data.Token)
	assert.Equal(t, "staff", data.User["role"])
	m.AssertExpectations(t)
}

func TestLogin_MissingFields(t *testing.T) {
	m := new(mockAuth)
	rr := doRequest(t, authRouter(m), http.MethodPost, "/api/auth/login", map[string]string{"password": "x"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, "email is required", env.Message)
	assert.Equal(t, "validation", env.Error.Kind)
	m.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", domain.NotAuthenticated("User not found"), http.StatusUnauthorized},
		{"inactive", domain.NotAuthorized("Account is inactive"), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := new(mockAuth)
			m.On("Login", mock.Anything, mock.Anything).Return(nil, tc.err)
			rr := doRequest(t, authRouter(m), http.MethodPost, "/api/auth/login", map[string]string{
				"email": "a@b.com", "password": "pw",
			})
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, domain.Message(tc.err), decodeEnvelope(t, rr).Message)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	rr := doRequest(t, authRouter(new(mockAuth)), http.MethodPost, "/api/auth/login", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid payload", decodeEnvelope(t, rr).Message)
}
