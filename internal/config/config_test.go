package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/barbershop")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.HTTPPort)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "GBP", cfg.DefaultCurrency)
	assert.Equal(t, "GB", cfg.PhoneRegion)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 200, cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/barbershop")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_FailsFast(t *testing.T) {
	tests := []struct {
		name    string
		dbURL   string
		secret  string
		wantErr string
	}{
		{name: "missing database url", dbURL: "", secret: "secret", wantErr: "DATABASE_URL is required"},
		{name: "missing jwt secret", dbURL: "postgres://localhost/db", secret: "", wantErr: "JWT_SECRET is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.dbURL)
			t.Setenv("JWT_SECRET", tt.secret)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
