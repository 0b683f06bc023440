package authctx

import (
	"context"

	"barbershop-backend/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext returns the caller identity; an unset context yields the anonymous identity.
func FromContext(ctx context.Context) domain.Identity {
	val, _ := ctx.Value(identityContextKey).(domain.Identity)
	return val
}
