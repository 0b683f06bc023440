package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"barbershop-backend/internal/auth"
	"barbershop-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Secret   string
	TokenTTL time.Duration
	Users    UserStore
	Logger   *slog.Logger
}

type AuthResult struct {
	Token     string
	User      domain.User
	ExpiresAt time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

func (s AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NotAuthenticated("User not found")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NotAuthenticated("Invalid password")
	}
	if !user.IsActive() {
		return nil, domain.NotAuthorized("Account is inactive")
	}

	token, exp, err := auth.GenerateToken(s.Secret, user.ID, user.Role, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	}
	return &AuthResult{Token: token, User: *user, ExpiresAt: exp}, nil
}

// Identify resolves a bearer token. Any failure yields the anonymous identity.
func (s AuthService) Identify(token string) domain.Identity {
	if token == "" {
		return domain.Identity{}
	}
	claims, err := auth.ValidateToken(s.Secret, token)
	if err != nil {
		return domain.Identity{}
	}
	return claims.Identity()
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
