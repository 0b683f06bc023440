package service

import (
	"context"
	"strings"

	"barbershop-backend/internal/domain"
	"barbershop-backend/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	Users UserStore
}

type CreateUserInput struct {
	Name             string
	Email            string
	Password         string
	Phone            string
	Role             domain.UserRole
	Status           domain.UserStatus
	ShopID           *uuid.UUID
	CanEditEntries   bool
	CanDeleteEntries bool
}

type UpdateUserInput struct {
	Name             *string
	Email            *string
	Password         *string
	Phone            *string
	Role             *domain.UserRole
	Status           *domain.UserStatus
	SetShop          bool
	ShopID           *uuid.UUID
	CanEditEntries   *bool
	CanDeleteEntries *bool
}

// Me returns the caller's own profile.
func (s UserService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.Anonymous() {
		return nil, domain.NotAuthenticated("Not authenticated")
	}
	return s.Users.GetByID(ctx, id.UserID)
}

func (s UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Users.List(ctx)
}

func (s UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.Status == "" {
		in.Status = domain.StatusActive
	}
	if !in.Role.Valid() {
		return nil, domain.Validation("role must be admin or staff")
	}
	if !in.Status.Valid() {
		return nil, domain.Validation("status must be active or inactive")
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	return s.Users.Create(ctx, repository.CreateUserParams{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:            in.Phone,
		Role:             in.Role,
		Status:           in.Status,
		ShopID:           in.ShopID,
		CanEditEntries:   in.CanEditEntries,
		CanDeleteEntries: in.CanDeleteEntries,
		PasswordHash:     hash,
	})
}

// Update applies a partial edit. An omitted or empty password keeps the
// stored hash.
func (s UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, domain.Validation("role must be admin or staff")
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, domain.Validation("status must be active or inactive")
	}
	p := repository.UpdateUserParams{
		Name:             in.Name,
		Phone:            in.Phone,
		Role:             in.Role,
		Status:           in.Status,
		SetShop:          in.SetShop,
		ShopID:           in.ShopID,
		CanEditEntries:   in.CanEditEntries,
		CanDeleteEntries: in.CanDeleteEntries,
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		p.Email = &email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		p.PasswordHash = &hash
	}
	return s.Users.Update(ctx, id, p)
}

func (s UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Users.Delete(ctx, id)
}
