package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SeedService is one default catalog row.
type SeedService struct {
	Name  string
	Price decimal.Decimal
}

// SeedAccount inserts a user unless the email is taken. It reports whether a
// row was written.
func (r UserRepository) SeedAccount(ctx context.Context, p CreateUserParams) (bool, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash, phone, role, status, shop_id, can_edit_entries, can_delete_entries, created_at, updated_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (email) DO NOTHING
	`, p.Name, p.Email, p.PasswordHash, p.Phone, string(p.Role), string(p.Status), p.ShopID, p.CanEditEntries, p.CanDeleteEntries)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r ServiceRepository) SeedDefaults(ctx context.Context, defaults []SeedService) error {
	for _, s := range defaults {
		_, err := r.DB.Pool.Exec(ctx, `
			INSERT INTO services (name, price, created_at, updated_at)
			VALUES ($1, $2, now(), now())
			ON CONFLICT (name) DO NOTHING
		`, s.Name, s.Price)
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedShop returns the id of the shop named p.Name, creating it if needed.
func (r ShopRepository) SeedShop(ctx context.Context, p ShopParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.Pool.QueryRow(ctx, `SELECT id FROM shops WHERE name = $1 ORDER BY created_at LIMIT 1`, p.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}
	err = r.DB.Pool.QueryRow(ctx, `
		INSERT INTO shops (name, address, phone, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id
	`, p.Name, p.Address, p.Phone, p.Image).Scan(&id)
	return id, err
}
