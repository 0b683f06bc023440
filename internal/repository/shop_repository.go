package repository

import (
	"context"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
)

const (
	msgShopNotFound = "Shop not found"
	msgShopInUse    = "Cannot delete shop: it is being used in existing entries"
)

type ShopRepository struct {
	DB *db.Postgres
}

type ShopParams struct {
	Name    string
	Address string
	Phone   string
	Image   string
}

type UpdateShopParams struct {
	Name    *string
	Address *string
	Phone   *string
	Image   *string
}

func (r ShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, address, phone, image, created_at, updated_at
		FROM shops
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, *s)
	}
	return shops, rows.Err()
}

func (r ShopRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, address, phone, image, created_at, updated_at
		FROM shops WHERE id = $1
	`, id)
	s, err := scanShop(row)
	if err != nil {
		return nil, translate(err, msgShopNotFound, "", "")
	}
	return s, nil
}

// Stats summarizes lifetime revenue, entry count and assigned staff of a shop.
func (r ShopRepository) Stats(ctx context.Context, id uuid.UUID) (domain.ShopStats, error) {
	var st domain.ShopStats
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM entries WHERE shop_id = $1), 0),
			(SELECT COUNT(*) FROM entries WHERE shop_id = $1),
			(SELECT COUNT(*) FROM users WHERE shop_id = $1 AND role = 'staff')
	`, id).Scan(&st.TotalRevenue, &st.TotalEntries, &st.BarberCount)
	return st, err
}

func (r ShopRepository) Create(ctx context.Context, p ShopParams) (*domain.Shop, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO shops (name, address, phone, image, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING id, name, address, phone, image, created_at, updated_at
	`, p.Name, p.Address, p.Phone, p.Image)
	return scanShop(row)
}

func (r ShopRepository) Update(ctx context.Context, id uuid.UUID, p UpdateShopParams) (*domain.Shop, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE shops SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			phone = COALESCE($4, phone),
			image = COALESCE($5, image),
			updated_at = now()
		WHERE id = $1
		RETURNING id, name, address, phone, image, created_at, updated_at
	`, id, p.Name, p.Address, p.Phone, p.Image)
	s, err := scanShop(row)
	if err != nil {
		return nil, translate(err, msgShopNotFound, "", "")
	}
	return s, nil
}

func (r ShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return translate(err, "", "", msgShopInUse)
	}
	return deleted(tag, msgShopNotFound)
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var s domain.Shop
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
