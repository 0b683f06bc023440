package repository

import (
	"context"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
)

const (
	msgUserNotFound  = "User not found"
	msgEmailTaken    = "Email already exists. Please use a different email address."
	msgUserReference = "Cannot delete user: user has associated records; set status to inactive instead"
)

type UserRepository struct {
	DB *db.Postgres
}

type CreateUserParams struct {
	Name             string
	Email            string
	Phone            string
	Role             domain.UserRole
	Status           domain.UserStatus
	ShopID           *uuid.UUID
	CanEditEntries   bool
	CanDeleteEntries bool
	PasswordHash     string
}

// UpdateUserParams carries a partial update; nil fields keep their value.
type UpdateUserParams struct {
	Name             *string
	Email            *string
	Phone            *string
	Role             *domain.UserRole
	Status           *domain.UserStatus
	SetShop          bool
	ShopID           *uuid.UUID
	CanEditEntries   *bool
	CanDeleteEntries *bool
	PasswordHash     *string
}

const userColumns = `
	u.id, u.name, u.email, u.phone, u.role, u.status, u.shop_id, COALESCE(s.name, ''),
	u.can_edit_entries, u.can_delete_entries, u.password_hash, u.created_at, u.updated_at
`

func (r UserRepository) Create(ctx context.Context, p CreateUserParams) (*domain.User, error) {
	var id uuid.UUID
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, role, status, shop_id, can_edit_entries, can_delete_entries, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now(), now())
		RETURNING id
	`, p.Name, p.Email, p.Phone, p.Role, p.Status, p.ShopID, p.CanEditEntries, p.CanDeleteEntries, p.PasswordHash).Scan(&id)
	if err != nil {
		return nil, userWriteError(err)
	}
	return r.GetByID(ctx, id)
}

func (r UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN shops s ON s.id = u.shop_id
		ORDER BY u.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN shops s ON s.id = u.shop_id
		WHERE lower(u.email) = lower($1)
	`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, msgUserNotFound, "", "")
	}
	return user, nil
}

func (r UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN shops s ON s.id = u.shop_id
		WHERE u.id = $1
	`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, msgUserNotFound, "", "")
	}
	return user, nil
}

func (r UserRepository) Update(ctx context.Context, id uuid.UUID, p UpdateUserParams) (*domain.User, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			role = COALESCE($5, role),
			status = COALESCE($6, status),
			shop_id = CASE WHEN $7 THEN $8 ELSE shop_id END,
			can_edit_entries = COALESCE($9, can_edit_entries),
			can_delete_entries = COALESCE($10, can_delete_entries),
			password_hash = COALESCE($11, password_hash),
			updated_at = now()
		WHERE id = $1
	`, id, p.Name, p.Email, p.Phone, p.Role, p.Status, p.SetShop, p.ShopID, p.CanEditEntries, p.CanDeleteEntries, p.PasswordHash)
	if err != nil {
		return nil, userWriteError(err)
	}
	if err := deleted(tag, msgUserNotFound); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translate(err, "", "", msgUserReference)
	}
	return deleted(tag, msgUserNotFound)
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		role   string
		status string
	)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&role,
		&status,
		&u.ShopID,
		&u.ShopName,
		&u.CanEditEntries,
		&u.CanDeleteEntries,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	u.Status = domain.UserStatus(status)
	return &u, nil
}

func userWriteError(err error) error {
	if db.IsForeignKeyViolation(err) {
		return domain.Validation(msgShopNotFound)
	}
	return translate(err, "", msgEmailTaken, "")
}
