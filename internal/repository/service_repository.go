package repository

import (
	"context"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgServiceNotFound  = "Service not found"
	msgServiceDuplicate = "Service name already exists"
	msgServiceInUse     = "Cannot delete service: it is being used in existing entries"
	msgServicesMissing  = "One or more services not found"
)

type ServiceRepository struct {
	DB *db.Postgres
}

type UpdateServiceParams struct {
	Name  *string
	Price *decimal.Decimal
}

func (r ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM services
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, price, created_at, updated_at FROM services WHERE id = $1
	`, id)
	s, err := scanService(row)
	if err != nil {
		return nil, translate(err, msgServiceNotFound, "", "")
	}
	return s, nil
}

func (r ServiceRepository) Create(ctx context.Context, name string, price decimal.Decimal) (*domain.Service, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO services (name, price, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id, name, price, created_at, updated_at
	`, name, price)
	s, err := scanService(row)
	if err != nil {
		return nil, translate(err, "", msgServiceDuplicate, "")
	}
	return s, nil
}

func (r ServiceRepository) Update(ctx context.Context, id uuid.UUID, p UpdateServiceParams) (*domain.Service, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE services SET
			name = COALESCE($2, name),
			price = COALESCE($3, price),
			updated_at = now()
		WHERE id = $1
		RETURNING id, name, price, created_at, updated_at
	`, id, p.Name, p.Price)
	s, err := scanService(row)
	if err != nil {
		return nil, translate(err, msgServiceNotFound, msgServiceDuplicate, "")
	}
	return s, nil
}

func (r ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return translate(err, "", "", msgServiceInUse)
	}
	return deleted(tag, msgServiceNotFound)
}

// resolveServices loads the requested services keyed by id. Duplicate ids
// are allowed and resolve to the same row.
func resolveServices(ctx context.Context, q pgxQuerier, ids []uuid.UUID) (map[uuid.UUID]domain.Service, error) {
	found := make(map[uuid.UUID]domain.Service, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	rows, err := q.Query(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM services
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		found[s.ID] = *s
	}
	return found, rows.Err()
}

// lineItems snapshots current prices for every requested id. When strict is
// set a single unresolved id fails the whole request.
func lineItems(ids []uuid.UUID, found map[uuid.UUID]domain.Service, strict bool) ([]domain.EntryService, error) {
	items := make([]domain.EntryService, 0, len(ids))
	for _, id := range ids {
		svc, ok := found[id]
		if !ok {
			if strict {
				return nil, domain.Validation(msgServicesMissing)
			}
			continue
		}
		items = append(items, domain.EntryService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
		})
	}
	return items, nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Price, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
