package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	msgEntryNotFound = "Entry not found"
	msgStaffNotFound = "Staff member not found"

	// clientNumberLock serializes client number allocation across connections.
	clientNumberLock int64 = 0x62617262
)

type EntryRepository struct {
	DB *db.Postgres
}

type CreateEntryParams struct {
	StaffID       uuid.UUID
	ServiceIDs    []uuid.UUID
	Date          time.Time
	Time          string
	PaymentMethod domain.PaymentMethod
}

// UpdateEntryParams carries a partial edit. A nil ServiceIDs keeps the
// current line items; a non-nil one replaces them and recomputes the total.
type UpdateEntryParams struct {
	StaffID       *uuid.UUID
	Date          *time.Time
	Time          *string
	PaymentMethod *domain.PaymentMethod
	ServiceIDs    []uuid.UUID
}

type EntryFilter struct {
	StaffID *uuid.UUID
	ShopID  *uuid.UUID
	Range   domain.DateRange
}

type newEntry struct {
	StaffID       uuid.UUID
	ShopID        *uuid.UUID
	Date          time.Time
	Time          string
	PaymentMethod domain.PaymentMethod
	Total         decimal.Decimal
	Items         []domain.EntryService
}

// Create records a visit. Staff lookup, price snapshot, client number and
// line items are written in one transaction.
func (r EntryRepository) Create(ctx context.Context, p CreateEntryParams) (*domain.Entry, error) {
	var id uuid.UUID
	err := r.DB.InTx(ctx, func(tx pgx.Tx) error {
		shopID, err := staffShop(ctx, tx, p.StaffID)
		if err != nil {
			return err
		}
		found, err := resolveServices(ctx, tx, p.ServiceIDs)
		if err != nil {
			return err
		}
		items, err := lineItems(p.ServiceIDs, found, true)
		if err != nil {
			return err
		}
		id, _, err = insertEntry(ctx, tx, newEntry{
			StaffID:       p.StaffID,
			ShopID:        shopID,
			Date:          p.Date,
			Time:          p.Time,
			PaymentMethod: p.PaymentMethod,
			Total:         sumItems(items),
			Items:         items,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r EntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	entries, err := r.list(ctx, r.DB.Pool, "e.id = $1", []any{id}, "")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.NotFound(msgEntryNotFound)
	}
	return &entries[0], nil
}

// List returns entries matching the filter, newest first.
func (r EntryRepository) List(ctx context.Context, f EntryFilter) ([]domain.Entry, error) {
	where, args := entryWhere(f)
	return r.list(ctx, r.DB.Pool, where, args, "e.entry_date DESC, e.client_number DESC")
}

func (r EntryRepository) Update(ctx context.Context, id uuid.UUID, p UpdateEntryParams) (*domain.Entry, error) {
	err := r.DB.InTx(ctx, func(tx pgx.Tx) error {
		var shopID *uuid.UUID
		if p.StaffID != nil {
			var err error
			if shopID, err = staffShop(ctx, tx, *p.StaffID); err != nil {
				return err
			}
		}

		var total *decimal.Decimal
		var items []domain.EntryService
		if p.ServiceIDs != nil {
			found, err := resolveServices(ctx, tx, p.ServiceIDs)
			if err != nil {
				return err
			}
			if items, err = lineItems(p.ServiceIDs, found, true); err != nil {
				return err
			}
			sum := sumItems(items)
			total = &sum
		}

		tag, err := tx.Exec(ctx, `
			UPDATE entries SET
				staff_id = COALESCE($2, staff_id),
				shop_id = CASE WHEN $2::uuid IS NULL THEN shop_id ELSE $3 END,
				entry_date = COALESCE($4::date, entry_date),
				entry_time = COALESCE($5, entry_time),
				payment_method = COALESCE($6, payment_method),
				total_amount = COALESCE($7, total_amount),
				updated_at = now()
			WHERE id = $1
		`, id, p.StaffID, shopID, dateParam(p.Date), p.Time, p.PaymentMethod, total)
		if err != nil {
			return err
		}
		if err := deleted(tag, msgEntryNotFound); err != nil {
			return err
		}

		if p.ServiceIDs == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM entry_services WHERE entry_id = $1`, id); err != nil {
			return err
		}
		return insertLineItems(ctx, tx, id, items)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r EntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return deleted(tag, msgEntryNotFound)
}

// staffShop resolves a staff member's shop affiliation inside q.
func staffShop(ctx context.Context, q pgxQuerier, staffID uuid.UUID) (*uuid.UUID, error) {
	var shopID *uuid.UUID
	err := q.QueryRow(ctx, `SELECT shop_id FROM users WHERE id = $1`, staffID).Scan(&shopID)
	if err != nil {
		return nil, translate(err, msgStaffNotFound, "", "")
	}
	return shopID, nil
}

// insertEntry allocates the next client number and writes the entry with its
// line items. It must run inside tx; the advisory lock is held until commit.
func insertEntry(ctx context.Context, tx pgx.Tx, in newEntry) (uuid.UUID, string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, clientNumberLock); err != nil {
		return uuid.Nil, "", fmt.Errorf("lock client numbers: %w", err)
	}

	var maxSuffix int
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(substring(client_number FROM 3)::int), 0)
		FROM entries
		WHERE client_number ~ '^C-[0-9]+$'
	`).Scan(&maxSuffix)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("read client numbers: %w", err)
	}
	number := domain.NextClientNumber(maxSuffix)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO entries (client_number, staff_id, shop_id, entry_date, entry_time, payment_method, total_amount, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, now(), now())
		RETURNING id
	`, number, in.StaffID, in.ShopID, in.Date.Format(domain.DateLayout), in.Time, in.PaymentMethod, in.Total).Scan(&id)
	if err != nil {
		return uuid.Nil, "", translate(err, "", "", msgStaffNotFound)
	}

	if err := insertLineItems(ctx, tx, id, in.Items); err != nil {
		return uuid.Nil, "", err
	}
	return id, number, nil
}

func insertLineItems(ctx context.Context, tx pgx.Tx, entryID uuid.UUID, items []domain.EntryService) error {
	for i, it := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO entry_services (entry_id, service_id, price, position)
			VALUES ($1,$2,$3,$4)
		`, entryID, it.ServiceID, it.Price, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func sumItems(items []domain.EntryService) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

func dateParam(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func entryWhere(f EntryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.StaffID != nil {
		add("e.staff_id = $%d", *f.StaffID)
	}
	if f.ShopID != nil {
		add("e.shop_id = $%d", *f.ShopID)
	}
	if f.Range.HasStart() {
		add("e.entry_date >= $%d::date", f.Range.Start.Format(domain.DateLayout))
	}
	if f.Range.HasEnd() {
		add("e.entry_date <= $%d::date", f.Range.End.Format(domain.DateLayout))
	}
	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}

func (r EntryRepository) list(ctx context.Context, q pgxQuerier, where string, args []any, orderBy string) ([]domain.Entry, error) {
	query := `
		SELECT e.id, e.client_number, e.staff_id, COALESCE(u.name, ''), e.shop_id, COALESCE(s.name, ''),
		       e.entry_date, e.entry_time, e.payment_method, e.total_amount, e.created_at, e.updated_at
		FROM entries e
		LEFT JOIN users u ON u.id = e.staff_id
		LEFT JOIN shops s ON s.id = e.shop_id
		WHERE ` + where
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	var ids []uuid.UUID
	for rows.Next() {
		var (
			e      domain.Entry
			method string
		)
		if err := rows.Scan(
			&e.ID, &e.ClientNumber, &e.StaffID, &e.StaffName, &e.ShopID, &e.ShopName,
			&e.Date, &e.Time, &method, &e.TotalAmount, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.PaymentMethod = domain.PaymentMethod(method)
		ids = append(ids, e.ID)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return entries, nil
	}

	itemRows, err := q.Query(ctx, `
		SELECT es.entry_id, es.id, es.service_id, COALESCE(sv.name, ''), es.price
		FROM entry_services es
		LEFT JOIN services sv ON sv.id = es.service_id
		WHERE es.entry_id = ANY($1)
		ORDER BY es.entry_id, es.position
	`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	itemsByEntry := make(map[uuid.UUID][]domain.EntryService)
	for itemRows.Next() {
		var (
			it      domain.EntryService
			entryID uuid.UUID
		)
		if err := itemRows.Scan(&entryID, &it.ID, &it.ServiceID, &it.ServiceName, &it.Price); err != nil {
			return nil, err
		}
		itemsByEntry[entryID] = append(itemsByEntry[entryID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Services = itemsByEntry[entries[i].ID]
	}
	return entries, nil
}
