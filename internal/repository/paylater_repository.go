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
	msgPayLaterNotFound = "Pay later entry not found"
	msgAlreadyPaid      = "This entry is already marked as paid"
)

type PayLaterRepository struct {
	DB *db.Postgres
}

type CreatePayLaterParams struct {
	StaffID       uuid.UUID
	ShopID        *uuid.UUID
	CustomerName  string
	CustomerPhone string
	Amount        decimal.Decimal
	Date          time.Time
	Time          string
	ServiceIDs    []uuid.UUID
}

type PayLaterFilter struct {
	StaffID *uuid.UUID
	ShopID  *uuid.UUID
	IsPaid  *bool
}

const payLaterColumns = `
	p.id, p.staff_id, COALESCE(u.name, ''), p.shop_id, COALESCE(s.name, ''), p.customer_name, p.customer_phone,
	p.amount, p.entry_date, p.entry_time, p.service_ids, p.is_paid, p.paid_at, p.created_at, p.updated_at
`

const payLaterFrom = `
	FROM pay_later p
	LEFT JOIN users u ON u.id = p.staff_id
	LEFT JOIN shops s ON s.id = p.shop_id
`

// Create stores an unpaid promise. Without an explicit shop the staff
// member's own shop is used.
func (r PayLaterRepository) Create(ctx context.Context, p CreatePayLaterParams) (*domain.PayLater, error) {
	var id uuid.UUID
	err := r.DB.InTx(ctx, func(tx pgx.Tx) error {
		shopID := p.ShopID
		if shopID == nil {
			var err error
			if shopID, err = staffShop(ctx, tx, p.StaffID); err != nil {
				return err
			}
		} else if _, err := staffShop(ctx, tx, p.StaffID); err != nil {
			return err
		}

		serviceIDs := p.ServiceIDs
		if serviceIDs == nil {
			serviceIDs = []uuid.UUID{}
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO pay_later (staff_id, shop_id, customer_name, customer_phone, amount, entry_date, entry_time, service_ids, is_paid, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8, false, now(), now())
			RETURNING id
		`, p.StaffID, shopID, p.CustomerName, p.CustomerPhone, p.Amount, p.Date.Format(domain.DateLayout), p.Time, serviceIDs).Scan(&id)
		if db.IsForeignKeyViolation(err) {
			return domain.Validation(msgShopNotFound)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r PayLaterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayLater, error) {
	return getPayLater(ctx, r.DB.Pool, id, false)
}

// List returns ledger rows, newest first.
func (r PayLaterRepository) List(ctx context.Context, f PayLaterFilter) ([]domain.PayLater, error) {
	where, args := payLaterWhere(f)
	rows, err := r.DB.Pool.Query(ctx, `SELECT `+payLaterColumns+payLaterFrom+` WHERE `+where+`
		ORDER BY p.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PayLater
	for rows.Next() {
		pl, err := scanPayLater(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *pl)
	}
	return out, rows.Err()
}

// UnpaidTotal sums outstanding promises: the loan remaining.
func (r PayLaterRepository) UnpaidTotal(ctx context.Context, f PayLaterFilter) (decimal.Decimal, error) {
	unpaid := false
	f.IsPaid = &unpaid
	where, args := payLaterWhere(f)

	var total decimal.Decimal
	err := r.DB.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(p.amount), 0) FROM pay_later p WHERE `+where, args...).Scan(&total)
	return total, err
}

// MarkPaid settles a promise and materializes its revenue entry in one
// transaction. authorize runs against the locked row before any write.
func (r PayLaterRepository) MarkPaid(ctx context.Context, id uuid.UUID, authorize func(domain.PayLater) error) (*domain.PayLater, uuid.UUID, error) {
	var entryID uuid.UUID
	err := r.DB.InTx(ctx, func(tx pgx.Tx) error {
		pl, err := getPayLater(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(*pl); err != nil {
				return err
			}
		}
		if pl.IsPaid {
			return domain.Validation(msgAlreadyPaid)
		}

		found, err := resolveServices(ctx, tx, pl.ServiceIDs)
		if err != nil {
			return err
		}
		items, err := lineItems(pl.ServiceIDs, found, false)
		if err != nil {
			return err
		}

		// The agreed amount is authoritative, not the current service prices.
		entryID, _, err = insertEntry(ctx, tx, newEntry{
			StaffID:       pl.StaffID,
			ShopID:        pl.ShopID,
			Date:          pl.Date,
			Time:          pl.Time,
			PaymentMethod: domain.PaymentPayLater,
			Total:         pl.Amount,
			Items:         items,
		})
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE pay_later SET is_paid = true, paid_at = now(), updated_at = now()
			WHERE id = $1
		`, id)
		return err
	})
	if err != nil {
		return nil, uuid.Nil, err
	}

	pl, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return pl, entryID, nil
}

// Delete removes a ledger row only. Entries produced by MarkPaid stay.
func (r PayLaterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM pay_later WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return deleted(tag, msgPayLaterNotFound)
}

// DeleteAll clears ledger history, optionally only paid or unpaid rows.
func (r PayLaterRepository) DeleteAll(ctx context.Context, isPaid *bool) (int64, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		DELETE FROM pay_later
		WHERE ($1::boolean IS NULL OR is_paid = $1)
	`, isPaid)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func getPayLater(ctx context.Context, q pgxQuerier, id uuid.UUID, forUpdate bool) (*domain.PayLater, error) {
	query := `SELECT ` + payLaterColumns + payLaterFrom + ` WHERE p.id = $1`
	if forUpdate {
		query += " FOR UPDATE OF p"
	}
	pl, err := scanPayLater(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, msgPayLaterNotFound, "", "")
	}
	return pl, nil
}

func payLaterWhere(f PayLaterFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.StaffID != nil {
		add("p.staff_id = $%d", *f.StaffID)
	}
	if f.ShopID != nil {
		add("p.shop_id = $%d", *f.ShopID)
	}
	if f.IsPaid != nil {
		add("p.is_paid = $%d", *f.IsPaid)
	}
	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}

func scanPayLater(row rowScanner) (*domain.PayLater, error) {
	var pl domain.PayLater
	if err := row.Scan(
		&pl.ID, &pl.StaffID, &pl.StaffName, &pl.ShopID, &pl.ShopName, &pl.CustomerName, &pl.CustomerPhone,
		&pl.Amount, &pl.Date, &pl.Time, &pl.ServiceIDs, &pl.IsPaid, &pl.PaidAt, &pl.CreatedAt, &pl.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pl, nil
}
