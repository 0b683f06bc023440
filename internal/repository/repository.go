package repository

import (
	"context"
	"errors"

	"barbershop-backend/internal/db"
	"barbershop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is satisfied by both pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// translate maps driver failures onto the domain error taxonomy. Messages
// are supplied by the caller so each table reports its own wording.
func translate(err error, notFound, duplicate, inUse string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows) && notFound != "":
		return domain.NotFound(notFound)
	case db.IsUniqueViolation(err) && duplicate != "":
		return domain.Conflict(duplicate)
	case db.IsForeignKeyViolation(err) && inUse != "":
		return domain.ReferentialConflict(inUse)
	}
	return err
}

func deleted(tag pgconn.CommandTag, notFound string) error {
	if tag.RowsAffected() == 0 {
		return domain.NotFound(notFound)
	}
	return nil
}
