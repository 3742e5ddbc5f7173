package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get runs q and scans exactly one row into dst.
// An empty result is reported as pgx.ErrNoRows so MapError turns it into domain.ErrNotFound.
func Get(ctx context.Context, db Querier, dst any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, db, dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return pgx.ErrNoRows
		}
		return err
	}
	return nil
}

// Select runs q and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, db, dst, query, args...)
}

// Exec runs a statement built by q.
func Exec(ctx context.Context, db Querier, q sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return db.Exec(ctx, query, args...)
}
