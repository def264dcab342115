package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// ErrNotFound is the shared not-found error of every repository
var ErrNotFound = apperrors.ErrResourceNotFound

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// queryRow builds stmt and runs it as a single row query
func queryRow(ctx context.Context, q db.Querier, stmt squirrel.Sqlizer) (*sql.Row, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

// queryRows builds stmt and runs it; the caller closes the rows
func queryRows(ctx context.Context, q db.Querier, stmt squirrel.Sqlizer) (*sql.Rows, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return q.QueryContext(ctx, query, args...)
}

// scanAll collects every row of rows with scan, closing rows afterwards
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound and wraps anything else
func notFoundOr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("error getting %s: %w", what, err)
}

// execAffecting runs stmt and returns ErrNotFound when no row was touched
func execAffecting(ctx context.Context, q db.Querier, stmt squirrel.Sqlizer, what string) error {
	affected, err := db.Exec(ctx, q, stmt)
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error executing write query")
		return fmt.Errorf("error writing %s: %w", what, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// countRows returns the number of rows in table
func countRows(ctx context.Context, database *db.DB, table string) (int64, error) {
	row, err := queryRow(ctx, database.SQL, database.Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}
