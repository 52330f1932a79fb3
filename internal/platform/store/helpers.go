package store

import (
	"context"
	"fmt"

	perr "reduce/internal/platform/errors"
)

// ScanFunc maps the current row into T
type ScanFunc[T any] func(Row) (T, error)

// Affected runs a write and returns the number of rows it touched
func Affected(ctx context.Context, q RowQuerier, sql string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExecOne runs a write that must touch exactly one row
// zero rows is perr.ErrNotFound
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	n, err := Affected(ctx, q, sql, args...)
	switch {
	case err != nil:
		return err
	case n == 0:
		return perr.ErrNotFound
	case n > 1:
		return fmt.Errorf("expected one row affected, got %d", n)
	}
	return nil
}

// Scalar reads the first column of a single row into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// One maps exactly one row with scan
// no rows is perr.ErrNotFound, more than one is an error
func One[T any](ctx context.Context, q RowQuerier, scan ScanFunc[T], sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, perr.ErrNotFound
	}
	item, err := scan(rows)
	if err != nil {
		return zero, err
	}
	if rows.Next() {
		return zero, fmt.Errorf("expected one row, got more")
	}
	return item, rows.Err()
}

// Many maps every row with scan
// an empty result is a nil slice and no error
func Many[T any](ctx context.Context, q RowQuerier, scan ScanFunc[T], sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
