package store

import (
	"context"
	"errors"

	perr "reduce/internal/platform/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// conn is the statement surface *pgxpool.Pool and pgx.Tx share
type conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pool is the part of *pgxpool.Pool the adapter drives
type pool interface {
	conn
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier adapts a pgx conn to RowQuerier
// tracing lives on the pgx connection config, not here
type querier struct{ c conn }

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return q.c.Exec(ctx, sql, args...)
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := q.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (q querier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return notFoundRow{q.c.QueryRow(ctx, sql, args...)}
}

// notFoundRow turns pgx.ErrNoRows into perr.ErrNotFound so repos never import pgx
type notFoundRow struct{ r pgx.Row }

func (n notFoundRow) Scan(dest ...any) error {
	err := n.r.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return perr.ErrNotFound
	}
	return err
}

// pgAdapter is the TxRunner behind Store.PG
type pgAdapter struct {
	querier
	p pool
}

func newPGAdapter(p pool) *pgAdapter { return &pgAdapter{querier: querier{c: p}, p: p} }

func (a *pgAdapter) Ping(ctx context.Context) error { return a.p.Ping(ctx) }

func (a *pgAdapter) Close() error {
	a.p.Close()
	return nil
}

// Tx commits only when fn returns nil
// an error or a panic inside fn rolls back, and the panic is re-raised
func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Begin(ctx)
	if err != nil {
		return err
	}
	rollback := func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }
	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err := fn(querier{c: tx}); err != nil {
		rollback()
		return err
	}
	return tx.Commit(ctx)
}
