// Package store owns the database handle the services share
//
// Repos see only the small RowQuerier surface below; the pgx types stay
// inside this package and store/pg.
package store

import (
	"context"
	"errors"
	"fmt"

	"reduce/internal/platform/logger"
)

// Store holds the opened backends
// the zero value is usable and has no backends
type Store struct {
	// Log is used during open and for the sql tracer
	Log logger.Logger

	// PG is nil unless postgres was enabled
	PG TxRunner
}

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set, Close must be called
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs statements, inside or outside a transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also open a transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is implemented by backends that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects the backends enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		a, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = a
	}
	return s, nil
}

// Guard pings every backend that can answer
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases the backends, a nil or empty store is a no-op
func (s *Store) Close(context.Context) error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
