// Package pg opens the pgx pool behind the store
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is what the pool needs beyond the connection string
type Config struct {
	URL      string
	MaxConns int32

	// AppName shows up in pg_stat_activity
	AppName string

	// Tracer is installed on every connection, nil disables tracing
	Tracer pgx.QueryTracer
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg and creates the pool
// the pool connects lazily, callers ping before use
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.Tracer != nil {
		pcfg.ConnConfig.Tracer = cfg.Tracer
	}
	return newPool(ctx, pcfg)
}
