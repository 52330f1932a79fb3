package store

import (
	"context"
	"fmt"
	"time"

	"reduce/internal/platform/logger"
	"reduce/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// openPG opens the pool and waits for postgres to answer a ping
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	pcfg := pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		AppName:  cfg.AppName,
	}
	slow := time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond
	if t := pg.NewSQLLogger(log, cfg.PG.LogSQL, slow); t != nil {
		pcfg.Tracer = t
	}

	p, err := pg.Open(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := waitReady(ctx, p, cfg.PG, log); err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

// waitReady pings with capped exponential backoff
// pings go straight to the pool and never reach the sql tracer
func waitReady(ctx context.Context, p Pinger, cfg PGConfig, log logger.Logger) error {
	attempts := cfg.retries()
	backoff := backoffStart

	var lastErr error
	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
		lastErr = p.Ping(pingCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if i == attempts {
			break
		}

		log.Warn().Err(lastErr).Int("attempt", i).Dur("backoff", backoff).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}
