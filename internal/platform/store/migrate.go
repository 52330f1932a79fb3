package store

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"reduce/internal/platform/logger"
)

const migrationsTable = `
create table if not exists schema_migrations (
    version    text primary key,
    applied_at timestamptz not null default now()
)`

// Migrate applies every *.sql file in fsys that is not yet recorded in
// schema_migrations, each in its own transaction, in lexical order
// it returns the versions applied by this call
func Migrate(ctx context.Context, db TxRunner, fsys fs.FS) ([]string, error) {
	log := logger.Named("migrate")

	if _, err := db.Exec(ctx, migrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var applied []string
	for _, name := range names {
		version := strings.TrimSuffix(path.Base(name), ".sql")
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", name, err)
		}

		done := false
		err = db.Tx(ctx, func(q RowQuerier) error {
			// a concurrent migrator holding the same version makes this block then skip
			tag, err := q.Exec(ctx,
				`insert into schema_migrations (version) values ($1) on conflict do nothing`, version)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				done = true
				return nil
			}
			_, err = q.Exec(ctx, string(body))
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("apply %s: %w", version, err)
		}
		if done {
			continue
		}
		log.Info().Str("version", version).Msg("migration applied")
		applied = append(applied, version)
	}
	return applied, nil
}
