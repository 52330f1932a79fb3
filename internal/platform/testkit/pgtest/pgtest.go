//go:build integration_pg

// Package pgtest starts a disposable postgres with the schema applied
package pgtest

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"reduce/internal/platform/store"
	"reduce/migrations"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DSN launches an empty postgres and returns its connection string
// the container is terminated on test cleanup
func DSN(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "reduce",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}

	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/reduce?sslmode=disable", host, port.Port())
}

// Start launches postgres, migrates it and returns an open store
func Start(t *testing.T) *store.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{AppName: "reduce-test", PG: store.PGConfig{
		Enabled:  true,
		URL:      DSN(t),
		MaxConns: 4,
	}}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := store.Migrate(ctx, st.PG, migrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}
