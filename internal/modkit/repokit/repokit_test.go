package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"reduce/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs statements, Tx runs fn on itself
type recorder struct {
	sqls    []string
	args    [][]any
	execErr error
	txs     int
}

func (r *recorder) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	r.sqls = append(r.sqls, sql)
	r.args = append(r.args, args)
	return nil, r.execErr
}

func (r *recorder) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (r *recorder) QueryRow(context.Context, string, ...any) store.Row        { return nil }

func (r *recorder) Tx(_ context.Context, fn func(Queryer) error) error {
	r.txs++
	return fn(r)
}

type projects struct{ q Queryer }

func TestWithTx_BindsRepoToTx(t *testing.T) {
	db := &recorder{}
	binder := BindFunc[projects](func(q Queryer) projects { return projects{q: q} })

	var got projects
	err := WithTx(context.Background(), db, binder, func(p projects) error {
		got = p
		_, err := p.q.Exec(context.Background(), "insert into projects (name) values ($1)", "Gym")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, db.txs)
	assert.Same(t, db, got.q)
	assert.Equal(t, []string{"insert into projects (name) values ($1)"}, db.sqls)

	want := errors.New("unknown project")
	assert.ErrorIs(t, WithTx(context.Background(), db, binder, func(projects) error { return want }), want)
}

func TestWithBeginHooks_RunsBeforeFn(t *testing.T) {
	db := &recorder{}
	hooked := WithBeginHooks(db, StatementTimeout(1500*time.Millisecond))

	_, _ = hooked.Exec(context.Background(), "select 1")
	assert.Equal(t, []string{"select 1"}, db.sqls, "outside Tx no hook runs")

	db.sqls, db.args = nil, nil
	require.NoError(t, hooked.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "delete from time_entries")
		return err
	}))
	require.Len(t, db.sqls, 2)
	assert.Equal(t, "select set_config('statement_timeout', $1, true)", db.sqls[0])
	assert.Equal(t, []any{"1500"}, db.args[0])
	assert.Equal(t, "delete from time_entries", db.sqls[1])
}

func TestWithBeginHooks_HookErrorSkipsFn(t *testing.T) {
	db := &recorder{execErr: errors.New("permission denied")}
	called := false
	err := WithBeginHooks(db, StatementTimeout(time.Second)).Tx(context.Background(), func(Queryer) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, db.execErr)
	assert.False(t, called)
}

type guardFunc func(context.Context) error

func (f guardFunc) Guard(ctx context.Context) error { return f(ctx) }

func TestMustGuard(t *testing.T) {
	var deadline bool
	assert.NotPanics(t, func() {
		MustGuard(context.Background(), guardFunc(func(ctx context.Context) error {
			_, deadline = ctx.Deadline()
			return nil
		}))
	})
	assert.True(t, deadline, "a deadline is added when ctx has none")

	assert.PanicsWithError(t, "store not ready: pg: connection refused", func() {
		MustGuard(context.Background(), guardFunc(func(context.Context) error {
			return errors.New("pg: connection refused")
		}))
	})
	assert.Panics(t, func() { MustGuard(context.Background(), nil) })
}
