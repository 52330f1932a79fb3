package repokit

import (
	"context"
	"strconv"
	"time"
)

// BeginHook runs first inside every transaction, on the tx Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks returns inner with hooks run at the start of each Tx
// statements outside Tx pass through untouched
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hooked{TxRunner: inner, hooks: hooks}
}

type hooked struct {
	TxRunner
	hooks []BeginHook
}

func (h hooked) Tx(ctx context.Context, fn func(Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout caps each statement of the transaction at d
func StatementTimeout(d time.Duration) BeginHook {
	ms := strconv.FormatInt(d.Milliseconds(), 10)
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "select set_config('statement_timeout', $1, true)", ms)
		return err
	}
}
