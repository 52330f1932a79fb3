// Package repokit is what service repos and services share on top of the store
//
// A repo is a stateless Binder: the service binds it to whichever Queryer is
// current, the pool or an open transaction.
package repokit

import (
	"context"

	"reduce/internal/platform/store"
)

type (
	Queryer    = store.RowQuerier
	TxRunner   = store.TxRunner
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder gives a repo T bound to q
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc is a Binder backed by a constructor
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// WithTx binds b inside one transaction and hands the repo to fn
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
