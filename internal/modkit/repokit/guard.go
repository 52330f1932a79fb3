package repokit

import (
	"context"
	"fmt"
	"time"
)

type guarder interface {
	Guard(context.Context) error
}

// GuardTimeout bounds MustGuard when ctx has no deadline
const GuardTimeout = 5 * time.Second

// MustGuard panics unless st answers its readiness check, for startup only
func MustGuard(ctx context.Context, st guarder) {
	if st == nil {
		panic("repokit: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("store not ready: %w", err))
	}
}
