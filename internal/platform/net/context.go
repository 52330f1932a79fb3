// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest puts reqID where chi's RequestID middleware would, for code
// paths and tests that run outside the middleware stack
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context, empty when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
