// Package requestclock provides context accessors for a request-scoped
// reference time.
//
// Temporal validation (expiry months, future dates) compares against a
// single "now" captured once per logical operation, so every field of one
// request is judged against the same instant. Callers at the outer edge
// capture the time; services and constructors read it from the context and
// never call time.Now themselves.
//
// Usage in services (read the value):
//
//	now := requestclock.Now(ctx)
//
// Usage at the boundary or in tests (set the value):
//
//	ctx = requestclock.WithTime(ctx, fixedTime)
package requestclock

import (
	"context"
	"time"
)

type timeKey struct{}

// ContextKeyTime is exported for tests that need raw context.WithValue.
var ContextKeyTime = timeKey{}

// Now retrieves the request-scoped time from the context. Falls back to
// time.Now() if not set, for callers outside a request scope.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific instant into a context. Useful for tests and
// for batch operations that need one consistent time across many payments.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyTime, t)
}
