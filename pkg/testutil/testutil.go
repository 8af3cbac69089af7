// Package testutil provides common helpers for validation-focused tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tender/pkg/requestclock"
	"tender/pkg/validation"
)

// Given, When, and Then helpers keep test descriptions readable without
// pulling in a heavy BDD framework.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}

// FixedTime is a stable reference instant for temporal validation tests:
// mid-August 2024, UTC.
func FixedTime() time.Time {
	return time.Date(2024, time.August, 15, 12, 0, 0, 0, time.UTC)
}

// ContextAt returns a context carrying t as the request-scoped time.
func ContextAt(t time.Time) context.Context {
	return requestclock.WithTime(context.Background(), t)
}

// RequireRules asserts that err is a validation error carrying exactly the
// given rules, in order. This pins both accumulation completeness (never
// fewer, never duplicated) and rule-evaluation order.
func RequireRules(t *testing.T, err error, rules ...validation.Rule) {
	t.Helper()
	require.Error(t, err)
	list, ok := validation.AsErrors(err)
	require.True(t, ok, "expected a validation error, got %T: %v", err, err)
	got := make([]validation.Rule, len(list))
	for i, fe := range list {
		got[i] = fe.Rule
	}
	require.Equal(t, rules, got, "accumulated rules mismatch: %v", err)
}
