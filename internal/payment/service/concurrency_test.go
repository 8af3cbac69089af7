package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tender/internal/payment/models"
	"tender/pkg/testutil"
)

// The service holds no mutable state, so concurrent callers must not
// interfere: every request gets its own validated payment with a unique ID.
func TestCreatePayment_Concurrent(t *testing.T) {
	svc := New()
	ctx := testutil.ContextAt(testutil.FixedTime())

	const workers = 32
	payments := make([]models.PendingPayment, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			p, err := svc.CreatePayment(ctx, CreatePaymentRequest{
				Amount: "19.99",
				Method: models.MethodKindCash,
			})
			if err != nil {
				return err
			}
			payments[i] = p
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[string]bool, workers)
	for _, p := range payments {
		require.Equal(t, "19.99", p.Amount().String())
		require.False(t, seen[p.ID().String()], "duplicate payment ID %s", p.ID())
		seen[p.ID().String()] = true
	}
}
