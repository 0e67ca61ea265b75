package status

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazelshop/admin-backend/pkg/types"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from, to types.OrderStatus
		want     bool
	}{
		{types.OrderStatusPending, types.OrderStatusProcessing, true},
		{types.OrderStatusPending, types.OrderStatusCanceled, true},
		{types.OrderStatusProcessing, types.OrderStatusShipping, true},
		{types.OrderStatusProcessing, types.OrderStatusCanceled, true},
		{types.OrderStatusShipping, types.OrderStatusCompleted, true},

		// no skipping forward
		{types.OrderStatusPending, types.OrderStatusShipping, false},
		{types.OrderStatusPending, types.OrderStatusCompleted, false},
		// cancellation is closed after dispatch
		{types.OrderStatusShipping, types.OrderStatusCanceled, false},
		// terminal states
		{types.OrderStatusCompleted, types.OrderStatusPending, false},
		{types.OrderStatusCompleted, types.OrderStatusCanceled, false},
		{types.OrderStatusCanceled, types.OrderStatusProcessing, false},
		// no going backwards
		{types.OrderStatusShipping, types.OrderStatusProcessing, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransitionOrder(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionPayment(t *testing.T) {
	cases := []struct {
		from, to types.PaymentStatus
		want     bool
	}{
		{types.PaymentStatusUnpaid, types.PaymentStatusPaid, true},
		{types.PaymentStatusUnpaid, types.PaymentStatusFailed, true},
		{types.PaymentStatusPaid, types.PaymentStatusRefunded, true},

		{types.PaymentStatusUnpaid, types.PaymentStatusRefunded, false},
		{types.PaymentStatusPaid, types.PaymentStatusUnpaid, false},
		{types.PaymentStatusFailed, types.PaymentStatusPaid, false},
		{types.PaymentStatusRefunded, types.PaymentStatusUnpaid, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransitionPayment(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
