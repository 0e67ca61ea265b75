package status

import (
	"github.com/hazelshop/admin-backend/pkg/types"
)

// Canonical forward path: Pending → Processing → Shipping → Completed.
// Cancellation is only possible before dispatch; a shipped or completed
// order goes through a separate return/refund flow instead.
var orderTransitions = map[types.OrderStatus][]types.OrderStatus{
	types.OrderStatusPending:    {types.OrderStatusProcessing, types.OrderStatusCanceled},
	types.OrderStatusProcessing: {types.OrderStatusShipping, types.OrderStatusCanceled},
	types.OrderStatusShipping:   {types.OrderStatusCompleted},
	types.OrderStatusCompleted:  {},
	types.OrderStatusCanceled:   {},
}

// Paid is terminal except for the refund transition.
var paymentTransitions = map[types.PaymentStatus][]types.PaymentStatus{
	types.PaymentStatusUnpaid:   {types.PaymentStatusPaid, types.PaymentStatusFailed},
	types.PaymentStatusPaid:     {types.PaymentStatusRefunded},
	types.PaymentStatusFailed:   {},
	types.PaymentStatusRefunded: {},
}

// CanTransitionOrder reports whether the order lifecycle permits from → to.
// Both arguments must already be canonical vocabulary values.
func CanTransitionOrder(from, to types.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionPayment reports whether the payment lifecycle permits from → to.
func CanTransitionPayment(from, to types.PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
