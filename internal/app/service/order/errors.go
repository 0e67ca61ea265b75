package order

import "errors"

var (
	// ErrInvalidTransition marks a requested status change that is not
	// reachable from the current status, or a target code outside the
	// domain's vocabulary. Not retryable.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidOrder      = errors.New("invalid order data")
)
