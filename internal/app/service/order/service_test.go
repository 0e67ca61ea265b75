package order

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/pkg/types"
)

func newTestService() *Service {
	return NewService(nil, zap.NewNop().Sugar(), status.NewRegistry(), nil, nil)
}

func TestCheckOrderTransition_HappyPath(t *testing.T) {
	svc := newTestService()
	next, err := svc.checkOrderTransition(types.OrderStatusPending, "processing")
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusProcessing, next)

	next, err = svc.checkOrderTransition(types.OrderStatusShipping, "Completed")
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusCompleted, next)
}

func TestCheckOrderTransition_Rejections(t *testing.T) {
	svc := newTestService()

	// target outside the order vocabulary
	_, err := svc.checkOrderTransition(types.OrderStatusPending, "Paid")
	require.ErrorIs(t, err, ErrInvalidTransition)

	// unreachable targets
	_, err = svc.checkOrderTransition(types.OrderStatusShipping, "Canceled")
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.checkOrderTransition(types.OrderStatusCompleted, "Pending")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckPaymentTransition(t *testing.T) {
	svc := newTestService()

	next, err := svc.checkPaymentTransition(types.PaymentStatusUnpaid, "paid")
	require.NoError(t, err)
	require.Equal(t, types.PaymentStatusPaid, next)

	next, err = svc.checkPaymentTransition(types.PaymentStatusPaid, "Refunded")
	require.NoError(t, err)
	require.Equal(t, types.PaymentStatusRefunded, next)

	// Processing is not in the payment vocabulary at all
	_, err = svc.checkPaymentTransition(types.PaymentStatusPaid, "Processing")
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.checkPaymentTransition(types.PaymentStatusFailed, "Paid")
	require.ErrorIs(t, err, ErrInvalidTransition)
}
