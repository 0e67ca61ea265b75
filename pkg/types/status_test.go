package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinanceStatusOf(t *testing.T) {
	require.Equal(t, FinanceStatusCompleted, FinanceStatusOf(OrderStatusCompleted))
	require.Equal(t, FinanceStatusCanceled, FinanceStatusOf(OrderStatusCanceled))

	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipping} {
		require.Equal(t, FinanceStatusInProgress, FinanceStatusOf(s))
	}

	// unrecognized codes degrade to in-progress rather than erroring
	require.Equal(t, FinanceStatusInProgress, FinanceStatusOf(OrderStatus("AwaitingStock")))
}
