package status

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazelshop/admin-backend/pkg/types"
)

func TestIsValid_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	for _, domain := range []types.StatusDomain{types.StatusDomainOrder, types.StatusDomainPayment} {
		for _, code := range r.AllCodes(domain) {
			require.True(t, r.IsValid(domain, code))
			require.True(t, r.IsValid(domain, strings.ToUpper(code)))
			require.True(t, r.IsValid(domain, strings.ToLower(code)))
			require.True(t, r.IsValid(domain, "  "+code+" "))
		}
	}
}

func TestIsValid_Rejects(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.IsValid(types.StatusDomainOrder, ""))
	require.False(t, r.IsValid(types.StatusDomainOrder, "   "))
	require.False(t, r.IsValid(types.StatusDomainOrder, "Paid"))
	require.False(t, r.IsValid(types.StatusDomainPayment, "Processing"))
	require.False(t, r.IsValid(types.StatusDomain("coupon"), "Pending"))
}

func TestLabel_Known(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, "已完成", r.Label(types.StatusDomainOrder, "Completed"))
	require.Equal(t, "已完成", r.Label(types.StatusDomainOrder, "completed"))
	require.Equal(t, "已退款", r.Label(types.StatusDomainPayment, "REFUNDED"))
}

func TestLabel_FailOpen(t *testing.T) {
	r := NewRegistry()
	// Unrecognized codes pass through unchanged, never an error.
	require.Equal(t, "unknown_code", r.Label(types.StatusDomainOrder, "unknown_code"))
	require.Equal(t, "", r.Label(types.StatusDomainOrder, ""))
	require.Equal(t, "Pending", r.Label(types.StatusDomain("coupon"), "Pending"))
}

func TestAllCodes_StableOrder(t *testing.T) {
	r := NewRegistry()
	want := []string{"Pending", "Processing", "Shipping", "Completed", "Canceled"}
	require.Equal(t, want, r.AllCodes(types.StatusDomainOrder))
	require.Equal(t, want, r.AllCodes(types.StatusDomainOrder))

	require.Equal(t, []string{"Paid", "Unpaid", "Failed", "Refunded"}, r.AllCodes(types.StatusDomainPayment))
	require.Nil(t, r.AllCodes(types.StatusDomain("coupon")))
}

func TestAllCodes_ReturnsCopy(t *testing.T) {
	r := NewRegistry()
	codes := r.AllCodes(types.StatusDomainOrder)
	codes[0] = "mutated"
	require.Equal(t, "Pending", r.AllCodes(types.StatusDomainOrder)[0])
}

func TestCanonical(t *testing.T) {
	r := NewRegistry()
	c, ok := r.Canonical(types.StatusDomainOrder, " shipping ")
	require.True(t, ok)
	require.Equal(t, "Shipping", c)

	_, ok = r.Canonical(types.StatusDomainOrder, "shipped")
	require.False(t, ok)
}
