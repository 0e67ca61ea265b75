package types

type StatusDomain string

const (
	StatusDomainOrder   StatusDomain = "order"
	StatusDomainPayment StatusDomain = "payment"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipping   OrderStatus = "Shipping"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCanceled   OrderStatus = "Canceled"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// FinanceStatus is the coarse projection of the order lifecycle used by
// finance reporting. It is derived from OrderStatus, never stored.
type FinanceStatus string

const (
	FinanceStatusCompleted  FinanceStatus = "已完成"
	FinanceStatusInProgress FinanceStatus = "進行中"
	FinanceStatusCanceled   FinanceStatus = "已取消"
)

// FinanceStatusOf maps an operational order status onto the 3-state finance
// view. Anything that is neither completed nor canceled counts as in progress,
// including codes this build does not recognize.
func FinanceStatusOf(s OrderStatus) FinanceStatus {
	switch s {
	case OrderStatusCompleted:
		return FinanceStatusCompleted
	case OrderStatusCanceled:
		return FinanceStatusCanceled
	default:
		return FinanceStatusInProgress
	}
}
