package models

import (
	"time"

	"github.com/hazelshop/admin-backend/pkg/types"
)

// Payment tracks the payment leg of an order. An order has at most one
// active payment row; refunds mutate the same row rather than creating one.
type Payment struct {
	ID       string              `gorm:"column:id;type:uuid;primary_key" json:"id"`
	OrderID  string              `gorm:"column:order_id;type:uuid;not null;uniqueIndex" json:"order_id"`
	MemberID string              `gorm:"column:member_id;type:varchar(64);not null;index" json:"member_id"`
	Status   types.PaymentStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Currency string              `gorm:"column:currency;type:varchar(16);not null" json:"currency"`
	Amount   int64               `gorm:"column:amount;type:bigint;not null" json:"amount"`
	// PaidAt is set when the payment first reaches Paid.
	PaidAt *time.Time `gorm:"column:paid_at;default:null" json:"paid_at"`
	// RefundedAt is set when a paid payment is refunded.
	RefundedAt *time.Time `gorm:"column:refunded_at;default:null" json:"refunded_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Payment) TableName() string { return "payment" }
