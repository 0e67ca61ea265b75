package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hazelshop/admin-backend/pkg/types"
)

// Order is the operational order record managed through the admin backend.
// Status changes go through the order service, which validates the target
// code and the transition before persisting.
type Order struct {
	ID       string            `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MemberID string            `gorm:"column:member_id;type:varchar(64);not null;index" json:"member_id"`
	SellerID *string           `gorm:"column:seller_id;type:varchar(64)" json:"seller_id"`
	Status   types.OrderStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Currency string            `gorm:"column:currency;type:varchar(16);not null" json:"currency"`
	Amount   int64             `gorm:"column:amount;type:bigint;not null" json:"amount"`
	// Extra stores additional JSON data (for example: shipping address snapshot).
	Extra     datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// Terminal reports whether the order has reached a final status.
func (o *Order) Terminal() bool {
	return o != nil && (o.Status == types.OrderStatusCompleted || o.Status == types.OrderStatusCanceled)
}
