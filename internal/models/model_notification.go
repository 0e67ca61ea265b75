package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hazelshop/admin-backend/pkg/types"
)

// Notification is one outbound notification event. MemberID and SellerID are
// both optional; a row with neither is a broadcast/system notice.
//
// The email sub-state is the delivery ledger: EmailSentAt is set exactly once,
// on the first successful attempt, and EmailRetryCount only ever grows, one
// step per recorded failed attempt. Rows are soft-deleted, never removed.
type Notification struct {
	ID       int64   `gorm:"column:id;primary_key;autoIncrement" json:"id"`
	MemberID *string `gorm:"column:member_id;type:varchar(64);index" json:"member_id"`
	SellerID *string `gorm:"column:seller_id;type:varchar(64);index" json:"seller_id"`
	// Category and Channel keep whatever the caller supplied, recognized or
	// not, so newer producers can introduce codes ahead of this service.
	Category types.NotificationCategory `gorm:"column:category;type:varchar(32);not null" json:"category"`
	Message  string                     `gorm:"column:message;type:varchar(500);not null" json:"message"`
	Channel  types.NotificationChannel  `gorm:"column:channel;type:varchar(32);not null" json:"channel"`
	// SentAt is the logical send time of the notification, distinct from
	// CreatedAt; it stays zero until a send is attempted.
	SentAt time.Time `gorm:"column:sent_at;default:null" json:"sent_at"`

	EmailAddress    string            `gorm:"column:email_address;type:varchar(255)" json:"email_address"`
	EmailStatus     types.EmailStatus `gorm:"column:email_status;type:varchar(32);not null" json:"email_status"`
	EmailSentAt     *time.Time        `gorm:"column:email_sent_at;default:null" json:"email_sent_at"`
	EmailRetryCount int               `gorm:"column:email_retry_count;not null;default:0" json:"email_retry_count"`

	// Extra stores additional JSON data (for example: the triggering event payload).
	Extra     datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	IsDeleted bool           `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Notification) TableName() string { return "notification" }

// Delivered reports whether the last recorded attempt succeeded.
func (n *Notification) Delivered() bool {
	return n != nil && n.EmailSentAt != nil
}

// Deliverable reports retry eligibility against the caller-supplied ceiling:
// not soft-deleted, never delivered, and still under maxRetries.
func (n *Notification) Deliverable(maxRetries int) bool {
	if n == nil || n.IsDeleted || n.Delivered() {
		return false
	}
	return n.EmailRetryCount < maxRetries
}

// MarkSendSucceeded freezes the retry state: the send time is recorded and
// the retry counter is left untouched.
func (n *Notification) MarkSendSucceeded(at time.Time) {
	n.SentAt = at
	n.EmailSentAt = &at
	n.UpdatedAt = at
}

// MarkSendFailed records one failed attempt. EmailSentAt is not touched.
func (n *Notification) MarkSendFailed(at time.Time) {
	n.EmailRetryCount++
	n.UpdatedAt = at
}
